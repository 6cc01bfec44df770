// file: models/team.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Team struct {
	ID         uint32 `gorm:"primarykey" json:"id"`
	TeamName   string `gorm:"size:100;unique;not null" json:"team_name"`
	LeaderName string `gorm:"size:50;not null" json:"leader_name"`
	// 用户名统一小写存储，登录查询不区分大小写
	Username string `gorm:"size:50;unique;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`
	Email    string `gorm:"size:100" json:"email,omitempty"`
	Phone    string `gorm:"size:20" json:"phone,omitempty"`
	Approved bool   `gorm:"default:false;index" json:"approved"`
	Score    int    `gorm:"not null;default:0" json:"score"`
	// ActiveToken 保存该队伍当前唯一有效的 Bearer Token 原文。
	// 为空表示未登录；每个请求都会用它和客户端出示的 Token 做严格相等比较。
	ActiveToken *string   `gorm:"size:512" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "qrhunt_team"
}

// BeforeSave GORM Hook，在保存前自动哈希密码。
// 新建记录 (ID=0) 或显式更新 Password 字段时执行。
func (t *Team) BeforeSave(tx *gorm.DB) (err error) {
	if t.Password != "" && (t.ID == 0 || tx.Statement.Changed("Password")) {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(t.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		t.Password = string(hashedPassword)
	}
	return
}

// CheckPassword 校验密码是否正确（bcrypt 内部为恒定时间比较）
func (t *Team) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(t.Password), []byte(password))
	return err == nil
}
