// file: models/admin.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Admin 管理员账号。与 Team 不同，管理员允许多端同时登录，
// 因此没有 ActiveToken 字段，只记录最后登录时间。
type Admin struct {
	ID        uint32     `gorm:"primarykey" json:"id"`
	Username  string     `gorm:"size:50;unique;not null" json:"username"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Email     string     `gorm:"size:100" json:"email,omitempty"`
	Role      string     `gorm:"size:20;not null;default:'admin'" json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Admin) TableName() string {
	return "qrhunt_admin"
}

func (a *Admin) BeforeSave(tx *gorm.DB) (err error) {
	if a.Password != "" && (a.ID == 0 || tx.Statement.Changed("Password")) {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		a.Password = string(hashedPassword)
	}
	return
}

func (a *Admin) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password))
	return err == nil
}
