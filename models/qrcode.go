// file: models/qrcode.go
package models

import (
	"time"
)

// QRCode 对应线下张贴的一个二维码：一道题、一个正确答案、一个全局扫码上限。
// 不变量：Scans <= MaxScans，达到上限后任何队伍都不能再扫。
type QRCode struct {
	ID uint32 `gorm:"primarykey" json:"id"`
	// Key 是管理端批量上传时的外部主键，按它做幂等 upsert
	Key    string `gorm:"size:100;unique;not null" json:"key"`
	Number string `gorm:"size:20;not null" json:"number"`
	// Value 是二维码实际编码的内容，扫码接口按它查找
	Value        string `gorm:"size:255;unique;not null" json:"value"`
	Question     string `gorm:"type:text;not null" json:"question"`
	QuestionLink string `gorm:"size:512" json:"question_link"`
	Answer       string `gorm:"size:255;not null" json:"-"`
	// Time 是答题时限（分钟），沿用字符串存储
	Time         string    `gorm:"size:10;not null;default:'5'" json:"time"`
	Points       int       `gorm:"not null;default:50" json:"points"`
	Scans        int       `gorm:"not null;default:0" json:"scans"`
	MaxScans     int       `gorm:"not null;default:10" json:"max_scans"`
	QueImageName string    `gorm:"size:255" json:"queimagename"`
	Round        int       `gorm:"not null;default:1;index" json:"round"`
	Active       bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (QRCode) TableName() string {
	return "qrhunt_qrcode"
}
