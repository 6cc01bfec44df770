// file: models/answer.go
package models

import (
	"time"
)

// Answer 一条答题尝试记录，写入后不可变。
// (team_id, qr_value) 上的联合唯一索引是"每队每码至多一次作答"的存储层保证：
// 重复插入以 gorm.ErrDuplicatedKey 失败，调用方把它作为判重的权威信号，
// 而不是先查后插。
type Answer struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	TeamID    uint32    `gorm:"not null;uniqueIndex:idx_team_qr" json:"team_id"`
	QRValue   string    `gorm:"column:qr_value;size:255;not null;uniqueIndex:idx_team_qr" json:"qr_value"`
	QRCodeID  uint32    `gorm:"column:qr_code_id;index" json:"qr_code_id"`
	Answer    string    `gorm:"size:255;not null" json:"answer"`
	IsCorrect bool      `gorm:"not null;default:false" json:"is_correct"`
	Points    int       `gorm:"not null;default:0" json:"points"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (Answer) TableName() string {
	return "qrhunt_answer"
}
