// file: models/location_hint.go
package models

import (
	"time"
)

// LocationHint 按轮次分组的位置提示，只读为主的参考数据
type LocationHint struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	Round     int       `gorm:"unique;not null" json:"round"`
	Hints     []string  `gorm:"serializer:json;type:text" json:"hints"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LocationHint) TableName() string {
	return "qrhunt_location_hint"
}
