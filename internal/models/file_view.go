package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileView is an append-only record of one view of a shared file.
type FileView struct {
	ID        string    `json:"id" gorm:"type:varchar(255);primaryKey"`
	FileID    string    `json:"fileId" gorm:"type:varchar(255);not null;index"`
	IPAddress string    `json:"ipAddress" gorm:"type:text"`
	UserAgent string    `json:"userAgent" gorm:"type:text"`
	ViewedAt  time.Time `json:"viewedAt" gorm:"autoCreateTime;not null"`
}

func (v *FileView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
