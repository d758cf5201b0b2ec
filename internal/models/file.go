package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
)

func (t FileType) Valid() bool {
	return t == FileTypeImage || t == FileTypeVideo
}

type File struct {
	ID        string    `json:"id" gorm:"type:varchar(255);primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	Type      FileType  `json:"type" gorm:"type:varchar(16);not null"`
	Size      int64     `json:"size" gorm:"not null"` // bytes
	UserID    *string   `json:"userId" gorm:"type:varchar(255);index"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	FileTags []FileTag  `json:"-" gorm:"foreignKey:FileID;constraint:OnDelete:CASCADE"`
	Views    []FileView `json:"-" gorm:"foreignKey:FileID;constraint:OnDelete:CASCADE"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
