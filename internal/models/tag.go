package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a label from the shared, global vocabulary.
type Tag struct {
	ID        string    `json:"id" gorm:"type:varchar(255);primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	FileTags []FileTag `json:"-" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TagRef is the {id, name} projection attached to files.
type TagRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
