package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID    string `json:"id" gorm:"type:varchar(255);primaryKey"`
	Email string `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	// Empty for users that signed in through Google.
	Password  string    `json:"-" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
