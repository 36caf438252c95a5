package models

import (
	"time"

	"gorm.io/gorm"
)

type Subject struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Slug string `json:"slug" gorm:"not null;size:50;uniqueIndex" validate:"required,min=1,max=50"`
	Name string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Subject) TableName() string {
	return "subjects"
}
