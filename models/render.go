package models

import (
	"time"
)

// Render is one script-to-video run. Status walks
// pending -> processing -> complete | failed.
type Render struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Script     string    `gorm:"type:text;not null" json:"script"`
	Keywords   string    `gorm:"size:255" json:"keywords,omitempty"`
	Status     string    `gorm:"default:'pending'" json:"status"`
	SceneCount int       `json:"scene_count"`
	OutputPath string    `gorm:"size:512" json:"output_path,omitempty"`
	Error      string    `gorm:"type:text" json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Render) TableName() string {
	return "renders"
}
