package models

import "time"

// RenderScene records how one scene of a render was produced.
// ImageSource is "pexels" or "placeholder".
type RenderScene struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RenderID    uint      `gorm:"not null;index" json:"render_id"`
	SceneNumber int       `gorm:"not null" json:"scene_number"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Keyword     string    `gorm:"size:255" json:"keyword"`
	Duration    float64   `json:"duration"`
	ImageSource string    `gorm:"size:32" json:"image_source"`
	CreatedAt   time.Time `json:"created_at"`
}

func (RenderScene) TableName() string {
	return "render_scenes"
}
