package model

import "time"

type ProjectModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"type:text;not null" json:"category"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	VideoURL    string    `gorm:"type:text" json:"video_url"`
	LiveURL     string    `gorm:"type:text" json:"live_url"`
	RepoURL     string    `gorm:"type:text" json:"repo_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProjectModel) TableName() string {
	return "projects"
}
