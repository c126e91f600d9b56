package model

import "time"

type PostModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	PublishedAt time.Time      `gorm:"autoCreateTime" json:"published_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Comments    []CommentModel `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

type CommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"not null;index" json:"post_id"`
	Author    string    `gorm:"type:text;not null" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}
