package models

import "time"

// Comment 评论表
type Comment struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	BlogID  uint64 `gorm:"not null;index:idx_comments_blog_id" json:"blog_id"`
	UserID  uint64 `gorm:"not null;index:idx_comments_user_id" json:"user_id"`
	Content string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentLike 评论点赞表
type CommentLike struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	CommentID uint64    `gorm:"uniqueIndex:uk_comment_user;not null" json:"comment_id"`
	UserID    uint64    `gorm:"uniqueIndex:uk_comment_user;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
