package models

import "time"

// Blog 博客表。点赞数/评论数不落表，读取时从点赞、评论表统计
type Blog struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID  uint64 `gorm:"not null;index:idx_blogs_user_id" json:"user_id"`
	Content string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `gorm:"index:idx_blogs_created_at" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Blog) TableName() string {
	return "blogs"
}

// BlogLike 博客点赞表
// 唯一键: blog_id + user_id，重复点赞由数据库兜底
type BlogLike struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	BlogID    uint64    `gorm:"uniqueIndex:uk_blog_user;not null" json:"blog_id"`
	UserID    uint64    `gorm:"uniqueIndex:uk_blog_user;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (BlogLike) TableName() string {
	return "blog_likes"
}
