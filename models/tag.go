package models

import "time"

// Tag 标签表。标签一经创建不再修改、不做删除，孤儿标签可以接受
type Tag struct {
	ID uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	// 名称匹配区分大小写。MySQL 建表时 name 列必须钉 utf8mb4_bin
	// 排序规则，默认的 *_ci 下 = 和 LIKE 都不区分大小写
	Name      string    `gorm:"type:varchar(64);uniqueIndex:uk_tags_name;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// BlogTag 博客与标签的中间表
type BlogTag struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	// 联合唯一索引：确保 (blog_id, tag_id) 组合唯一
	BlogID uint64 `gorm:"uniqueIndex:uk_blog_tag;not null" json:"blog_id"`
	TagID  uint64 `gorm:"uniqueIndex:uk_blog_tag;not null;index:idx_blog_tags_tag_id" json:"tag_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (BlogTag) TableName() string {
	return "blog_tags"
}
