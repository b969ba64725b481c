package models

import "time"

// User 用户表
type User struct {
	// 关闭自增，ID 由 snowflake 生成
	ID       uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string `gorm:"type:varchar(64);uniqueIndex:uk_users_name;not null" json:"name"`
	Nickname string `gorm:"type:varchar(64);not null;default:''" json:"nickname"`
	// bcrypt 哈希，永远不出现在响应里
	Password string `gorm:"type:varchar(128);not null" json:"-"`
	IconURL  string `gorm:"type:varchar(255);default:''" json:"icon_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
