package dao

import (
	"Plume/models"
	"context"

	"gorm.io/gorm"
)

type BlogLike struct {
	Repo[models.BlogLike]
}

func NewBlogLike(db *gorm.DB) *BlogLike {
	return &BlogLike{
		Repo: NewRepo[models.BlogLike](db),
	}
}

// Create 创建点赞记录，(blog_id, user_id) 唯一索引兜底去重
func (d *BlogLike) Create(ctx context.Context, like *models.BlogLike) error {
	return d.Db.WithContext(ctx).Create(like).Error
}

// Delete 删除点赞记录，记录不存在时静默成功
func (d *BlogLike) Delete(ctx context.Context, blogID, userID uint64) error {
	return d.Db.WithContext(ctx).
		Where("blog_id = ? AND user_id = ?", blogID, userID).
		Delete(&models.BlogLike{}).Error
}

// CheckExists 检查是否点赞
func (d *BlogLike) CheckExists(ctx context.Context, blogID, userID uint64) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.BlogLike{}).
		Where("blog_id = ? AND user_id = ?", blogID, userID).
		Count(&count).Error
	return count > 0, err
}

// FindByBlogID 博客下的点赞记录
func (d *BlogLike) FindByBlogID(ctx context.Context, blogID uint64) ([]*models.BlogLike, error) {
	var likes []*models.BlogLike
	err := d.Db.WithContext(ctx).
		Where("blog_id = ?", blogID).
		Find(&likes).Error
	return likes, err
}

// CountByBlogID 点赞数从记录表统计，不单独维护计数字段
func (d *BlogLike) CountByBlogID(ctx context.Context, blogID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.BlogLike{}).
		Where("blog_id = ?", blogID).
		Count(&count).Error
	return count, err
}
