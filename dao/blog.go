package dao

import (
	"Plume/models"
	"context"

	"gorm.io/gorm"
)

type BlogDAO struct {
	Repo[models.Blog]
}

func NewBlogDAO(db *gorm.DB) *BlogDAO {
	return &BlogDAO{Repo: NewRepo[models.Blog](db)}
}

// FindAll 全量列表，按发布时间倒序
func (d *BlogDAO) FindAll(ctx context.Context) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := d.Db.WithContext(ctx).
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

// FindByUserID 根据用户ID查询博客列表
func (d *BlogDAO) FindByUserID(ctx context.Context, userID uint64) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

// FindByIDs 根据 ID 列表查询博客
func (d *BlogDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Blog, error) {
	if len(ids) == 0 {
		return []*models.Blog{}, nil
	}
	var blogs []*models.Blog
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&blogs).Error
	return blogs, err
}

func (d *BlogDAO) UpdateContent(ctx context.Context, blogID uint64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ?", blogID).
		Update("content", content).Error
}

// DeleteCascade 删除博客及其评论、点赞和标签关联，整体一个事务
func (d *BlogDAO) DeleteCascade(ctx context.Context, blogID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint64
		if err := tx.Model(&models.Comment{}).
			Where("blog_id = ?", blogID).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).
				Delete(&models.CommentLike{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("blog_id = ?", blogID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", blogID).Delete(&models.BlogLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", blogID).Delete(&models.BlogTag{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", blogID).Delete(&models.Blog{}).Error
	})
}
