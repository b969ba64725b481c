package dao

import (
	"Plume/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// FindByBlogID 博客下的评论列表
func (d *Comment) FindByBlogID(ctx context.Context, blogID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("blog_id = ?", blogID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// DeleteCascade 删除评论及其点赞
func (d *Comment) DeleteCascade(ctx context.Context, commentID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).
			Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", commentID).Delete(&models.Comment{}).Error
	})
}
