package dao

import (
	"Plume/models"
	"context"

	"gorm.io/gorm"
)

type CommentLike struct {
	Repo[models.CommentLike]
}

func NewCommentLike(db *gorm.DB) *CommentLike {
	return &CommentLike{
		Repo: NewRepo[models.CommentLike](db),
	}
}

// Create 创建点赞记录，(comment_id, user_id) 唯一索引兜底去重
func (d *CommentLike) Create(ctx context.Context, like *models.CommentLike) error {
	return d.Db.WithContext(ctx).Create(like).Error
}

// Delete 删除点赞记录，记录不存在时静默成功
func (d *CommentLike) Delete(ctx context.Context, commentID, userID uint64) error {
	return d.Db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentLike{}).Error
}

// CheckExists 检查是否点赞
func (d *CommentLike) CheckExists(ctx context.Context, commentID, userID uint64) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	return count > 0, err
}

// FindByCommentID 评论下的点赞记录
func (d *CommentLike) FindByCommentID(ctx context.Context, commentID uint64) ([]*models.CommentLike, error) {
	var likes []*models.CommentLike
	err := d.Db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Find(&likes).Error
	return likes, err
}

// CountByCommentID 点赞数从记录表统计
func (d *CommentLike) CountByCommentID(ctx context.Context, commentID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
