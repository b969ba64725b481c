package service

import (
	"Plume/dao"
	"Plume/models"
	"Plume/pkg/response"
	"Plume/pkg/snowflake"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	CreateComment(ctx context.Context, blogID, userID uint64, content string) (*models.Comment, error)
	GetComment(ctx context.Context, commentID uint64) (*models.Comment, error)
	ListByBlog(ctx context.Context, blogID uint64) ([]*models.Comment, error)
	DeleteComment(ctx context.Context, callerID, commentID uint64) error
}

type CommentService struct {
	CommentDAO *dao.Comment
	BlogDAO    *dao.BlogDAO
}

// CreateComment 创建评论，父博客必须存在
func (s *CommentService) CreateComment(ctx context.Context, blogID, userID uint64, content string) (*models.Comment, error) {
	if content == "" {
		return nil, response.BadRequest("评论内容不能为空")
	}

	exist, err := s.BlogDAO.IsExist(ctx, "id = ?", blogID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrBlogNotFound
	}

	comment := &models.Comment{
		ID:        uint64(snowflake.GenID()),
		BlogID:    blogID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetComment(ctx context.Context, commentID uint64) (*models.Comment, error) {
	comment, err := s.CommentDAO.FindById(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommentNotFound
	}
	return comment, err
}

func (s *CommentService) ListByBlog(ctx context.Context, blogID uint64) ([]*models.Comment, error) {
	return s.CommentDAO.FindByBlogID(ctx, blogID)
}

// DeleteComment 只有评论作者能删除，先加载再校验属主
func (s *CommentService) DeleteComment(ctx context.Context, callerID, commentID uint64) error {
	comment, err := s.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if err := requireOwner(callerID, comment.UserID); err != nil {
		return err
	}
	return s.CommentDAO.DeleteCascade(ctx, commentID)
}
