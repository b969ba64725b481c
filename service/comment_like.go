package service

import (
	"Plume/dao"
	"Plume/models"
	"Plume/pkg/log"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const CommentLikeCountKey = "comment:like:count:%d"

var _ ICommentLikeService = (*CommentLikeService)(nil)

type ICommentLikeService interface {
	Like(ctx context.Context, commentID, userID uint64) (*models.CommentLike, error)
	Unlike(ctx context.Context, commentID, userID uint64) error
	ListByComment(ctx context.Context, commentID uint64) ([]*models.CommentLike, error)
	LikeCount(ctx context.Context, commentID uint64) (int64, error)
}

type CommentLikeService struct {
	LikeDAO    *dao.CommentLike
	CommentDAO *dao.Comment
	Redis      *redis.Client
}

// Like 点赞评论，语义与博客点赞一致，存储独立
func (s *CommentLikeService) Like(ctx context.Context, commentID, userID uint64) (*models.CommentLike, error) {
	exist, err := s.CommentDAO.IsExist(ctx, "id = ?", commentID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrCommentNotFound
	}

	liked, err := s.LikeDAO.CheckExists(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, ErrAlreadyLiked
	}

	like := &models.CommentLike{
		CommentID: commentID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.LikeDAO.Create(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}

	s.invalidateCount(ctx, commentID)
	return like, nil
}

// Unlike 取消点赞，幂等
func (s *CommentLikeService) Unlike(ctx context.Context, commentID, userID uint64) error {
	if err := s.LikeDAO.Delete(ctx, commentID, userID); err != nil {
		return err
	}
	s.invalidateCount(ctx, commentID)
	return nil
}

func (s *CommentLikeService) ListByComment(ctx context.Context, commentID uint64) ([]*models.CommentLike, error) {
	return s.LikeDAO.FindByCommentID(ctx, commentID)
}

func (s *CommentLikeService) LikeCount(ctx context.Context, commentID uint64) (int64, error) {
	key := fmt.Sprintf(CommentLikeCountKey, commentID)
	if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
		if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return count, nil
		}
	}

	count, err := s.LikeDAO.CountByCommentID(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if err := s.Redis.Set(ctx, key, count, likeCountTTL).Err(); err != nil {
		log.L.Warn("cache like count failed", zap.Uint64("comment_id", commentID), zap.Error(err))
	}
	return count, nil
}

func (s *CommentLikeService) invalidateCount(ctx context.Context, commentID uint64) {
	key := fmt.Sprintf(CommentLikeCountKey, commentID)
	if err := s.Redis.Del(ctx, key).Err(); err != nil {
		log.L.Warn("invalidate like count failed", zap.Uint64("comment_id", commentID), zap.Error(err))
	}
}
