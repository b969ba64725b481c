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

const (
	// 点赞数缓存，短 TTL，点赞/取消时失效
	BlogLikeCountKey = "blog:like:count:%d"

	likeCountTTL = 5 * time.Minute
)

var _ IBlogLikeService = (*BlogLikeService)(nil)

type IBlogLikeService interface {
	Like(ctx context.Context, blogID, userID uint64) (*models.BlogLike, error)
	Unlike(ctx context.Context, blogID, userID uint64) error
	ListByBlog(ctx context.Context, blogID uint64) ([]*models.BlogLike, error)
	LikeCount(ctx context.Context, blogID uint64) (int64, error)
}

type BlogLikeService struct {
	LikeDAO *dao.BlogLike
	BlogDAO *dao.BlogDAO
	Redis   *redis.Client
}

// Like 点赞。先查一遍当快速路径，真正的去重靠 (blog_id, user_id) 唯一索引
func (s *BlogLikeService) Like(ctx context.Context, blogID, userID uint64) (*models.BlogLike, error) {
	exist, err := s.BlogDAO.IsExist(ctx, "id = ?", blogID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrBlogNotFound
	}

	liked, err := s.LikeDAO.CheckExists(ctx, blogID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, ErrAlreadyLiked
	}

	like := &models.BlogLike{
		BlogID:    blogID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.LikeDAO.Create(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}

	s.invalidateCount(ctx, blogID)
	return like, nil
}

// Unlike 取消点赞，幂等：没点过赞也静默成功
func (s *BlogLikeService) Unlike(ctx context.Context, blogID, userID uint64) error {
	if err := s.LikeDAO.Delete(ctx, blogID, userID); err != nil {
		return err
	}
	s.invalidateCount(ctx, blogID)
	return nil
}

func (s *BlogLikeService) ListByBlog(ctx context.Context, blogID uint64) ([]*models.BlogLike, error) {
	return s.LikeDAO.FindByBlogID(ctx, blogID)
}

// LikeCount 点赞数。缓存未命中时从点赞表统计再回填，
// 计数永远来自记录表，不做增量维护
func (s *BlogLikeService) LikeCount(ctx context.Context, blogID uint64) (int64, error) {
	key := fmt.Sprintf(BlogLikeCountKey, blogID)
	if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
		if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return count, nil
		}
	}

	count, err := s.LikeDAO.CountByBlogID(ctx, blogID)
	if err != nil {
		return 0, err
	}
	if err := s.Redis.Set(ctx, key, count, likeCountTTL).Err(); err != nil {
		log.L.Warn("cache like count failed", zap.Uint64("blog_id", blogID), zap.Error(err))
	}
	return count, nil
}

func (s *BlogLikeService) invalidateCount(ctx context.Context, blogID uint64) {
	key := fmt.Sprintf(BlogLikeCountKey, blogID)
	if err := s.Redis.Del(ctx, key).Err(); err != nil {
		log.L.Warn("invalidate like count failed", zap.Uint64("blog_id", blogID), zap.Error(err))
	}
}
