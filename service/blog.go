package service

import (
	"Plume/dao"
	"Plume/models"
	"Plume/pkg/llm"
	"Plume/pkg/log"
	"Plume/pkg/response"
	"Plume/pkg/snowflake"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IBlogService = (*BlogService)(nil)

type IBlogService interface {
	CreateBlog(ctx context.Context, userID uint64, content string) (*models.Blog, error)
	GetBlog(ctx context.Context, blogID uint64) (*models.Blog, error)
	ListBlogs(ctx context.Context) ([]*models.Blog, error)
	ListBlogsByUser(ctx context.Context, userID uint64) ([]*models.Blog, error)
	UpdateBlog(ctx context.Context, callerID, blogID uint64, content *string) (*models.Blog, error)
	DeleteBlog(ctx context.Context, callerID, blogID uint64) error
	SearchBlogsByTags(ctx context.Context, tagNames []string) ([]*models.Blog, error)
	TagsForBlog(ctx context.Context, blogID uint64) ([]*models.Tag, error)
}

type BlogService struct {
	BlogDAO    *dao.BlogDAO
	TagGen     *llm.TagGenerator
	TagService ITagService
}

// CreateBlog 创建博客并自动打标签。
// 标签生成失败会退化成兜底标签，不会让发布失败
func (s *BlogService) CreateBlog(ctx context.Context, userID uint64, content string) (*models.Blog, error) {
	if content == "" {
		return nil, response.BadRequest("正文不能为空")
	}

	blog := &models.Blog{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.BlogDAO.Create(ctx, blog); err != nil {
		return nil, err
	}

	tags := s.TagGen.Generate(ctx, content)
	if err := s.TagService.AssociateBlogTags(ctx, blog.ID, tags); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *BlogService) GetBlog(ctx context.Context, blogID uint64) (*models.Blog, error) {
	blog, err := s.BlogDAO.FindById(ctx, blogID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBlogNotFound
	}
	return blog, err
}

func (s *BlogService) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
	return s.BlogDAO.FindAll(ctx)
}

func (s *BlogService) ListBlogsByUser(ctx context.Context, userID uint64) ([]*models.Blog, error) {
	return s.BlogDAO.FindByUserID(ctx, userID)
}

// UpdateBlog 更新正文并重新生成标签，关联全量替换。
// 先加载再校验属主，博客不存在时报 404 而不是 403
func (s *BlogService) UpdateBlog(ctx context.Context, callerID, blogID uint64, content *string) (*models.Blog, error) {
	blog, err := s.GetBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(callerID, blog.UserID); err != nil {
		return nil, err
	}

	if content == nil {
		return blog, nil
	}
	if *content == "" {
		return nil, response.BadRequest("正文不能为空")
	}

	if err := s.BlogDAO.UpdateContent(ctx, blogID, *content); err != nil {
		return nil, err
	}
	blog.Content = *content
	blog.UpdatedAt = time.Now()

	tags := s.TagGen.Generate(ctx, *content)
	if err := s.TagService.AssociateBlogTags(ctx, blogID, tags); err != nil {
		return nil, err
	}

	return blog, nil
}

// DeleteBlog 删除博客，评论、点赞、标签关联一并级联清理
func (s *BlogService) DeleteBlog(ctx context.Context, callerID, blogID uint64) error {
	blog, err := s.GetBlog(ctx, blogID)
	if err != nil {
		return err
	}
	if err := requireOwner(callerID, blog.UserID); err != nil {
		return err
	}

	if err := s.BlogDAO.DeleteCascade(ctx, blogID); err != nil {
		log.L.Error("delete blog failed", zap.Uint64("blog_id", blogID), zap.Error(err))
		return err
	}
	return nil
}

// SearchBlogsByTags 标签子串搜索
func (s *BlogService) SearchBlogsByTags(ctx context.Context, tagNames []string) ([]*models.Blog, error) {
	blogIDs, err := s.TagService.SearchBlogIDsByTagNames(ctx, tagNames)
	if err != nil {
		return nil, err
	}
	return s.BlogDAO.FindByIDs(ctx, blogIDs)
}

func (s *BlogService) TagsForBlog(ctx context.Context, blogID uint64) ([]*models.Tag, error) {
	return s.TagService.TagsForBlog(ctx, blogID)
}
