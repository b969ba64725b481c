package service

import (
	"Plume/dao"
	"Plume/models"
	"Plume/pkg/snowflake"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ ITagService = (*TagService)(nil)

type ITagService interface {
	GetOrCreate(ctx context.Context, name string) (*models.Tag, error)
	AssociateBlogTags(ctx context.Context, blogID uint64, tagNames []string) error
	TagsForBlog(ctx context.Context, blogID uint64) ([]*models.Tag, error)
	SearchBlogIDsByTagNames(ctx context.Context, tagNames []string) ([]uint64, error)
	GetAllTags(ctx context.Context) ([]*models.Tag, error)
}

type TagService struct {
	DB         *gorm.DB
	TagDAO     *dao.Tag
	BlogTagDAO *dao.BlogTag
}

// GetOrCreate 按名称精确查询标签，不存在则创建。
// 并发创建同名标签时先插入，撞唯一索引再回查，不用锁串行化
func (s *TagService) GetOrCreate(ctx context.Context, name string) (*models.Tag, error) {
	tag, err := s.TagDAO.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if tag != nil {
		return tag, nil
	}

	tag = &models.Tag{
		ID:        uint64(snowflake.GenID()),
		Name:      name,
		CreatedAt: time.Now(),
	}
	err = s.TagDAO.Create(ctx, tag)
	if err == nil {
		return tag, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return s.TagDAO.FindByName(ctx, name)
	}
	return nil, err
}

// AssociateBlogTags 全量替换博客的标签关联：先删后插，一个事务内完成。
// 并发对同一博客重打标签时不会出现两次调用交错后的混合结果
func (s *TagService) AssociateBlogTags(ctx context.Context, blogID uint64, tagNames []string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", blogID).Delete(&models.BlogTag{}).Error; err != nil {
			return err
		}

		seen := make(map[string]struct{}, len(tagNames))
		for _, name := range tagNames {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}

			tag, err := getOrCreateTagTx(tx, name)
			if err != nil {
				return err
			}
			blogTag := &models.BlogTag{
				BlogID:    blogID,
				TagID:     tag.ID,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(blogTag).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func getOrCreateTagTx(tx *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	err := tx.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = models.Tag{
		ID:        uint64(snowflake.GenID()),
		Name:      name,
		CreatedAt: time.Now(),
	}
	err = tx.Create(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
			return nil, err
		}
		return &tag, nil
	}
	return nil, err
}

// TagsForBlog 博客当前关联的标签
func (s *TagService) TagsForBlog(ctx context.Context, blogID uint64) ([]*models.Tag, error) {
	tagIDs, err := s.BlogTagDAO.FindTagIDsByBlogID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return s.TagDAO.FindByIDs(ctx, tagIDs)
}

// SearchBlogIDsByTagNames 每个输入名按子串匹配标签，取并集后返回关联的博客 ID
func (s *TagService) SearchBlogIDsByTagNames(ctx context.Context, tagNames []string) ([]uint64, error) {
	tagIDSet := make(map[uint64]struct{})
	tagIDs := make([]uint64, 0)

	for _, name := range tagNames {
		matched, err := s.TagDAO.FindByNameContaining(ctx, name)
		if err != nil {
			return nil, err
		}
		for _, tag := range matched {
			if _, ok := tagIDSet[tag.ID]; !ok {
				tagIDSet[tag.ID] = struct{}{}
				tagIDs = append(tagIDs, tag.ID)
			}
		}
	}

	return s.BlogTagDAO.FindBlogIDsByTagIDs(ctx, tagIDs)
}

func (s *TagService) GetAllTags(ctx context.Context) ([]*models.Tag, error) {
	return s.TagDAO.FindAll(ctx)
}
