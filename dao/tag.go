package dao

import (
	"Plume/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type Tag struct {
	Repo[models.Tag]
}

type BlogTag struct {
	Repo[models.BlogTag]
}

func NewTag(db *gorm.DB) *Tag {
	return &Tag{
		Repo: NewRepo[models.Tag](db),
	}
}

func NewBlogTag(db *gorm.DB) *BlogTag {
	return &BlogTag{
		Repo: NewRepo[models.BlogTag](db),
	}
}

// FindByName 按名称精确查询，不存在返回 nil
func (d *Tag) FindByName(ctx context.Context, name string) (*models.Tag, error) {
	tag, err := d.Repo.FindByWhere(ctx, "name = ?", name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return tag, err
}

// FindByNameContaining 按名称子串匹配（区分大小写）
func (d *Tag) FindByNameContaining(ctx context.Context, keyword string) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).
		Where("name LIKE ?", "%"+keyword+"%").
		Find(&tags).Error
	return tags, err
}

// FindByIDs 根据 ID 列表查询标签
func (d *Tag) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Tag, error) {
	if len(ids) == 0 {
		return []*models.Tag{}, nil
	}
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&tags).Error
	return tags, err
}

// FindTagIDsByBlogID 博客当前关联的标签 ID
func (d *BlogTag) FindTagIDsByBlogID(ctx context.Context, blogID uint64) ([]uint64, error) {
	var tagIDs []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.BlogTag{}).
		Where("blog_id = ?", blogID).
		Pluck("tag_id", &tagIDs).Error
	return tagIDs, err
}

// FindBlogIDsByTagIDs 命中任一标签的博客 ID 集合（去重）
func (d *BlogTag) FindBlogIDsByTagIDs(ctx context.Context, tagIDs []uint64) ([]uint64, error) {
	if len(tagIDs) == 0 {
		return []uint64{}, nil
	}
	var blogIDs []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.BlogTag{}).
		Distinct("blog_id").
		Where("tag_id IN ?", tagIDs).
		Pluck("blog_id", &blogIDs).Error
	return blogIDs, err
}
