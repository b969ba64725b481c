package service

import (
	"Plume/models"
	"Plume/pkg/snowflake"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newTestTagService(db)
	ctx := context.Background()

	created, err := svc.GetOrCreate(ctx, "golang")
	require.NoError(t, err)
	require.NotNil(t, created)

	again, err := svc.GetOrCreate(ctx, "golang")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// 查询没查到之后、插入之前别人先建了同名标签：
// 插入撞 uk_tags_name 唯一索引，回查拿别人建好的那条，不报错不重复
func TestGetOrCreate_ConcurrentInsertRequeries(t *testing.T) {
	db := newTestDB(t)
	svc := newTestTagService(db)
	ctx := context.Background()

	raced := &models.Tag{ID: uint64(snowflake.GenID()), Name: "golang"}
	planConflictInsert(t, db, raced)

	tag, err := svc.GetOrCreate(ctx, "golang")
	require.NoError(t, err)
	assert.Equal(t, raced.ID, tag.ID)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// 关联事务内部的标签创建同样靠唯一索引兜底回查
func TestAssociateBlogTags_ConcurrentTagInsert(t *testing.T) {
	db := newTestDB(t)
	svc := newTestTagService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog := createTestBlog(t, db, user.ID, "hello")

	raced := &models.Tag{ID: uint64(snowflake.GenID()), Name: "golang"}
	planConflictInsert(t, db, raced)

	require.NoError(t, svc.AssociateBlogTags(ctx, blog.ID, []string{"golang"}))

	tags, err := svc.TagsForBlog(ctx, blog.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, raced.ID, tags[0].ID)
}

// 全量替换：重新关联后旧关联必须一条不剩
func TestAssociateBlogTags_Replace(t *testing.T) {
	db := newTestDB(t)
	svc := newTestTagService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog := createTestBlog(t, db, user.ID, "hello")

	require.NoError(t, svc.AssociateBlogTags(ctx, blog.ID, []string{"旅行", "美食"}))
	assert.ElementsMatch(t, []string{"旅行", "美食"}, tagNames(t, svc, blog.ID))

	require.NoError(t, svc.AssociateBlogTags(ctx, blog.ID, []string{"摄影"}))
	assert.Equal(t, []string{"摄影"}, tagNames(t, svc, blog.ID))

	// 标签本身不删，孤儿标签留在标签表里
	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestAssociateBlogTags_DedupNames(t *testing.T) {
	db := newTestDB(t)
	svc := newTestTagService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog := createTestBlog(t, db, user.ID, "hello")

	require.NoError(t, svc.AssociateBlogTags(ctx, blog.ID, []string{"go", "go", "go"}))
	assert.Equal(t, []string{"go"}, tagNames(t, svc, blog.ID))
}

func TestAssociateBlogTags_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := newTestTagService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog := createTestBlog(t, db, user.ID, "hello")

	require.NoError(t, svc.AssociateBlogTags(ctx, blog.ID, []string{"go"}))
	require.NoError(t, svc.AssociateBlogTags(ctx, blog.ID, nil))
	assert.Empty(t, tagNames(t, svc, blog.ID))
}

func TestAssociateBlogTags_ReuseExistingTag(t *testing.T) {
	db := newTestDB(t)
	svc := newTestTagService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog1 := createTestBlog(t, db, user.ID, "a")
	blog2 := createTestBlog(t, db, user.ID, "b")

	require.NoError(t, svc.AssociateBlogTags(ctx, blog1.ID, []string{"go"}))
	require.NoError(t, svc.AssociateBlogTags(ctx, blog2.ID, []string{"go"}))

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// 子串匹配，多个输入取并集，命中博客去重
func TestSearchBlogIDsByTagNames(t *testing.T) {
	db := newTestDB(t)
	svc := newTestTagService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog1 := createTestBlog(t, db, user.ID, "a")
	blog2 := createTestBlog(t, db, user.ID, "b")
	blog3 := createTestBlog(t, db, user.ID, "c")

	require.NoError(t, svc.AssociateBlogTags(ctx, blog1.ID, []string{"golang", "web"}))
	require.NoError(t, svc.AssociateBlogTags(ctx, blog2.ID, []string{"golang"}))
	require.NoError(t, svc.AssociateBlogTags(ctx, blog3.ID, []string{"cooking"}))

	ids, err := svc.SearchBlogIDsByTagNames(ctx, []string{"go"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{blog1.ID, blog2.ID}, ids)

	// 两个词都命中 blog1，结果不重复
	ids, err = svc.SearchBlogIDsByTagNames(ctx, []string{"go", "web"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{blog1.ID, blog2.ID}, ids)

	ids, err = svc.SearchBlogIDsByTagNames(ctx, []string{"nothing"})
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestGetAllTags(t *testing.T) {
	db := newTestDB(t)
	svc := newTestTagService(db)
	ctx := context.Background()

	_, err := svc.GetOrCreate(ctx, "a")
	require.NoError(t, err)
	_, err = svc.GetOrCreate(ctx, "b")
	require.NoError(t, err)

	tags, err := svc.GetAllTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 2)
}
