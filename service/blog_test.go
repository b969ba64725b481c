package service

import (
	"Plume/dao"
	"Plume/models"
	"Plume/pkg/response"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestBlogService(t *testing.T, db *gorm.DB, reply *tagReply) *BlogService {
	t.Helper()
	return &BlogService{
		BlogDAO:    dao.NewBlogDAO(db),
		TagGen:     newTestTagGen(t, reply),
		TagService: newTestTagService(db),
	}
}

func TestCreateBlog(t *testing.T) {
	db := newTestDB(t)
	reply := &tagReply{content: "旅行, 美食"}
	svc := newTestBlogService(t, db, reply)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog, err := svc.CreateBlog(ctx, user.ID, "今天去了京都")
	require.NoError(t, err)
	assert.NotZero(t, blog.ID)
	assert.Equal(t, user.ID, blog.UserID)

	assert.ElementsMatch(t, []string{"旅行", "美食"}, tagNames(t, svc.TagService, blog.ID))
}

// 标签生成失败不阻塞发布，打上兜底标签
func TestCreateBlog_TagGenFails(t *testing.T) {
	db := newTestDB(t)
	svc := &BlogService{
		BlogDAO:    dao.NewBlogDAO(db),
		TagGen:     newFailingTagGen(t),
		TagService: newTestTagService(db),
	}
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog, err := svc.CreateBlog(ctx, user.ID, "内容")
	require.NoError(t, err)

	assert.Equal(t, []string{"general"}, tagNames(t, svc.TagService, blog.ID))
}

func TestCreateBlog_EmptyContent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestBlogService(t, db, &tagReply{content: "x"})

	_, err := svc.CreateBlog(context.Background(), 1, "")
	require.Error(t, err)

	var be *response.BizError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusBadRequest, be.Code)
}

func TestGetBlog_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestBlogService(t, db, &tagReply{content: "x"})

	_, err := svc.GetBlog(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestUpdateBlog(t *testing.T) {
	db := newTestDB(t)
	reply := &tagReply{content: "旧标签"}
	svc := newTestBlogService(t, db, reply)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog, err := svc.CreateBlog(ctx, user.ID, "旧内容")
	require.NoError(t, err)
	assert.Equal(t, []string{"旧标签"}, tagNames(t, svc.TagService, blog.ID))

	// 更新后标签全量重打
	reply.content = "新标签"
	newContent := "新内容"
	updated, err := svc.UpdateBlog(ctx, user.ID, blog.ID, &newContent)
	require.NoError(t, err)
	assert.Equal(t, "新内容", updated.Content)
	assert.Equal(t, []string{"新标签"}, tagNames(t, svc.TagService, blog.ID))

	stored, err := svc.GetBlog(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "新内容", stored.Content)
}

func TestUpdateBlog_NilContentNoop(t *testing.T) {
	db := newTestDB(t)
	reply := &tagReply{content: "标签"}
	svc := newTestBlogService(t, db, reply)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog, err := svc.CreateBlog(ctx, user.ID, "内容")
	require.NoError(t, err)

	updated, err := svc.UpdateBlog(ctx, user.ID, blog.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "内容", updated.Content)
	assert.Equal(t, []string{"标签"}, tagNames(t, svc.TagService, blog.ID))
}

// 先查存在再查属主：不存在报 404，别人的报 403
func TestUpdateBlog_Authorization(t *testing.T) {
	db := newTestDB(t)
	svc := newTestBlogService(t, db, &tagReply{content: "x"})
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")
	blog := createTestBlog(t, db, owner.ID, "内容")

	content := "改"
	_, err := svc.UpdateBlog(ctx, other.ID, 999, &content)
	assert.ErrorIs(t, err, ErrBlogNotFound)

	_, err = svc.UpdateBlog(ctx, other.ID, blog.ID, &content)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteBlog_Cascade(t *testing.T) {
	db := newTestDB(t)
	reply := &tagReply{content: "标签"}
	svc := newTestBlogService(t, db, reply)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	fan := createTestUser(t, db, "fan")

	blog, err := svc.CreateBlog(ctx, owner.ID, "内容")
	require.NoError(t, err)

	comment := createTestComment(t, db, blog.ID, fan.ID, "好文")
	require.NoError(t, db.Create(&models.BlogLike{BlogID: blog.ID, UserID: fan.ID}).Error)
	require.NoError(t, db.Create(&models.CommentLike{CommentID: comment.ID, UserID: owner.ID}).Error)

	require.NoError(t, svc.DeleteBlog(ctx, owner.ID, blog.ID))

	_, err = svc.GetBlog(ctx, blog.ID)
	assert.ErrorIs(t, err, ErrBlogNotFound)

	for _, model := range []any{
		&models.Comment{},
		&models.CommentLike{},
		&models.BlogLike{},
		&models.BlogTag{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T 应被级联清理", model)
	}
}

func TestDeleteBlog_Authorization(t *testing.T) {
	db := newTestDB(t)
	svc := newTestBlogService(t, db, &tagReply{content: "x"})
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")
	blog := createTestBlog(t, db, owner.ID, "内容")

	assert.ErrorIs(t, svc.DeleteBlog(ctx, other.ID, 999), ErrBlogNotFound)
	assert.ErrorIs(t, svc.DeleteBlog(ctx, other.ID, blog.ID), ErrForbidden)
}

func TestListBlogsByUser(t *testing.T) {
	db := newTestDB(t)
	svc := newTestBlogService(t, db, &tagReply{content: "x"})
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	createTestBlog(t, db, alice.ID, "a1")
	createTestBlog(t, db, alice.ID, "a2")
	createTestBlog(t, db, bob.ID, "b1")

	blogs, err := svc.ListBlogsByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, blogs, 2)

	all, err := svc.ListBlogs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSearchBlogsByTags(t *testing.T) {
	db := newTestDB(t)
	svc := newTestBlogService(t, db, &tagReply{content: "x"})
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog1 := createTestBlog(t, db, user.ID, "a")
	blog2 := createTestBlog(t, db, user.ID, "b")

	require.NoError(t, svc.TagService.AssociateBlogTags(ctx, blog1.ID, []string{"golang"}))
	require.NoError(t, svc.TagService.AssociateBlogTags(ctx, blog2.ID, []string{"cooking"}))

	blogs, err := svc.SearchBlogsByTags(ctx, []string{"go"})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, blog1.ID, blogs[0].ID)
}
