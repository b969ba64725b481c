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

func newTestCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		CommentDAO: dao.NewComment(db),
		BlogDAO:    dao.NewBlogDAO(db),
	}
}

func TestCreateComment(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog := createTestBlog(t, db, user.ID, "内容")

	comment, err := svc.CreateComment(ctx, blog.ID, user.ID, "好文")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, blog.ID, comment.BlogID)
}

// 父博客不存在时不能留下孤儿评论
func TestCreateComment_BlogMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(db)

	_, err := svc.CreateComment(context.Background(), 999, 1, "好文")
	assert.ErrorIs(t, err, ErrBlogNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateComment_EmptyContent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(db)

	user := createTestUser(t, db, "alice")
	blog := createTestBlog(t, db, user.ID, "内容")

	_, err := svc.CreateComment(context.Background(), blog.ID, user.ID, "")
	require.Error(t, err)

	var be *response.BizError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusBadRequest, be.Code)
}

func TestListByBlog(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog := createTestBlog(t, db, user.ID, "内容")
	other := createTestBlog(t, db, user.ID, "别的")

	first, err := svc.CreateComment(ctx, blog.ID, user.ID, "一楼")
	require.NoError(t, err)
	second, err := svc.CreateComment(ctx, blog.ID, user.ID, "二楼")
	require.NoError(t, err)
	_, err = svc.CreateComment(ctx, other.ID, user.ID, "无关")
	require.NoError(t, err)

	comments, err := svc.ListByBlog(ctx, blog.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// 按创建时间正序
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	blog := createTestBlog(t, db, user.ID, "内容")
	comment := createTestComment(t, db, blog.ID, user.ID, "好文")
	require.NoError(t, db.Create(&models.CommentLike{CommentID: comment.ID, UserID: user.ID}).Error)

	require.NoError(t, svc.DeleteComment(ctx, user.ID, comment.ID))

	_, err := svc.GetComment(ctx, comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	// 评论点赞一并清理
	var count int64
	require.NoError(t, db.Model(&models.CommentLike{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteComment_Authorization(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")
	blog := createTestBlog(t, db, owner.ID, "内容")
	comment := createTestComment(t, db, blog.ID, owner.ID, "好文")

	assert.ErrorIs(t, svc.DeleteComment(ctx, other.ID, 999), ErrCommentNotFound)
	assert.ErrorIs(t, svc.DeleteComment(ctx, other.ID, comment.ID), ErrForbidden)
}
