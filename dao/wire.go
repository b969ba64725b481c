package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewBlogDAO,
	NewComment,
	NewBlogLike,
	NewCommentLike,
	NewTag,
	NewBlogTag,
)
