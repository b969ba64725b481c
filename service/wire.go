package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(BlogService), "*"),
	wire.Bind(new(IBlogService), new(*BlogService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(BlogLikeService), "*"),
	wire.Bind(new(IBlogLikeService), new(*BlogLikeService)),

	wire.Struct(new(CommentLikeService), "*"),
	wire.Bind(new(ICommentLikeService), new(*CommentLikeService)),

	wire.Struct(new(TagService), "*"),
	wire.Bind(new(ITagService), new(*TagService)),

	NewOssService,
	wire.Bind(new(IOssService), new(*OssService)),
)
