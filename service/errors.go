package service

import "Plume/pkg/response"

// 业务错误统一用哨兵值，handler 经 context.Wrap 直接翻译成响应
var (
	ErrInvalidCredentials = response.Unauthorized("用户名或密码错误")
	ErrForbidden          = response.Forbidden("无权操作该资源")
	ErrUserNotFound       = response.NotFound("用户不存在")
	ErrBlogNotFound       = response.NotFound("博客不存在")
	ErrCommentNotFound    = response.NotFound("评论不存在")
	ErrNameTaken          = response.Duplicate("用户名已存在")
	ErrAlreadyLiked       = response.Duplicate("已经点赞过了")
)

// requireOwner 属主校验。调用方必须先加载资源，
// 资源不存在时报 404 而不是 403
func requireOwner(callerID, ownerID uint64) error {
	if callerID != ownerID {
		return ErrForbidden
	}
	return nil
}
