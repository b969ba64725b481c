package types

type CreateCommentRequest struct {
	BlogID  uint64 `json:"blog_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}
