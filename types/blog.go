package types

type CreateBlogRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateBlogRequest struct {
	Content *string `json:"content"`
}
