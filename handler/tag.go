package handler

import (
	"Plume/pkg/context"
	"Plume/pkg/response"
	"Plume/service"

	"github.com/gin-gonic/gin"
)

type Tag struct {
	TagService service.ITagService
}

func (h *Tag) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/tags")
	g.GET("", context.Wrap(h.ListTags))
}

// ListTags 全部标签，标签只增不删
func (h *Tag) ListTags(c *gin.Context) error {
	tags, err := h.TagService.GetAllTags(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tags)
	return nil
}
