package server

import (
	"Plume/handler"
)

type Handlers struct {
	Auth    *handler.Auth
	User    *handler.User
	Blog    *handler.Blog
	Comment *handler.Comment
	Like    *handler.Like
	Tag     *handler.Tag
}
