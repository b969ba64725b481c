//go:build wireinject
// +build wireinject

package main

import (
	"Plume/config"
	"Plume/dao"
	"Plume/handler"
	"Plume/pkg/client"
	"Plume/pkg/database"
	"Plume/pkg/llm"
	"Plume/pkg/oss"
	"Plume/pkg/server"
	"Plume/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		database.NewDB,
		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideLLMConfig,
		oss.GetOssClient,
		llm.NewTagGenerator,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Blog), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Tag), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
