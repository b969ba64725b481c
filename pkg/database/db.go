package database

import (
	"Plume/config"
	"Plume/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接。
// TranslateError 打开后唯一索引冲突会转成 gorm.ErrDuplicatedKey，
// 点赞去重和标签 get-or-create 都依赖这个哨兵错误。
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}
