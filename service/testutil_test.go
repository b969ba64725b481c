package service

import (
	"Plume/config"
	"Plume/dao"
	"Plume/models"
	"Plume/pkg/llm"
	"Plume/pkg/snowflake"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB 内存库，错误翻译要开着，
// 点赞去重和标签 get-or-create 都依赖 gorm.ErrDuplicatedKey
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.BlogLike{},
		&models.Comment{},
		&models.CommentLike{},
		&models.Tag{},
		&models.BlogTag{},
	))
	return db
}

func newTestTagService(db *gorm.DB) *TagService {
	return &TagService{
		DB:         db,
		TagDAO:     dao.NewTag(db),
		BlogTagDAO: dao.NewBlogTag(db),
	}
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uint64(snowflake.GenID()),
		Name:     name,
		Nickname: name,
		Password: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestBlog(t *testing.T, db *gorm.DB, userID uint64, content string) *models.Blog {
	t.Helper()
	blog := &models.Blog{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(blog).Error)
	return blog
}

func createTestComment(t *testing.T, db *gorm.DB, blogID, userID uint64, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		ID:      uint64(snowflake.GenID()),
		BlogID:  blogID,
		UserID:  userID,
		Content: content,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

// tagReply 可变的模型回复，同一个生成器在用例里换词
type tagReply struct {
	content string
}

func newTestTagGen(t *testing.T, reply *tagReply) *llm.TagGenerator {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"model": "test-model",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": %q},
				"finish_reason": "stop"
			}]
		}`, reply.content)
	}))
	t.Cleanup(server.Close)

	return llm.NewTagGenerator(&config.LLM{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		Model:          "test-model",
		TimeoutSeconds: 2,
	})
}

func newFailingTagGen(t *testing.T) *llm.TagGenerator {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "unavailable"}`, http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	return llm.NewTagGenerator(&config.LLM{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		Model:          "test-model",
		TimeoutSeconds: 2,
	})
}

// planConflictInsert 在下一次写入 T 类型记录前抢先插入 row，
// 复现「存在性检查通过后、真正写入前，别的请求先写进去了」的时序。
// 这样存在性快路径看不到冲突，写入只能靠唯一索引兜底
func planConflictInsert[T any](t *testing.T, db *gorm.DB, row *T) {
	t.Helper()
	var fired atomic.Bool
	name := fmt.Sprintf("test:conflict:%T", row)
	err := db.Callback().Create().Before("gorm:create").Register(name, func(d *gorm.DB) {
		if _, ok := d.Statement.Dest.(*T); !ok {
			return
		}
		if !fired.CompareAndSwap(false, true) {
			return
		}
		require.NoError(t, d.Session(&gorm.Session{NewDB: true}).Create(row).Error)
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Callback().Create().Remove(name))
	})
}

func tagNames(t *testing.T, svc ITagService, blogID uint64) []string {
	t.Helper()
	tags, err := svc.TagsForBlog(context.Background(), blogID)
	require.NoError(t, err)
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}
