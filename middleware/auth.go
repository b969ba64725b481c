package middleware

import (
	"net/http"
	"strings"

	pctx "Plume/pkg/context"
	"Plume/pkg/jwt"
	"Plume/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 解析 Bearer 令牌并把用户身份写入请求上下文。
// 缺失、格式错误、签名非法、已过期一律返回同一个 401，不对外区分原因
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "未认证")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "未认证")
			return
		}

		claims, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "未认证")
			return
		}

		c.Set(pctx.CtxUserID, claims.UserID)
		c.Set(pctx.CtxUserName, claims.Name)

		c.Next()
	}
}
