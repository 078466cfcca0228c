package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const requestIDKey = "requestID"

// RequestID вешает на запрос ULID — он уходит клиенту в заголовке
// и попадает в серверные логи ошибок для корреляции.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ulid.Make().String()
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Timeout ограничивает запрос дедлайном: все запросы к базе идут через
// c.Request.Context() и отменяются вместе с ним.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
