package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Authorize проверяет Bearer-токен. Пустой токен в конфиге выключает
// проверку целиком (локальная разработка). Нет заголовка — 400,
// неверный токен — 401.
func Authorize(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing Authorization header"})
			return
		}
		if authorization != "Bearer "+token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
