// api/router.go
package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"papka/internal/pg"
)

// NewRouter собирает маршруты и middleware. Отдаём *gin.Engine,
// чтобы в тестах гонять его через httptest без сокета.
func NewRouter(store *pg.Store, token string, timeout time.Duration) *gin.Engine {
	r := gin.Default()

	r.Use(RequestID(), Timeout(timeout), Authorize(token))

	r.GET("/directories", DirectoriesHandler(store))
	r.POST("/directory", CreateDirectoryHandler(store))
	r.DELETE("/directory", DeleteDirectoryHandler(store))

	r.GET("/objects", ObjectsHandler(store))
	r.POST("/object", CreateObjectHandler(store))
	r.PUT("/object", UpdateObjectHandler(store))
	r.DELETE("/object", DeleteObjectHandler(store))

	return r
}

func RunServer(addr string, r *gin.Engine) {
	_ = r.Run(addr)
}
