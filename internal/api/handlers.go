package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"papka/internal/pg"
)

// fail — единая точка выхода ошибок. Наружу уходят только две категории:
// NoPrimaryKey как 400 с текстом, всё остальное как 500 "Unexpected error".
// Детали (включая код Postgres) остаются в серверном логе.
func fail(c *gin.Context, err error) {
	if errors.Is(err, pg.ErrNoPrimaryKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		log.Printf("[%s] database error %s: %s", requestID(c), pgErr.Code, pgErr.Message)
	} else {
		log.Printf("[%s] error: %v", requestID(c), err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
}

// GET /directories
func DirectoriesHandler(store *pg.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tables, err := store.Directories(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, tables)
	}
}

type createDirectoryRequest struct {
	Directory  string        `json:"directory"`
	Properties []pg.Property `json:"properties"`
}

// POST /directory
func CreateDirectoryHandler(store *pg.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createDirectoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		if err := store.CreateDirectory(c.Request.Context(), req.Directory, req.Properties); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}

// DELETE /directory?directory=x
func DeleteDirectoryHandler(store *pg.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.DeleteDirectory(c.Request.Context(), c.Query("directory")); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}

type objectsRequest struct {
	Directory string `form:"directory"`
	Cursor    int64  `form:"cursor"`
}

// GET /objects?directory=x&cursor=n
func ObjectsHandler(store *pg.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req objectsRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
			return
		}
		page, err := store.ListObjects(c.Request.Context(), req.Directory, req.Cursor)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

type createObjectRequest struct {
	Directory  string            `json:"directory"`
	Properties map[string]string `json:"properties"`
}

// POST /object
func CreateObjectHandler(store *pg.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createObjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		if err := store.CreateObject(c.Request.Context(), req.Directory, req.Properties); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}

type updateObjectRequest struct {
	Directory  string            `json:"directory"`
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// PUT /object
func UpdateObjectHandler(store *pg.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateObjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		if err := store.UpdateObject(c.Request.Context(), req.Directory, req.ID, req.Properties); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}

// DELETE /object?directory=x&id=y
func DeleteObjectHandler(store *pg.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.DeleteObject(c.Request.Context(), c.Query("directory"), c.Query("id")); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}
