package store

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/askhat/gostore/internal/auth"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts storage operations under the provided router group.
func RegisterRoutes(group *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}
	group.POST("/files", handler.uploadFile)
	group.GET("/files", handler.listFiles)
	group.GET("/files/content", handler.fetchFile)
	group.DELETE("/files", handler.deleteFile)
}

type httpHandler struct {
	service *Service
}

func (h *httpHandler) uploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file payload"})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file payload"})
		return
	}

	opts := UploadOptions{
		UserID:      requestUserID(c),
		Directory:   c.PostForm("directory"),
		ContentType: c.PostForm("type"),
	}
	if raw, ok := c.GetPostForm("public"); ok {
		public, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid public flag"})
			return
		}
		opts.MakePublic = &public
	}

	file := &FileDescriptor{
		FieldName:    "file",
		OriginalName: fileHeader.Filename,
		FileName:     fileHeader.Filename,
		Encoding:     "7bit",
		MimeType:     fileHeader.Header.Get("Content-Type"),
		SizeBytes:    fileHeader.Size,
		Content:      content,
	}

	url, err := h.service.Upload(c.Request.Context(), file, opts)
	if err != nil {
		if errors.Is(err, ErrBucketNotFound) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage bucket unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func (h *httpHandler) listFiles(c *gin.Context) {
	files, err := h.service.List(c.Request.Context(), c.Query("directory"), requestUserID(c))
	if err != nil {
		if errors.Is(err, ErrBucketNotFound) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage bucket unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list files"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

func (h *httpHandler) fetchFile(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	file, err := h.service.FetchByURL(c.Request.Context(), url)
	if err != nil {
		switch {
		case errors.Is(err, ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		case errors.Is(err, ErrBucketNotFound):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage bucket unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch file"})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, file.MimeType, file.Content)
}

func (h *httpHandler) deleteFile(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), url); err != nil {
		switch {
		case errors.Is(err, ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		case errors.Is(err, ErrBucketNotFound):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage bucket unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// requestUserID scopes the request to the authenticated subject when
// auth is on, otherwise to the optional user query/form value. A blank
// result falls through to the service default.
func requestUserID(c *gin.Context) string {
	if user, ok := auth.CurrentUser(c); ok {
		return user.ID
	}
	if user := c.Query("user"); user != "" {
		return user
	}
	return c.PostForm("user")
}
