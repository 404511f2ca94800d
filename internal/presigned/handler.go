package presigned

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/files/signed-url", h.generateSignedURL)
}

type signedURLRequest struct {
	URL string `json:"url" binding:"required"`
	TTL string `json:"ttl"`
}

func (h *Handler) generateSignedURL(c *gin.Context) {
	var req signedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	var ttl time.Duration
	if req.TTL != "" {
		parsed, err := time.ParseDuration(req.TTL)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ttl"})
			return
		}
		ttl = parsed
	}

	url, expires, err := h.service.DownloadURL(req.URL, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign url"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":     url,
		"expires": expires,
	})
}
