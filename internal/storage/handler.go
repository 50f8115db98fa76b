package storage

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Uploader is what the HTTP layer needs from the object store.
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, file multipart.File) (string, error)
}

type Handler struct {
	store Uploader
}

func NewHandler(store Uploader) *Handler {
	return &Handler{store: store}
}

// Upload receives a site image and returns its public URL. The
// optional "section" field sorts keys into folders (banners, menu...).
func (h *Handler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	if err := ValidateImageExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := ImageKey(c.PostForm("section"), header.Filename)

	url, err := h.store.Upload(
		c.Request.Context(),
		key,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"key": key,
		"url": url,
	})
}
