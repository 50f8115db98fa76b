package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// Public
// --------------------------------------------------

func (h *Handler) Banners(c *gin.Context) {
	banners, err := h.service.ActiveBanners(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load banners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

func (h *Handler) Notices(c *gin.Context) {
	notices, err := h.service.ActiveNotices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load notices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": notices})
}

func (h *Handler) Slides(c *gin.Context) {
	slides, err := h.service.ActiveSlides(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load slides"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slides": slides})
}

// --------------------------------------------------
// Admin: banners
// --------------------------------------------------

func (h *AdminHandler) ListBanners(c *gin.Context) {
	banners, err := h.service.ListBanners(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load banners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

func (h *AdminHandler) CreateBanner(c *gin.Context) {
	var b Banner
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.service.CreateBanner(c.Request.Context(), &b)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateBanner(c *gin.Context) {
	var b Banner
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	b.ID = c.Param("id")

	if err := h.service.UpdateBanner(c.Request.Context(), &b); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "banner not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *AdminHandler) DeleteBanner(c *gin.Context) {
	if err := h.service.DeleteBanner(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "banner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete banner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// --------------------------------------------------
// Admin: notices
// --------------------------------------------------

func (h *AdminHandler) ListNotices(c *gin.Context) {
	notices, err := h.service.ListNotices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load notices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": notices})
}

func (h *AdminHandler) CreateNotice(c *gin.Context) {
	var n Notice
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.service.CreateNotice(c.Request.Context(), &n)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateNotice(c *gin.Context) {
	var n Notice
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	n.ID = c.Param("id")

	if err := h.service.UpdateNotice(c.Request.Context(), &n); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *AdminHandler) DeleteNotice(c *gin.Context) {
	if err := h.service.DeleteNotice(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete notice"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// --------------------------------------------------
// Admin: slides
// --------------------------------------------------

func (h *AdminHandler) ListSlides(c *gin.Context) {
	slides, err := h.service.ListSlides(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load slides"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slides": slides})
}

func (h *AdminHandler) CreateSlide(c *gin.Context) {
	var s Slide
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.service.CreateSlide(c.Request.Context(), &s)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateSlide(c *gin.Context) {
	var s Slide
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	s.ID = c.Param("id")

	if err := h.service.UpdateSlide(c.Request.Context(), &s); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "slide not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *AdminHandler) DeleteSlide(c *gin.Context) {
	if err := h.service.DeleteSlide(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "slide not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete slide"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
