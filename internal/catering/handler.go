package catering

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
// Public catering pages
// --------------------------------------------------

func (h *Handler) List(c *gin.Context) {
	opts, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load catering options"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": opts})
}

func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Detail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "catering option not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load catering option"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// --------------------------------------------------
// Selection validation (quota gate before add-to-cart)
// --------------------------------------------------

func (h *Handler) Validate(c *gin.Context) {
	var sel Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if sel.Quantities == nil {
		sel.Quantities = make(map[string]int)
	}
	if sel.Extras == nil {
		sel.Extras = make(map[string][]string)
	}

	result, err := h.service.ValidateSelection(c.Request.Context(), c.Param("slug"), &sel)
	if err != nil {
		var quotaErr *QuotaUnmetError
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "catering option not found"})
		case errors.As(err, &quotaErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  quotaErr.Error(),
				"result": result,
			})
		case errors.Is(err, ErrEmptySelection):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  err.Error(),
				"result": result,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not validate selection"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// --------------------------------------------------
// Admin CRUD
// --------------------------------------------------

func (h *AdminHandler) List(c *gin.Context) {
	opts, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load catering options"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": opts})
}

func (h *AdminHandler) Create(c *gin.Context) {
	var opt Option
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &opt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) Update(c *gin.Context) {
	var opt Option
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	opt.ID = c.Param("id")

	if err := h.service.Update(c.Request.Context(), &opt); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "catering option not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, opt)
}

func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "catering option not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete catering option"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
