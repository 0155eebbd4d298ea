package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-manager/internal/domains/author/model"
	"book-manager/internal/domains/author/service"
	"book-manager/internal/shared/response"
	"book-manager/internal/shared/utils"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create - POST /authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.service.Create(c.Request.Context(), req.Name, req.BirthDate.Time)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, a.ToResponse())
}

// GetByID - GET /authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a.ToResponse())
}

// Update - PATCH /authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req model.UpdateAuthorRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a.ToResponse())
}

// ListBooks - GET /authors/:id/books
func (h *AuthorHandler) ListBooks(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	books, err := h.service.ListBooks(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, model.ToBookSummaryResponses(books))
}

// RegisterRoutes mounts the author endpoints on rg.
func (h *AuthorHandler) RegisterRoutes(rg gin.IRouter) {
	authors := rg.Group("/authors")
	{
		authors.POST("", h.Create)
		authors.GET("/:id", h.GetByID)
		authors.PATCH("/:id", h.Update)
		authors.GET("/:id/books", h.ListBooks)
	}
}

