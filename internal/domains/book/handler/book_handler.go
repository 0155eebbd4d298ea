package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-manager/internal/domains/book/model"
	"book-manager/internal/domains/book/service"
	"book-manager/internal/shared/response"
	"book-manager/internal/shared/utils"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// Create - POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req.ToBook())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, b.ToResponse())
}

// GetByID - GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b.ToResponse())
}

// Update - PATCH /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req model.UpdateBookRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b.ToResponse())
}

// RegisterRoutes mounts the book endpoints on rg.
func (h *BookHandler) RegisterRoutes(rg gin.IRouter) {
	books := rg.Group("/books")
	{
		books.POST("", h.Create)
		books.GET("/:id", h.GetByID)
		books.PATCH("/:id", h.Update)
	}
}
