package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/application/service"
	"github.com/linato/linato-pos/internal/domain/repository"
	"github.com/linato/linato-pos/internal/presentation/http/dto/request"
	"github.com/linato/linato-pos/internal/presentation/http/dto/response"
	"github.com/linato/linato-pos/pkg/pagination"
)

// ProductHandler handles menu product HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func toProductInput(req *request.ProductRequest) *service.ProductInput {
	return &service.ProductInput{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      req.Price,
		Cost:       req.Cost,
		ImagePath:  req.ImagePath,
		IsActive:   req.IsActive,
	}
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), toProductInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// List handles product listing with filters. all=true returns the whole menu
// unpaginated for the POS terminal grid.
func (h *ProductHandler) List(c *gin.Context) {
	var req request.ProductFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		All:        req.All,
	}
	params.Pagination.Validate()

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category id")
			return
		}
		params.CategoryID = &categoryID
	}
	switch req.IsActive {
	case "true":
		active := true
		params.IsActive = &active
	case "false":
		active := false
		params.IsActive = &active
	}

	result, err := h.productService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved", result)
}

// Get handles fetching one product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product id")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved", product)
}

// Update handles product editing
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product id")
		return
	}

	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, toProductInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", product)
}

// Delete handles product removal
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product id")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
