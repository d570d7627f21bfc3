package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/application/service"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/internal/presentation/http/dto/request"
	"github.com/linato/linato-pos/internal/presentation/http/dto/response"
	"github.com/linato/linato-pos/pkg/pagination"
)

// InventoryHandler handles stock and movement HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ListStocks returns stock levels with their products
func (h *InventoryHandler) ListStocks(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.inventoryService.ListStocks(c.Request.Context(), c.Query("search"), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stocks retrieved", result)
}

// LowStock returns products at or below their reorder level
func (h *InventoryHandler) LowStock(c *gin.Context) {
	stocks, err := h.inventoryService.LowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock retrieved", stocks)
}

// Adjust handles a manual restock or adjustment
func (h *InventoryHandler) Adjust(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movement, err := h.inventoryService.Adjust(c.Request.Context(), *userID, &service.AdjustInput{
		ProductID: req.ProductID,
		Type:      enum.MovementType(req.Type),
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock adjusted", movement)
}

// SetStock overrides a product's on-hand count directly
func (h *InventoryHandler) SetStock(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	productID, ok := parseID(c, "productId")
	if !ok {
		response.BadRequest(c, "Invalid product id")
		return
	}

	var req request.SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	stock, err := h.inventoryService.SetStock(c.Request.Context(), *userID, &service.SetStockInput{
		ProductID:    productID,
		CurrentStock: req.CurrentStock,
		ReorderLevel: req.ReorderLevel,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock updated", stock)
}

// ListMovements returns the movement ledger
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var req request.MovementFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	params.Validate()

	var productID *uuid.UUID
	if req.ProductID != "" {
		id, err := uuid.Parse(req.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product id")
			return
		}
		productID = &id
	}

	result, err := h.inventoryService.ListMovements(c.Request.Context(), productID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Movements retrieved", result)
}
