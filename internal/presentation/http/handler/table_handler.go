package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/linato/linato-pos/internal/application/service"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/internal/presentation/http/dto/request"
	"github.com/linato/linato-pos/internal/presentation/http/dto/response"
)

// TableHandler handles dining table HTTP requests
type TableHandler struct {
	tableService *service.TableService
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService *service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// Create handles table creation
func (h *TableHandler) Create(c *gin.Context) {
	var req request.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.Create(c.Request.Context(), &service.TableInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Table created", table)
}

// List returns the floor layout, optionally filtered by status
func (h *TableHandler) List(c *gin.Context) {
	var status *enum.TableStatus
	switch c.Query("status") {
	case "available":
		s := enum.TableStatusAvailable
		status = &s
	case "occupied":
		s := enum.TableStatusOccupied
		status = &s
	case "":
	default:
		response.BadRequest(c, "Invalid status filter")
		return
	}

	tables, err := h.tableService.List(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tables retrieved", tables)
}

// Update handles table editing
func (h *TableHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid table id")
		return
	}

	var req request.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.Update(c.Request.Context(), id, &service.TableInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table updated", table)
}

// Delete handles table removal
func (h *TableHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid table id")
		return
	}

	if err := h.tableService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
