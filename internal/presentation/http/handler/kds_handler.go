package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/linato/linato-pos/internal/application/service"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/internal/presentation/http/dto/response"
)

// KDSHandler serves the kitchen display queue
type KDSHandler struct {
	orderService *service.OrderService
}

// NewKDSHandler creates a new kitchen display handler
func NewKDSHandler(orderService *service.OrderService) *KDSHandler {
	return &KDSHandler{orderService: orderService}
}

// Queue returns active tickets ordered by confirmation time, optionally
// narrowed to one status
func (h *KDSHandler) Queue(c *gin.Context) {
	var status *enum.OrderStatus
	if s := c.Query("status"); s != "" {
		st := enum.OrderStatus(s)
		status = &st
	}

	orders, err := h.orderService.KitchenQueue(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Kitchen queue retrieved", orders)
}
