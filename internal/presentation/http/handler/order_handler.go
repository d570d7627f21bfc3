package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/application/service"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/internal/domain/repository"
	"github.com/linato/linato-pos/internal/presentation/http/dto/request"
	"github.com/linato/linato-pos/internal/presentation/http/dto/response"
	"github.com/linato/linato-pos/pkg/pagination"
)

// OrderHandler handles order lifecycle HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	shiftService *service.ShiftService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, shiftService *service.ShiftService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		shiftService: shiftService,
	}
}

func toCreateInput(req *request.CreateOrderRequest) *service.CreateOrderInput {
	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID:      it.ProductID,
			Qty:            it.Qty,
			DiscountAmount: it.DiscountAmount,
			Notes:          it.Notes,
		})
	}
	return &service.CreateOrderInput{
		DineType:          enum.DineType(req.DineType),
		TableID:           req.TableID,
		CustomerName:      req.CustomerName,
		Phone:             req.Phone,
		Address:           req.Address,
		Items:             items,
		DiscountAmount:    req.DiscountAmount,
		ServiceChargeRate: req.ServiceChargeRate,
		TaxRate:           req.TaxRate,
		Rounding:          req.Rounding,
		Hold:              req.Hold,
	}
}

// Create handles order creation. The order is tagged with the caller's open
// shift when one exists; orders may still be taken with the drawer closed.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var shiftID *uuid.UUID
	if shift, err := h.shiftService.Current(c.Request.Context(), *userID); err == nil {
		shiftID = &shift.ID
	}

	order, err := h.orderService.Create(c.Request.Context(), *userID, shiftID, toCreateInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created", order)
}

// List handles order listing with filters
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination:    &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		ReceiptNumber: req.ReceiptNumber,
	}
	params.Pagination.Validate()

	if req.Status != "" {
		status := enum.OrderStatus(req.Status)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}
	if req.TableID != "" {
		tableID, err := uuid.Parse(req.TableID)
		if err != nil {
			response.BadRequest(c, "Invalid table id")
			return
		}
		params.TableID = &tableID
	}
	if req.Date != "" {
		date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		params.Date = &date
	}

	orders, total, err := h.orderService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(orders,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// Get handles fetching one order
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved", order)
}

// Update handles editing a pending order's cart
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), id, toCreateInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated", order)
}

// Hold parks a pending order
func (h *OrderHandler) Hold(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	order, err := h.orderService.Hold(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order held", order)
}

// Resume unparks a held order
func (h *OrderHandler) Resume(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	order, err := h.orderService.Resume(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order resumed", order)
}

// Confirm fires the confirm transition and its side effects
func (h *OrderHandler) Confirm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	order, err := h.orderService.Confirm(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order confirmed", order)
}

// UpdateStatus progresses a confirmed order. Kitchen users may only move
// tickets to preparing or ready.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, enum.OrderStatus(req.Status), IsKitchen(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", order)
}

// Cancel voids an order with an admin PIN
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	var req request.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), id, &service.CancelInput{
		Reason:   req.Reason,
		AdminPin: req.AdminPin,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled", order)
}

// AddPayment appends a payment to the order
func (h *OrderHandler) AddPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	var req request.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.AddPayment(c.Request.Context(), id, *userID, &service.AddPaymentInput{
		Method:      enum.PaymentMethod(req.Method),
		Amount:      req.Amount,
		ReferenceNo: req.ReferenceNo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded", order)
}

// ListPayments returns the order's payment ledger
func (h *OrderHandler) ListPayments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	payments, err := h.orderService.ListPayments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved", payments)
}

// Receipt returns the printable receipt view
func (h *OrderHandler) Receipt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	receipt, err := h.orderService.BuildReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved", receipt)
}
