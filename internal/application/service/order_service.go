package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/entity"
	"github.com/linato/linato-pos/internal/domain/enum"
	"github.com/linato/linato-pos/internal/domain/pricing"
	"github.com/linato/linato-pos/internal/domain/repository"
	"github.com/linato/linato-pos/pkg/apperror"
	"github.com/linato/linato-pos/pkg/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService drives the order lifecycle from cart to settlement
type OrderService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	productRepo repository.ProductRepository
	invRepo     repository.InventoryRepository
	tableRepo   repository.TableRepository
	receiptRepo repository.ReceiptRepository
	settingRepo repository.SettingRepository
	userRepo    repository.UserRepository
	defaultTax  decimal.Decimal
	defaultSvc  decimal.Decimal
}

// NewOrderService creates a new order service
func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	tableRepo repository.TableRepository,
	receiptRepo repository.ReceiptRepository,
	settingRepo repository.SettingRepository,
	userRepo repository.UserRepository,
	defaultTax, defaultSvc decimal.Decimal,
) *OrderService {
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		productRepo: productRepo,
		invRepo:     invRepo,
		tableRepo:   tableRepo,
		receiptRepo: receiptRepo,
		settingRepo: settingRepo,
		userRepo:    userRepo,
		defaultTax:  defaultTax,
		defaultSvc:  defaultSvc,
	}
}

// OrderItemInput is one cart line as submitted by the client
type OrderItemInput struct {
	ProductID      uuid.UUID
	Qty            int
	DiscountAmount decimal.Decimal
	Notes          *string
}

// CreateOrderInput represents the create/edit order input
type CreateOrderInput struct {
	DineType          enum.DineType
	TableID           *uuid.UUID
	CustomerName      *string
	Phone             *string
	Address           *string
	Items             []OrderItemInput
	DiscountAmount    decimal.Decimal
	ServiceChargeRate *decimal.Decimal
	TaxRate           *decimal.Decimal
	Rounding          decimal.Decimal
	Hold              bool
}

// buildItems snapshots product name and price into order items and returns
// the pricing lines alongside. Inactive or unknown products are rejected.
func (s *OrderService) buildItems(ctx context.Context, inputs []OrderItemInput) ([]entity.OrderItem, []pricing.Line, error) {
	if len(inputs) == 0 {
		return nil, nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "At least one item is required"},
		})
	}

	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		if in.Qty <= 0 {
			return nil, nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "items", Message: "Quantity must be at least 1"},
			})
		}
		if in.DiscountAmount.IsNegative() {
			return nil, nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "items", Message: "Discount cannot be negative"},
			})
		}
		ids = append(ids, in.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entity.OrderItem, 0, len(inputs))
	lines := make([]pricing.Line, 0, len(inputs))
	for _, in := range inputs {
		product, ok := byID[in.ProductID]
		if !ok {
			return nil, nil, apperror.NewNotFoundError("Product")
		}
		if !product.IsActive {
			return nil, nil, apperror.NewPreconditionError("Product " + product.Name + " is not available")
		}

		line := pricing.Line{Price: product.Price, Qty: in.Qty, DiscountAmount: in.DiscountAmount}
		items = append(items, entity.OrderItem{
			ProductID:      product.ID,
			NameSnapshot:   product.Name,
			Price:          product.Price,
			Qty:            in.Qty,
			DiscountAmount: in.DiscountAmount,
			LineTotal:      pricing.LineTotal(line),
			Notes:          in.Notes,
		})
		lines = append(lines, line)
	}
	return items, lines, nil
}

func (s *OrderService) validateDineType(ctx context.Context, input *CreateOrderInput) error {
	if !input.DineType.IsValid() {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "dine_type", Message: "Invalid dine type"},
		})
	}
	if input.DineType.RequiresTable() {
		if input.TableID == nil {
			return apperror.NewValidationError([]apperror.FieldError{
				{Field: "table_id", Message: "Table is required for dine-in orders"},
			})
		}
		if _, err := s.tableRepo.GetByID(ctx, *input.TableID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewNotFoundError("Table")
			}
			return err
		}
	}
	if input.DineType.RequiresContact() {
		if input.CustomerName == nil || *input.CustomerName == "" ||
			input.Phone == nil || *input.Phone == "" ||
			input.Address == nil || *input.Address == "" {
			return apperror.NewValidationError([]apperror.FieldError{
				{Field: "customer_name", Message: "Customer name, phone and address are required for delivery orders"},
			})
		}
	}
	return nil
}

// charges resolves the order-level rates, falling back to the store settings
// when the client does not override them.
func (s *OrderService) charges(ctx context.Context, input *CreateOrderInput) (pricing.Charges, error) {
	c := pricing.Charges{
		DiscountAmount: input.DiscountAmount,
		Rounding:       input.Rounding,
	}
	if input.ServiceChargeRate != nil && input.TaxRate != nil {
		c.ServiceChargeRate = *input.ServiceChargeRate
		c.TaxRate = *input.TaxRate
		return c, nil
	}

	setting, err := s.settingRepo.GetOrCreatePos(ctx, s.defaultTax, s.defaultSvc)
	if err != nil {
		return c, err
	}
	c.ServiceChargeRate = setting.ServiceChargeRate
	if input.ServiceChargeRate != nil {
		c.ServiceChargeRate = *input.ServiceChargeRate
	}
	c.TaxRate = setting.TaxRate
	if input.TaxRate != nil {
		c.TaxRate = *input.TaxRate
	}
	return c, nil
}

// Create builds a pending order: receipt number, item snapshots and totals
// are all assigned inside one transaction. shiftID tags the order with the
// cashier's open shift; it stays on the order even after the shift closes.
func (s *OrderService) Create(ctx context.Context, cashierID uuid.UUID, shiftID *uuid.UUID, input *CreateOrderInput) (*entity.Order, error) {
	if err := s.validateDineType(ctx, input); err != nil {
		return nil, err
	}
	if input.DiscountAmount.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "discount_amount", Message: "Discount cannot be negative"},
		})
	}

	items, lines, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	charges, err := s.charges(ctx, input)
	if err != nil {
		return nil, err
	}
	totals := pricing.Calculate(lines, charges)

	var heldAt *time.Time
	if input.Hold {
		now := time.Now()
		heldAt = &now
	}

	var order *entity.Order
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receiptNumber, err := s.receiptRepo.WithTx(tx).NextNumber(ctx, time.Now())
		if err != nil {
			return err
		}

		order = &entity.Order{
			ReceiptNumber:       receiptNumber,
			Status:              enum.OrderStatusPending,
			DineType:            input.DineType,
			TableID:             input.TableID,
			CustomerName:        input.CustomerName,
			Phone:               input.Phone,
			Address:             input.Address,
			Subtotal:            totals.Subtotal,
			DiscountAmount:      totals.DiscountAmount,
			ServiceChargeRate:   totals.ServiceChargeRate,
			ServiceChargeAmount: totals.ServiceChargeAmount,
			TaxRate:             totals.TaxRate,
			TaxAmount:           totals.TaxAmount,
			Rounding:            totals.Rounding,
			Total:               totals.Total,
			PaidTotal:           decimal.Zero,
			Balance:             totals.Total,
			CashierID:           cashierID,
			ShiftID:             shiftID,
			HeldAt:              heldAt,
			Items:               items,
		}
		return s.orderRepo.WithTx(tx).Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, order.ID)
}

// Update replaces a pending order's cart and recomputes every total from
// scratch. Confirmed and later orders are immutable through this path.
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, input *CreateOrderInput) (*entity.Order, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.OrderStatusPending {
		return nil, apperror.NewPreconditionError("Only pending orders can be edited")
	}

	if err := s.validateDineType(ctx, input); err != nil {
		return nil, err
	}
	items, lines, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}
	charges, err := s.charges(ctx, input)
	if err != nil {
		return nil, err
	}
	totals := pricing.Calculate(lines, charges)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txOrders := s.orderRepo.WithTx(tx)
		if err := txOrders.ReplaceItems(ctx, order.ID, items); err != nil {
			return err
		}

		paid, err := s.paymentRepo.WithTx(tx).SumByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		return txOrders.Updates(ctx, order.ID, map[string]interface{}{
			"dine_type":             input.DineType,
			"table_id":              input.TableID,
			"customer_name":         input.CustomerName,
			"phone":                 input.Phone,
			"address":               input.Address,
			"subtotal":              totals.Subtotal,
			"discount_amount":       totals.DiscountAmount,
			"service_charge_rate":   totals.ServiceChargeRate,
			"service_charge_amount": totals.ServiceChargeAmount,
			"tax_rate":              totals.TaxRate,
			"tax_amount":            totals.TaxAmount,
			"rounding":              totals.Rounding,
			"total":                 totals.Total,
			"paid_total":            paid,
			"balance":               pricing.Balance(totals.Total, paid),
		})
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, id)
}

// Hold parks a pending order so the cashier can serve the next customer
func (s *OrderService) Hold(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.OrderStatusPending {
		return nil, apperror.NewPreconditionError("Only pending orders can be held")
	}
	if order.IsHeld() {
		return order, nil
	}

	now := time.Now()
	order.HeldAt = &now
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Resume unparks a held order
func (s *OrderService) Resume(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.IsHeld() {
		return order, nil
	}

	order.HeldAt = nil
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Confirm moves a pending order to confirmed and fires its side effects in
// one transaction: stock is deducted per item with a sale movement recorded
// against the order, and a dine-in table is marked occupied. Confirming a
// held order clears the hold. The status flip is a conditional update, so
// two concurrent confirms deduct stock once.
func (s *OrderService) Confirm(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.OrderStatusPending {
		return nil, apperror.NewPreconditionError("Only pending orders can be confirmed")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		affected, err := s.orderRepo.WithTx(tx).UpdateWhereStatus(ctx, order.ID, enum.OrderStatusPending, map[string]interface{}{
			"status":       enum.OrderStatusConfirmed,
			"confirmed_at": now,
			"held_at":      nil,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperror.NewConflictError("Order was already confirmed")
		}

		txInv := s.invRepo.WithTx(tx)
		for _, item := range order.Items {
			stock, err := txInv.GetOrCreateStock(ctx, item.ProductID)
			if err != nil {
				return err
			}

			before := stock.CurrentStock
			stock.CurrentStock = before - item.Qty
			if err := txInv.SaveStock(ctx, stock); err != nil {
				return err
			}

			orderID := order.ID
			notes := "Order confirmed"
			movement := &entity.StockMovement{
				ProductID:     item.ProductID,
				Type:          enum.MovementTypeSale,
				Quantity:      -item.Qty,
				BeforeStock:   before,
				AfterStock:    stock.CurrentStock,
				ReferenceType: enum.ReferenceTypeOrder,
				ReferenceID:   &orderID,
				UserID:        order.CashierID,
				Notes:         &notes,
			}
			if err := txInv.CreateMovement(ctx, movement); err != nil {
				return err
			}
		}

		if order.DineType.RequiresTable() && order.TableID != nil {
			txTables := s.tableRepo.WithTx(tx)
			table, err := txTables.GetByID(ctx, *order.TableID)
			if err != nil {
				return err
			}
			table.Status = enum.TableStatusOccupied
			if err := txTables.Save(ctx, table); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, id)
}

// statusTimestamps maps a progression target to the timestamp column it
// stamps on first arrival. Revisiting a status never overwrites the stamp.
func statusTimestamp(status enum.OrderStatus) string {
	switch status {
	case enum.OrderStatusPreparing:
		return "preparing_at"
	case enum.OrderStatusReady:
		return "ready_at"
	case enum.OrderStatusServed, enum.OrderStatusCompleted:
		return "served_at"
	}
	return ""
}

func alreadyStamped(order *entity.Order, status enum.OrderStatus) bool {
	switch status {
	case enum.OrderStatusPreparing:
		return order.PreparingAt != nil
	case enum.OrderStatusReady:
		return order.ReadyAt != nil
	case enum.OrderStatusServed, enum.OrderStatusCompleted:
		return order.ServedAt != nil
	}
	return false
}

// legal transitions for the progression endpoint. Confirmation and
// cancellation go through their own operations.
var progression = map[enum.OrderStatus][]enum.OrderStatus{
	enum.OrderStatusConfirmed: {enum.OrderStatusPreparing, enum.OrderStatusReady, enum.OrderStatusServed, enum.OrderStatusCompleted},
	enum.OrderStatusPreparing: {enum.OrderStatusReady, enum.OrderStatusServed, enum.OrderStatusCompleted},
	enum.OrderStatusReady:     {enum.OrderStatusServed, enum.OrderStatusCompleted},
	enum.OrderStatusServed:    {enum.OrderStatusCompleted},
}

func canProgress(from, to enum.OrderStatus) bool {
	// repeating the current status is a no-op, not an error; the timestamp
	// guard keeps the original stamp
	if from == to {
		return from.IsProgressTarget()
	}
	for _, t := range progression[from] {
		if t == to {
			return true
		}
	}
	return false
}

// UpdateStatus advances a confirmed order through preparing, ready, served
// and completed. kitchenOnly restricts the caller to kitchen targets.
// Reaching served or completed releases a dine-in table back to available.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, target enum.OrderStatus, kitchenOnly bool) (*entity.Order, error) {
	if !target.IsProgressTarget() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "Invalid status"},
		})
	}
	if kitchenOnly && !target.IsKitchenTarget() {
		return nil, apperror.ErrForbidden
	}

	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canProgress(order.Status, target) {
		return nil, apperror.NewPreconditionError("Cannot move order from " + order.Status.String() + " to " + target.String())
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		values := map[string]interface{}{"status": target}
		if col := statusTimestamp(target); col != "" && !alreadyStamped(order, target) {
			values[col] = time.Now()
		}

		affected, err := s.orderRepo.WithTx(tx).UpdateWhereStatus(ctx, order.ID, order.Status, values)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperror.NewConflictError("Order status changed, please retry")
		}

		if target.Releases() && order.DineType.RequiresTable() && order.TableID != nil {
			txTables := s.tableRepo.WithTx(tx)
			table, err := txTables.GetByID(ctx, *order.TableID)
			if err != nil {
				return err
			}
			table.Status = enum.TableStatusAvailable
			return txTables.Save(ctx, table)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, id)
}

// CancelInput represents the cancel order input
type CancelInput struct {
	Reason   string
	AdminPin string
}

// verifyAdminPin checks the candidate PIN against every active admin and
// returns the first match.
func (s *OrderService) verifyAdminPin(ctx context.Context, pin string) (*entity.User, error) {
	admins, err := s.userRepo.ActiveByRole(ctx, enum.RoleAdmin)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].PinHash != nil && utils.CheckPasswordHash(pin, *admins[i].PinHash) {
			return &admins[i], nil
		}
	}
	return nil, apperror.ErrInvalidAdminPin
}

// Cancel voids an order after an admin authorizes it by PIN. Any order that
// is not already cancelled can be voided, completed ones included. Stock
// consumed at confirmation stays deducted; a dine-in table is released.
func (s *OrderService) Cancel(ctx context.Context, id uuid.UUID, input *CancelInput) (*entity.Order, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewPreconditionError("Order is already cancelled")
	}

	admin, err := s.verifyAdminPin(ctx, input.AdminPin)
	if err != nil {
		return nil, err
	}

	var reason *string
	if input.Reason != "" {
		reason = &input.Reason
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.orderRepo.WithTx(tx).UpdateWhereStatus(ctx, order.ID, order.Status, map[string]interface{}{
			"status":       enum.OrderStatusCancelled,
			"cancelled_at": time.Now(),
			"voided_by":    admin.ID,
			"void_reason":  reason,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperror.NewConflictError("Order status changed, please retry")
		}

		if order.DineType.RequiresTable() && order.TableID != nil {
			txTables := s.tableRepo.WithTx(tx)
			table, err := txTables.GetByID(ctx, *order.TableID)
			if err != nil {
				return err
			}
			table.Status = enum.TableStatusAvailable
			return txTables.Save(ctx, table)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, id)
}

// AddPaymentInput represents the add payment input
type AddPaymentInput struct {
	Method      enum.PaymentMethod
	Amount      decimal.Decimal
	ReferenceNo *string
}

// AddPayment appends a payment to the order's ledger and recomputes
// paid_total and balance from the full sum. Overpayment is allowed; the
// balance simply goes negative (change due).
func (s *OrderService) AddPayment(ctx context.Context, id uuid.UUID, receivedBy uuid.UUID, input *AddPaymentInput) (*entity.Order, error) {
	if !input.Method.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "method", Message: "Invalid payment method"},
		})
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "Amount must be greater than zero"},
		})
	}

	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewPreconditionError("Cancelled orders cannot accept payments")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txPayments := s.paymentRepo.WithTx(tx)
		payment := &entity.Payment{
			OrderID:     order.ID,
			Method:      input.Method,
			Amount:      input.Amount.Round(2),
			ReferenceNo: input.ReferenceNo,
			PaidAt:      time.Now(),
			ReceivedBy:  receivedBy,
		}
		if err := txPayments.Create(ctx, payment); err != nil {
			return err
		}

		paid, err := txPayments.SumByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		return s.orderRepo.WithTx(tx).Updates(ctx, order.ID, map[string]interface{}{
			"paid_total": paid,
			"balance":    pricing.Balance(order.Total, paid),
		})
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, id)
}

// ListPayments returns the order's payments oldest first
func (s *OrderService) ListPayments(ctx context.Context, id uuid.UUID) ([]entity.Payment, error) {
	if _, err := s.getOrder(ctx, id); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByOrder(ctx, id)
}

// Get returns an order with its items, payments and table
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return s.getOrder(ctx, id)
}

// List returns orders matching the filter
func (s *OrderService) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return s.orderRepo.List(ctx, params)
}

// KitchenQueue returns the active tickets for the kitchen display
func (s *OrderService) KitchenQueue(ctx context.Context, status *enum.OrderStatus) ([]entity.Order, error) {
	if status != nil && !status.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "Invalid status"},
		})
	}
	return s.orderRepo.KitchenQueue(ctx, status)
}

// BuildReceipt composes the printable receipt view for an order
func (s *OrderService) BuildReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		ReceiptNumber: order.ReceiptNumber,
		Date:          order.CreatedAt.Format("2006-01-02 15:04"),
		DineType:      order.DineType.String(),
		Subtotal:      order.Subtotal,
		Discount:      order.DiscountAmount,
		ServiceCharge: order.ServiceChargeAmount,
		Tax:           order.TaxAmount,
		Rounding:      order.Rounding,
		Total:         order.Total,
		PaidTotal:     order.PaidTotal,
		Balance:       order.Balance,
	}
	if order.Table != nil {
		receipt.Table = order.Table.Name
	}
	if cashier, err := s.userRepo.GetByID(ctx, order.CashierID); err == nil {
		receipt.Cashier = cashier.Name
	}

	for _, item := range order.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.NameSnapshot,
			Qty:       item.Qty,
			UnitPrice: item.Price,
			Discount:  item.DiscountAmount,
			LineTotal: item.LineTotal,
		})
	}
	for _, p := range order.Payments {
		rp := entity.ReceiptPayment{
			Method: p.Method.String(),
			Amount: p.Amount,
		}
		if p.ReferenceNo != nil {
			rp.ReferenceNo = *p.ReferenceNo
		}
		receipt.Payments = append(receipt.Payments, rp)
	}
	return receipt, nil
}

func (s *OrderService) getOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Order")
		}
		return nil, err
	}
	return order, nil
}
