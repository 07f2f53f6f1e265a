package shopping

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// OrderStatus represents the delivery status of a purchased line
type OrderStatus string

const (
	OrderStatusInitiated OrderStatus = "Initiated"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCanceled  OrderStatus = "Canceled"
)

// PaymentOption is how the buyer chose to pay at checkout. It is
// recorded as submitted; common values have named constants but any
// non-empty option is accepted.
type PaymentOption string

const (
	PaymentCashOnDelivery PaymentOption = "cod"
	PaymentCash           PaymentOption = "cash"
	PaymentCard           PaymentOption = "card"
)

// OrderHistory is one purchased line of a checkout. Product name,
// price and buyer contact details are copied at purchase time so the
// record stays intact when the catalog or the account changes later.
// Each line gets its own freshly generated OrderID.
type OrderHistory struct {
	shared.BaseEntity
	OrderID       string          `gorm:"type:varchar(36);not null;uniqueIndex"` // A UUID string
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BuyerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName   string          `gorm:"type:varchar(200);not null"`
	BuyerName     string          `gorm:"type:varchar(200);not null"`
	MobileNo      string          `gorm:"type:varchar(20)"`
	PaymentOption PaymentOption   `gorm:"type:varchar(30);not null"`
	Quantity      int             `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Address       string          `gorm:"type:varchar(500);not null"`
	BuyTime       time.Time       `gorm:"not null;index"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'Initiated'"`
	Delivered     bool            `gorm:"not null;default:false;index"`
	DeliverTime   *time.Time
}

// NewOrderHistory snapshots a cart line into a purchase record
func NewOrderHistory(orderID string, product ProductSnapshot, buyer BuyerSnapshot, quantity int, payment PaymentOption) (*OrderHistory, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_ID", "Order ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if strings.TrimSpace(string(payment)) == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT", "Payment option cannot be empty")
	}
	if strings.TrimSpace(buyer.Address) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Delivery address cannot be empty")
	}

	return &OrderHistory{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       orderID,
		ProductID:     product.ID,
		BuyerID:       buyer.ID,
		ProductName:   product.Name,
		BuyerName:     buyer.Name,
		MobileNo:      buyer.MobileNo,
		PaymentOption: payment,
		Quantity:      quantity,
		UnitPrice:     product.UnitPrice,
		Address:       buyer.Address,
		BuyTime:       time.Now(),
		Status:        OrderStatusInitiated,
	}, nil
}

// ProductSnapshot carries the product fields copied into a purchase record
type ProductSnapshot struct {
	ID        uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
}

// BuyerSnapshot carries the buyer fields copied into a purchase record
type BuyerSnapshot struct {
	ID       uuid.UUID
	Name     string
	MobileNo string
	Address  string
}

// NewOrderID generates a fresh order id for one purchase line
func NewOrderID() string {
	return uuid.New().String()
}

// MarkDelivered records delivery. Marking an already delivered line
// again is a no-op.
func (o *OrderHistory) MarkDelivered() {
	if o.Delivered {
		return
	}

	now := time.Now()
	o.Status = OrderStatusDelivered
	o.Delivered = true
	o.DeliverTime = &now
	o.UpdatedAt = now
}

// UnmarkDelivered reverts a delivery, restoring the initiated state.
// Reverting a line that was never delivered is a no-op.
func (o *OrderHistory) UnmarkDelivered() {
	if !o.Delivered && o.Status == OrderStatusInitiated {
		return
	}

	o.Status = OrderStatusInitiated
	o.Delivered = false
	o.DeliverTime = nil
	o.UpdatedAt = time.Now()
}

// Cancel cancels the line regardless of its current status
func (o *OrderHistory) Cancel() {
	o.Status = OrderStatusCanceled
	o.Delivered = false
	o.DeliverTime = nil
	o.UpdatedAt = time.Now()
}

// Total returns quantity times unit price
func (o *OrderHistory) Total() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}
