package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shopping"
)

// AddToCartRequest adds units of one product to the caller's cart
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Count     int       `json:"count"`
}

// CartLineResponse is one cart line joined with its product
type CartLineResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Title     string          `json:"title"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Count     int             `json:"count"`
	LineTotal decimal.Decimal `json:"line_total"`
	InStock   bool            `json:"in_stock"`
}

// CartResponse is the caller's full cart with its grand total
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

// CheckoutRequest carries the delivery details for a purchase
type CheckoutRequest struct {
	Address       string `json:"address"`
	PaymentOption string `json:"payment_option"`
}

// CheckoutResponse reports the outcome of a checkout, one created
// order id per purchased line
type CheckoutResponse struct {
	OrderIDs []string        `json:"order_ids"`
	Lines    int             `json:"lines"`
	Total    decimal.Decimal `json:"total"`
}

// OrderHistoryResponse is the API representation of a purchase record
type OrderHistoryResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       string          `json:"order_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	ProductName   string          `json:"product_name"`
	BuyerName     string          `json:"buyer_name"`
	MobileNo      string          `json:"mobile_no"`
	PaymentOption string          `json:"payment_option"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
	Address       string          `json:"address"`
	BuyTime       time.Time       `json:"buy_time"`
	Status        string          `json:"status"`
	Delivered     bool            `json:"delivered"`
	DeliverTime   *time.Time      `json:"deliver_time,omitempty"`
}

// ToOrderHistoryResponse maps a purchase record to its API representation
func ToOrderHistoryResponse(record *shopping.OrderHistory) OrderHistoryResponse {
	return OrderHistoryResponse{
		ID:            record.ID,
		OrderID:       record.OrderID,
		ProductID:     record.ProductID,
		ProductName:   record.ProductName,
		BuyerName:     record.BuyerName,
		MobileNo:      record.MobileNo,
		PaymentOption: string(record.PaymentOption),
		Quantity:      record.Quantity,
		UnitPrice:     record.UnitPrice,
		Total:         record.Total(),
		Address:       record.Address,
		BuyTime:       record.BuyTime,
		Status:        string(record.Status),
		Delivered:     record.Delivered,
		DeliverTime:   record.DeliverTime,
	}
}

func toOrderHistoryResponses(records []shopping.OrderHistory) []OrderHistoryResponse {
	responses := make([]OrderHistoryResponse, len(records))
	for i := range records {
		responses[i] = ToOrderHistoryResponse(&records[i])
	}
	return responses
}
