package shopping

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
	"go.uber.org/zap"
)

// OrderService handles checkout and purchase history operations
type OrderService struct {
	orderRepo shopping.OrderHistoryRepository
	userRepo  identity.UserRepository
	txScope   TransactionScope
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo shopping.OrderHistoryRepository,
	userRepo identity.UserRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		txScope:   txScope,
		logger:    logger,
	}
}

// Checkout converts the user's cart into purchase records, each under
// a freshly generated order id. Stock is decreased per product, the
// history rows are written and the cart is cleared, all in a single
// transaction: if any line fails, nothing is purchased and the cart
// stays intact.
func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*CheckoutResponse, error) {
	buyer, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	payment := shopping.PaymentOption(req.PaymentOption)
	total := decimal.Zero
	var orderIDs []string

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		lines, err := repos.CartRepo().FindByUser(ctx, userID)
		if err != nil {
			return err
		}
		// Checking out an empty cart is a valid no-op
		if len(lines) == 0 {
			return nil
		}

		records := make([]*shopping.OrderHistory, 0, len(lines))
		for i := range lines {
			product, err := repos.ProductRepo().FindByID(ctx, lines[i].ProductID)
			if err != nil {
				return err
			}

			if err := product.DecreaseStock(lines[i].Count); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}

			record, err := shopping.NewOrderHistory(shopping.NewOrderID(),
				shopping.ProductSnapshot{
					ID:        product.ID,
					Name:      product.Name,
					UnitPrice: product.BuyPrice,
				},
				shopping.BuyerSnapshot{
					ID:       buyer.ID,
					Name:     buyer.FullName,
					MobileNo: buyer.MobileNo,
					Address:  req.Address,
				},
				lines[i].Count, payment)
			if err != nil {
				return err
			}

			records = append(records, record)
			orderIDs = append(orderIDs, record.OrderID)
			total = total.Add(record.Total())
		}

		if err := repos.OrderRepo().SaveAll(ctx, records); err != nil {
			return err
		}

		return repos.CartRepo().ClearUser(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	if len(orderIDs) == 0 {
		return &CheckoutResponse{Total: decimal.Zero}, nil
	}

	s.logger.Info("Checkout completed",
		zap.String("user_id", userID.String()),
		zap.Strings("order_ids", orderIDs),
		zap.Int("lines", len(orderIDs)))

	return &CheckoutResponse{
		OrderIDs: orderIDs,
		Lines:    len(orderIDs),
		Total:    total,
	}, nil
}

// ListForBuyer returns the purchase history of one user, oldest first
func (s *OrderService) ListForBuyer(ctx context.Context, buyerID uuid.UUID) ([]OrderHistoryResponse, error) {
	records, err := s.orderRepo.FindByBuyer(ctx, buyerID, shared.Filter{OrderBy: "buy_time", OrderDir: "asc"})
	if err != nil {
		return nil, err
	}
	return toOrderHistoryResponses(records), nil
}

// ListAll returns every purchase record, oldest first
func (s *OrderService) ListAll(ctx context.Context) ([]OrderHistoryResponse, error) {
	records, err := s.orderRepo.FindAll(ctx, shared.Filter{OrderBy: "buy_time", OrderDir: "asc"})
	if err != nil {
		return nil, err
	}
	return toOrderHistoryResponses(records), nil
}

// ListByDelivered returns purchase records filtered on the delivered flag
func (s *OrderService) ListByDelivered(ctx context.Context, delivered bool) ([]OrderHistoryResponse, error) {
	records, err := s.orderRepo.FindByDelivered(ctx, delivered, shared.Filter{OrderBy: "buy_time", OrderDir: "asc"})
	if err != nil {
		return nil, err
	}
	return toOrderHistoryResponses(records), nil
}

// GetByOrderID returns the purchase records carrying the given order id
func (s *OrderService) GetByOrderID(ctx context.Context, orderID string) ([]OrderHistoryResponse, error) {
	records, err := s.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, shared.ErrNotFound
	}
	return toOrderHistoryResponses(records), nil
}

// SetDelivered sets or reverts delivery of one purchase line. Marking
// a delivered line again keeps its original delivery time; reverting
// restores the initiated state and clears the delivery time. Both
// directions are idempotent.
func (s *OrderService) SetDelivered(ctx context.Context, recordID uuid.UUID, delivered bool) (*OrderHistoryResponse, error) {
	record, err := s.orderRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if delivered {
		record.MarkDelivered()
	} else {
		record.UnmarkDelivered()
	}
	if err := s.orderRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	response := ToOrderHistoryResponse(record)
	return &response, nil
}

// Cancel cancels one purchase line regardless of its current status
func (s *OrderService) Cancel(ctx context.Context, recordID uuid.UUID) (*OrderHistoryResponse, error) {
	record, err := s.orderRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	record.Cancel()
	if err := s.orderRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Order line canceled",
		zap.String("record_id", recordID.String()),
		zap.String("order_id", record.OrderID))

	response := ToOrderHistoryResponse(record)
	return &response, nil
}
