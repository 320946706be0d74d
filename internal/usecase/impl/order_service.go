package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type orderService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewOrderService creates the order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		publisher: params.Publisher,
		qrcode:    params.QRCode,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) PrepareCheckout(ctx context.Context, userID uint) (*usecase.CheckoutPage, error) {
	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	page := &usecase.CheckoutPage{Cart: entity.NewCart(items)}
	if page.Cart.IsEmpty() {
		return page, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	page.Defaults = usecase.CheckoutInput{
		ShippingAddress: user.Address,
		Phone:           user.Phone,
		Email:           user.Email,
	}

	return page, nil
}

// Checkout validates the shipping form, then inside one transaction locks the
// cart, snapshots it into an order and deletes exactly the consumed lines.
func (srv *orderService) Checkout(ctx context.Context, userID uint, input usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	input.ShippingAddress = strings.TrimSpace(input.ShippingAddress)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)

	if err := validateCheckoutInput(input); err != nil {
		srv.metrics.CheckoutFailed("validation")

		return nil, err
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		cartRepo := txRepoFactory.NewCartRepository()

		items, err := cartRepo.ListByUserForUpdate(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to lock cart items")
		}
		if len(items) == 0 {
			return nil
		}

		order = entity.SnapshotOrder(userID, entity.ShippingDetails{
			ShippingAddress: input.ShippingAddress,
			Phone:           input.Phone,
			Email:           input.Email,
		}, items)

		if err := txRepoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		itemIDs := make([]uint, 0, len(items))
		for _, item := range items {
			itemIDs = append(itemIDs, item.ID)
		}

		if err := cartRepo.DeleteByIDs(ctx, userID, itemIDs); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		srv.metrics.CheckoutFailed("transaction")
		srv.log(ctx).Error("Checkout failed", slog.Uint64("user_id", uint64(userID)), slog.Any("error", err))

		return nil, err
	}

	if order == nil {
		srv.log(ctx).Info("Checkout skipped, cart is empty", slog.Uint64("user_id", uint64(userID)))

		return &usecase.CheckoutOutput{}, nil
	}

	srv.log(ctx).Info("Order placed",
		slog.Uint64("order_id", uint64(order.ID)),
		slog.Uint64("user_id", uint64(userID)),
		slog.String("total", order.TotalAmount.StringFixed(2)),
		slog.Int("items", len(order.Items)),
	)
	srv.metrics.OrderPlaced(order.TotalAmount, len(order.Items))
	srv.publishOrderPlaced(ctx, userID, order)

	return &usecase.CheckoutOutput{Order: order}, nil
}

// publishOrderPlaced runs after commit; a publishing failure does not undo the order.
func (srv *orderService) publishOrderPlaced(ctx context.Context, userID uint, order *entity.Order) {
	event := &service.OrderPlacedEvent{
		EventID:     uuid.NewString(),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     order.ID,
		UserID:      userID,
		TotalAmount: order.TotalAmount.StringFixed(2),
		Items:       make([]service.OrderPlacedItem, 0, len(order.Items)),
		PlacedAt:    order.CreatedAt,
	}
	if event.PlacedAt.IsZero() {
		event.PlacedAt = time.Now().UTC()
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, service.OrderPlacedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.StringFixed(2),
		})
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.Uint64("order_id", uint64(order.ID)),
			slog.Any("error", err),
		)
	}
}

func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uint) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, userID, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, userID uint) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) OrderQRCode(ctx context.Context, userID, orderID uint) ([]byte, error) {
	order, err := srv.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

func validateCheckoutInput(input usecase.CheckoutInput) error {
	verr := new(domainerrors.ValidationError)

	switch {
	case input.Phone == "":
		verr.Add("phone", domainerrors.MsgRequired)
	case !entity.IsValidPhone(input.Phone):
		verr.Add("phone", domainerrors.MsgInvalidPhone)
	}

	return verr.OrNil()
}
