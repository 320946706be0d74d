package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewCartService creates the cart service.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) AddItem(ctx context.Context, userID, productID uint) (*entity.CartItem, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	item, err := srv.cartRepo.Increment(ctx, userID, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.metrics.CartItemAdded()
	srv.log(ctx).Info("Cart item added",
		slog.Uint64("user_id", uint64(userID)),
		slog.Uint64("product_id", uint64(productID)),
		slog.Int("quantity", item.Quantity),
	)

	return item, nil
}

func (srv *cartService) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) error {
	// Ownership is checked first so a foreign item is reported as missing
	// regardless of the submitted quantity.
	if _, err := srv.findOwnedItem(ctx, userID, itemID); err != nil {
		return err
	}

	if quantity <= 0 {
		return domainerrors.NewValidationError("quantity", domainerrors.MsgInvalidQuantity)
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to update cart item")
	}

	return nil
}

func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if _, err := srv.findOwnedItem(ctx, userID, itemID); err != nil {
		return err
	}

	if err := srv.cartRepo.Delete(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

func (srv *cartService) GetCart(ctx context.Context, userID uint) (*entity.Cart, error) {
	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return entity.NewCart(items), nil
}

func (srv *cartService) findOwnedItem(ctx context.Context, userID, itemID uint) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindByID(ctx, userID, itemID)
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, domainerrors.ErrCartItemNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return item, nil
}
