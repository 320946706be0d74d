package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

const (
	categoryImagePrefix = "categories"
	productImagePrefix  = "products"
)

type adminService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	storage      service.FileStorage
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	OrderRepo    repository.OrderRepository
	Storage      service.FileStorage
	Logger       *slog.Logger
}

// NewAdminService creates the staff back office service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		orderRepo:    params.OrderRepo,
		storage:      params.Storage,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}

	if err := srv.storeImage(ctx, categoryImagePrefix, input.Image, &category.Image); err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Uint64("category_id", uint64(category.ID)))

	return category, nil
}

func (srv *adminService) UpdateCategory(ctx context.Context, id uint, input usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	category.Name = strings.TrimSpace(input.Name)
	category.Description = input.Description
	if err := srv.storeImage(ctx, categoryImagePrefix, input.Image, &category.Image); err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *adminService) DeleteCategory(ctx context.Context, id uint) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Uint64("category_id", uint64(id)))

	return nil
}

func (srv *adminService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if err := srv.validateProduct(ctx, input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
	}

	if err := srv.storeImage(ctx, productImagePrefix, input.Image, &product.Image); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Uint64("product_id", uint64(product.ID)))

	return product, nil
}

func (srv *adminService) UpdateProduct(ctx context.Context, id uint, input usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.validateProduct(ctx, input); err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.CategoryID = input.CategoryID
	product.Category = nil
	if err := srv.storeImage(ctx, productImagePrefix, input.Image, &product.Image); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (srv *adminService) DeleteProduct(ctx context.Context, id uint) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Uint64("product_id", uint64(id)))

	return nil
}

func (srv *adminService) validateProduct(ctx context.Context, input usecase.ProductInput) error {
	if input.Price.IsNegative() {
		return domainerrors.NewValidationError("price", domainerrors.MsgInvalidPrice)
	}

	if input.CategoryID == nil {
		return nil
	}

	_, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.NewValidationError("category_id", domainerrors.ErrCategoryNotFound.Message())
	}
	if err != nil {
		return errors.Wrap(err, "failed to find category")
	}

	return nil
}

func (srv *adminService) storeImage(ctx context.Context, prefix string, upload *usecase.Upload, key *string) error {
	if upload == nil {
		return nil
	}

	stored, err := srv.storage.Save(ctx, prefix, upload.Filename, upload.ContentType, upload.Reader)
	if err != nil {
		return errors.Wrap(err, "failed to store image")
	}
	*key = stored

	return nil
}

func (srv *adminService) ListOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	orders, err := srv.orderRepo.ListAll(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *adminService) UpdateOrderStatus(ctx context.Context, orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.Uint64("order_id", uint64(orderID)),
		slog.String("status", status.String()),
	)

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	return order, nil
}
