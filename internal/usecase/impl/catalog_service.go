package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

const defaultFeaturedLimit = 8

type catalogService struct {
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	featuredLimit int
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService creates the catalog read service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	limit := defaultFeaturedLimit
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.FeaturedLimit > 0 {
		limit = params.Config.Catalog.FeaturedLimit
	}

	return &catalogService{
		categoryRepo:  params.CategoryRepo,
		productRepo:   params.ProductRepo,
		featuredLimit: limit,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) Browse(ctx context.Context, filter entity.ProductFilter) (*usecase.CatalogOutput, error) {
	categories, err := srv.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	products, err := srv.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Catalog browsed", slog.Int("products", len(products)), slog.String("query", filter.Query))

	return &usecase.CatalogOutput{
		Categories: categories,
		Products:   products,
		Filter:     filter,
	}, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) ListFeatured(ctx context.Context) ([]*entity.Product, error) {
	return srv.ListProducts(ctx, entity.ProductFilter{Limit: srv.featuredLimit})
}
