package impl

import (
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"storefront/config"
	"storefront/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(featuredLimit int) *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{FeaturedLimit: featuredLimit},
	}
}

func newTestProduct(id uint, price int64) *entity.Product {
	return &entity.Product{
		ID:    id,
		Name:  "Product",
		Price: decimal.NewFromInt(price),
	}
}

func decimalEq(expected int64) any {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(expected))
	})
}
