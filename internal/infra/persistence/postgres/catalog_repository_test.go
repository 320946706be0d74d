package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

func TestProductRepository_List_AppliesEveryFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	categoryID := uint(3)
	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.NewFromInt(500)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE category_id = \$1 AND \(\(name ILIKE \$2 OR description ILIKE \$3\)\) AND price >= \$4 AND price <= \$5 ORDER BY id`).
		WithArgs(3, "%100\\%%", "%100\\%%", minPrice, maxPrice).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "category_id"}).
			AddRow(1, "Хлопок 100%", "99.90", 3))

	products, err := repo.List(context.Background(), entity.ProductFilter{
		CategoryID: &categoryID,
		Query:      "100%",
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
	})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, decimal.RequireFromString("99.90").Equal(products[0].Price))
	require.NotNil(t, products[0].CategoryID)
	assert.Equal(t, uint(3), *products[0].CategoryID)
}

// Both bounds are inclusive: 10.00 and 20.00 match, 9.99 and 20.01 do not.
func TestProductRepository_List_InclusivePriceBounds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	minPrice := decimal.RequireFromString("10.00")
	maxPrice := decimal.RequireFromString("20.00")

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE price >= \$1 AND price <= \$2 ORDER BY id$`).
		WithArgs("10", "20").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(2, "Кружка", "10.00").
			AddRow(3, "Блюдце", "20.00"))

	products, err := repo.List(context.Background(), entity.ProductFilter{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})

	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, product := range products {
		assert.True(t, product.Price.GreaterThanOrEqual(minPrice) && product.Price.LessThanOrEqual(maxPrice), product.Name)
	}
	assert.True(t, decimal.RequireFromString("9.99").LessThan(minPrice))
	assert.True(t, decimal.RequireFromString("20.01").GreaterThan(maxPrice))
}

func TestProductRepository_List_QueryMatchesDescription(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE \(+name ILIKE \$1 OR description ILIKE \$2\)+ ORDER BY id$`).
		WithArgs("%shirt%", "%shirt%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price"}).
			AddRow(7, "Футболка", "Cotton Shirt, size M", "799.00"))

	products, err := repo.List(context.Background(), entity.ProductFilter{Query: "  shirt "})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Футболка", products[0].Name)
	assert.Contains(t, products[0].Description, "Shirt")
}

func TestProductRepository_List_NoFilterReturnsEmptySlice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY id$`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	products, err := repo.List(context.Background(), entity.ProductFilter{})

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	product, err := repo.FindByID(context.Background(), 404)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCategoryRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectExec(`DELETE FROM "categories" WHERE id = \$1`).
		WithArgs(404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}
