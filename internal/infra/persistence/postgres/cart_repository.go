package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.CartItem, error) {
	return repo.list(ctx, repo.db.WithContext(ctx), userID)
}

// ListByUserForUpdate holds row locks on the user's cart lines until the
// enclosing transaction ends, so a concurrent checkout waits and then sees
// an empty cart.
func (repo *cartRepository) ListByUserForUpdate(ctx context.Context, userID uint) ([]*entity.CartItem, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), userID)
}

func (repo *cartRepository) list(ctx context.Context, query *gorm.DB, userID uint) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := query.
		Where("user_id = ?", userID).
		Order("id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	if err := repo.attachProducts(ctx, itemModels); err != nil {
		return nil, err
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// attachProducts loads the products in one query. It runs separately from the
// cart query so the row lock never extends to the products table.
func (repo *cartRepository) attachProducts(ctx context.Context, itemModels []*model.CartItemModel) error {
	if len(itemModels) == 0 {
		return nil
	}

	productIDs := make([]uint, 0, len(itemModels))
	for _, itemM := range itemModels {
		productIDs = append(productIDs, itemM.ProductID)
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&productModels).Error; err != nil {
		return errors.Wrap(err, "failed to load cart products")
	}

	byID := make(map[uint]*model.ProductModel, len(productModels))
	for _, productM := range productModels {
		byID[productM.ID] = productM
	}
	for _, itemM := range itemModels {
		itemM.Product = byID[itemM.ProductID]
	}

	return nil
}

func (repo *cartRepository) FindByID(ctx context.Context, userID, itemID uint) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// Increment is a single upsert on (user_id, product_id), so two concurrent
// adds of the same product end up as one line with quantity 2.
func (repo *cartRepository) Increment(ctx context.Context, userID, productID uint) (*entity.CartItem, error) {
	itemM := &model.CartItemModel{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}

	if err := repo.db.WithContext(ctx).
		Omit("Product").
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("cart_items.quantity + 1")}),
			},
			clause.Returning{},
		).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	return toCartItemDomain(itemM), nil
}

func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewValidationError("quantity", domainerrors.MsgInvalidQuantity)
		}

		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, userID, itemID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) DeleteByIDs(ctx context.Context, userID uint, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, itemIDs).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart items")
	}

	return nil
}

// --- Mapper Functions ---

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Product:   toProductDomain(data.Product),
		Quantity:  data.Quantity,
		AddedAt:   data.AddedAt,
	}
}
