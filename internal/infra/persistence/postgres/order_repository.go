package postgres

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row first and then its items in one batch. Callers
// run it inside a transaction so a failed item insert leaves no order behind.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	db := repo.db.WithContext(ctx)
	if err := db.Omit("Items").Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	if len(order.Items) > 0 {
		itemModels := make([]*model.OrderItemModel, 0, len(order.Items))
		for _, item := range order.Items {
			itemM := fromOrderItemDomain(item)
			itemM.OrderID = orderM.ID
			itemModels = append(itemModels, itemM)
		}

		if err := db.Omit("Product").Create(&itemModels).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
		}

		for i, itemM := range itemModels {
			order.Items[i].ID = itemM.ID
			order.Items[i].OrderID = itemM.OrderID
		}
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, orderID uint) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", orderID))
}

func (repo *orderRepository) FindByIDForUser(ctx context.Context, userID, orderID uint) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ? AND user_id = ?", orderID, userID))
}

func (repo *orderRepository) findOne(query *gorm.DB) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.Product").
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.Order, error) {
	return repo.list(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *orderRepository) ListAll(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	return repo.list(query)
}

func (repo *orderRepository) list(query *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := query.Order("created_at DESC, id DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID uint, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:     data.ID,
		UserID: data.UserID,
		Status: entity.OrderStatus(data.Status),
		Shipping: entity.ShippingDetails{
			ShippingAddress: data.ShippingAddress,
			Phone:           data.Phone,
			Email:           data.Email,
		},
		TotalAmount: data.TotalAmount,
		CreatedAt:   data.CreatedAt,
	}

	if len(data.Items) > 0 {
		order.Items = make([]*entity.OrderItem, 0, len(data.Items))
		for _, itemM := range data.Items {
			order.Items = append(order.Items, toOrderItemDomain(itemM))
		}
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          string(data.Status),
		ShippingAddress: data.Shipping.ShippingAddress,
		Phone:           data.Shipping.Phone,
		Email:           data.Shipping.Email,
		TotalAmount:     data.TotalAmount,
		CreatedAt:       data.CreatedAt,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Product:   toProductDomain(data.Product),
		Quantity:  data.Quantity,
		Price:     data.Price,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
	}
}
