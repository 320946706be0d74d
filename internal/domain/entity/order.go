package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of OrderStatuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// ShippingDetails are the contact fields captured at checkout.
type ShippingDetails struct {
	ShippingAddress string
	Phone           string
	Email           string
}

// Order is an immutable snapshot of a checked-out cart. UserID is nil once the
// owning account is deleted.
type Order struct {
	ID          uint
	UserID      *uint
	Status      OrderStatus
	Shipping    ShippingDetails
	TotalAmount decimal.Decimal
	Items       []*OrderItem
	CreatedAt   time.Time
}

// OrderItem records the price a product had at checkout time.
type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID *uint
	Product   *Product
	Quantity  int
	Price     decimal.Decimal
}

// LineTotal is the snapshotted price times quantity.
func (i *OrderItem) LineTotal() decimal.Decimal {
	if i == nil || i.Quantity <= 0 {
		return decimal.Zero
	}

	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SnapshotOrder builds a pending order from cart items, copying each product's
// current price. TotalAmount is the sum of the item line totals.
func SnapshotOrder(userID uint, shipping ShippingDetails, items []*CartItem) *Order {
	order := &Order{
		UserID:      &userID,
		Status:      OrderStatusPending,
		Shipping:    shipping,
		TotalAmount: decimal.Zero,
		Items:       make([]*OrderItem, 0, len(items)),
	}

	for _, cartItem := range items {
		item := &OrderItem{
			Quantity: cartItem.Quantity,
			Price:    decimal.Zero,
		}
		if cartItem.Product != nil {
			productID := cartItem.Product.ID
			item.ProductID = &productID
			item.Price = cartItem.Product.Price
		}

		order.Items = append(order.Items, item)
		order.TotalAmount = order.TotalAmount.Add(item.LineTotal())
	}

	return order
}
