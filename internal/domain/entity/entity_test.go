package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+79991234567", true},
		{"+70000000000", true},
		{"89991234567", false},
		{"+7999123456", false},
		{"+799912345678", false},
		{"+7 999 123 45 67", false},
		{"+1999123456a", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPhone(tt.phone), tt.phone)
	}
}

func TestNewCart_TotalSkipsMissingPrices(t *testing.T) {
	cart := NewCart([]*CartItem{
		{Product: &Product{Price: decimal.NewFromInt(100)}, Quantity: 2},
		{Product: &Product{Price: decimal.RequireFromString("0.50")}, Quantity: 3},
		{Product: nil, Quantity: 4},
		{Product: &Product{}, Quantity: 1},
	})

	assert.True(t, cart.Total.Equal(decimal.RequireFromString("201.50")), cart.Total.String())
	assert.False(t, cart.IsEmpty())
	assert.True(t, NewCart(nil).IsEmpty())
}

func TestSnapshotOrder(t *testing.T) {
	shipping := ShippingDetails{ShippingAddress: "Moscow", Phone: "+79991234567", Email: "a@b.c"}
	items := []*CartItem{
		{ID: 1, Product: &Product{ID: 10, Price: decimal.NewFromInt(100)}, Quantity: 2},
		{ID: 2, Product: &Product{ID: 11, Price: decimal.NewFromInt(50)}, Quantity: 1},
	}

	order := SnapshotOrder(7, shipping, items)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, uint(7), *order.UserID)
	assert.Equal(t, shipping, order.Shipping)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(250)))
	require.Len(t, order.Items, 2)
	assert.Equal(t, uint(10), *order.Items[0].ProductID)
	assert.True(t, order.Items[0].Price.Equal(decimal.NewFromInt(100)))

	// changing the product afterwards leaves the snapshot intact
	items[0].Product.Price = decimal.NewFromInt(999)
	assert.True(t, order.Items[0].Price.Equal(decimal.NewFromInt(100)))
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, status.IsValid())
	}
	assert.False(t, OrderStatus("lost").IsValid())
}

func TestParseCredentialKind(t *testing.T) {
	assert.Equal(t, CredentialEmail, ParseCredentialKind("email"))
	assert.Equal(t, CredentialPhone, ParseCredentialKind("phone"))
	assert.Equal(t, CredentialUsername, ParseCredentialKind("username"))
	assert.Equal(t, CredentialUsername, ParseCredentialKind("telegram"))
}

func TestUser_Roles(t *testing.T) {
	assert.Equal(t, Roles{RoleCustomer}, (&User{}).Roles())
	assert.Equal(t, Roles{RoleCustomer, RoleStaff}, (&User{IsStaff: true}).Roles())
	assert.Equal(t, Roles{RoleStaff}, RolesFromStrings([]string{"staff", "merchant"}))
	assert.Equal(t, Roles{RoleCustomer}, RolesFromStrings([]string{"customer", "customer"}))
	assert.Equal(t, []string{"customer", "staff"}, Roles{RoleCustomer, RoleStaff}.Strings())
	assert.Equal(t, "Ivan Petrov", (&User{FirstName: "Ivan", LastName: "Petrov"}).DisplayName())
	assert.Equal(t, "ivan", (&User{Username: "ivan"}).DisplayName())
}
