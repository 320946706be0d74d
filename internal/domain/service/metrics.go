package service

import "github.com/shopspring/decimal"

// MetricsRecorder collects business counters.
type MetricsRecorder interface {
	OrderPlaced(total decimal.Decimal, itemCount int)
	CheckoutFailed(reason string)
	CartItemAdded()
	LoginAttempt(kind string, success bool)
	UserRegistered()
}
