package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/paylog/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Total summarizes a set of payments.
type Total struct {
	NumberOfPayments int             `json:"number_of_payments"` // How many payments matched
	TotalAmount      decimal.Decimal `json:"total_amount"`       // Sum of their amounts
}

// paymentsQuery builds the query for all payments inside the window,
// optionally restricted to an exact category match.
//
// Calendar windows include their start instant, rolling windows do not.
func paymentsQuery(win types.Window, category string) *gorm.DB {
	q := DB.Model(&Payment{})

	if !win.Start.IsZero() {
		if win.InclusiveStart {
			q = q.Where("datetime(timestamp) >= datetime(?)", win.Start)
		} else {
			q = q.Where("datetime(timestamp) > datetime(?)", win.Start)
		}
	}

	if !win.End.IsZero() {
		q = q.Where("datetime(timestamp) < datetime(?)", win.End)
	}

	if category != "" {
		q = q.Where("category = ?", category)
	}

	return q
}

// Payments returns all payments inside the window, optionally restricted
// to an exact category match. The order is the store order.
func Payments(win types.Window, category string) ([]Payment, error) {
	var payments []Payment

	err := paymentsQuery(win, category).Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("getting payments failed: %w", err)
	}

	return payments, nil
}

// SumPayments returns the count and amount sum for a set of payments.
func SumPayments(payments []Payment) Total {
	sum := decimal.Zero
	for _, payment := range payments {
		sum = sum.Add(payment.Amount)
	}

	return Total{
		NumberOfPayments: len(payments),
		TotalAmount:      sum,
	}
}

// CategorySums groups a set of payments by category and sums the amounts
// per category.
func CategorySums(payments []Payment) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, payment := range payments {
		sums[payment.Category] = sums[payment.Category].Add(payment.Amount)
	}

	return sums
}

// PaymentTotal returns the count and amount sum for all payments inside
// the window, optionally restricted to a category.
func PaymentTotal(win types.Window, category string) (Total, error) {
	payments, err := Payments(win, category)
	if err != nil {
		return Total{}, err
	}

	return SumPayments(payments), nil
}

// PaymentCategorySums returns the amount sum per category for all payments
// inside the window.
func PaymentCategorySums(win types.Window) (map[string]decimal.Decimal, error) {
	payments, err := Payments(win, "")
	if err != nil {
		return nil, err
	}

	return CategorySums(payments), nil
}

// PaymentDayCount returns the inclusive number of days between the earliest
// and the latest payment timestamp. An empty store has a day count of 0, a
// single payment counts as 1.
func PaymentDayCount() (int, error) {
	var first, last Payment

	err := DB.Order("datetime(timestamp) ASC").Take(&first).Error
	if errors.Is(err, ErrResourceNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("getting earliest payment failed: %w", err)
	}

	err = DB.Order("datetime(timestamp) DESC").Take(&last).Error
	if err != nil {
		return 0, fmt.Errorf("getting latest payment failed: %w", err)
	}

	return int(last.Timestamp.Sub(first.Timestamp)/(24*time.Hour)) + 1, nil
}
