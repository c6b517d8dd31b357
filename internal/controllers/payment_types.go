package controllers

import (
	"time"

	"github.com/paylog/backend/internal/models"
	ez_uuid "github.com/paylog/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIYearMonth struct {
	Year  int `uri:"year" binding:"required" example:"2024"` // The year
	Month int `uri:"month" binding:"required" example:"3"`   // The month, 1 through 12
}

type QueryMonth struct {
	Month int `form:"month" example:"3"`    // The month, defaults to the current month
	Year  int `form:"year" example:"2024"`  // The year, defaults to the current year
}

// PaymentEditable contains the fields of a Payment that are set by clients.
type PaymentEditable struct {
	Name        string           `json:"name" binding:"required" example:"Coffee"`                // Label for the payment
	Amount      *decimal.Decimal `json:"amount" binding:"required" example:"4.50"`                // The amount of the payment
	Description string           `json:"desc" example:"Morning espresso" default:""`              // A note
	Category    string           `json:"category" example:"food" default:"unknown"`               // Category tag, used for grouping
	Timestamp   time.Time        `json:"time" example:"2024-03-15T08:00:00Z"`                     // Time the expense occurred. Defaults to the creation time
}

// model returns the database resource for the API representation of the editable fields
func (editable PaymentEditable) model() models.Payment {
	amount := decimal.Zero
	if editable.Amount != nil {
		amount = *editable.Amount
	}

	return models.Payment{
		Timestamp:   editable.Timestamp,
		Name:        editable.Name,
		Amount:      amount,
		Description: editable.Description,
		Category:    editable.Category,
	}
}

type MessageResponse struct {
	Message string `json:"message" example:"Payment deleted"` // Human readable result of the operation
}

type DayCountResponse struct {
	DaysLogged int `json:"days_logged" example:"3"` // Inclusive day span between the earliest and latest payment
}

type MonthTotalsResponse struct {
	Total        decimal.Decimal            `json:"total"`         // Sum of all payment amounts in the month
	CategoryWise map[string]decimal.Decimal `json:"category_wise"` // Amount sum per category
}
