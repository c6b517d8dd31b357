package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCategory is used for payments that are created without a category.
const DefaultCategory = "unknown"

// Payment represents a single expense record.
type Payment struct {
	DefaultModel
	Timestamp   time.Time       `json:"timestamp" example:"2024-03-15T08:00:00Z"`                         // Time the expense occurred. Defaults to the creation time
	Name        string          `json:"name" gorm:"index" example:"Coffee"`                               // Label for the payment
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"4.50"`                  // The amount of the payment
	Description string          `json:"description" example:"Morning espresso" default:""`                // A note
	Category    string          `json:"category" gorm:"index" example:"food" default:"unknown"`           // Category tag, used for grouping
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (p *Payment) AfterFind(tx *gorm.DB) (err error) {
	err = p.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	p.Timestamp = p.Timestamp.In(time.UTC)
	return nil
}

// BeforeSave sets the payment defaults.
//
// Categories are lower-cased on write so that grouping and exact-match
// filtering see one spelling per category.
func (p *Payment) BeforeSave(_ *gorm.DB) (err error) {
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now().In(time.UTC)
	} else {
		p.Timestamp = p.Timestamp.In(time.UTC)
	}

	if p.Category == "" {
		p.Category = DefaultCategory
	}
	p.Category = strings.ToLower(p.Category)

	return nil
}
