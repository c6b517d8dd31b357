package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paylog/backend/internal/controllers"
	"github.com/paylog/backend/internal/models"
	"github.com/paylog/backend/test"
	"github.com/shopspring/decimal"
)

// createTestPayment creates a payment over the API and returns the
// server representation.
func (suite *TestSuiteStandard) createTestPayment(body map[string]any) models.Payment {
	recorder := test.Request(suite.T(), http.MethodPost, "/payments/add", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var payment models.Payment
	test.DecodeResponse(suite.T(), &recorder, &payment)

	return payment
}

func (suite *TestSuiteStandard) TestOptionsPayment() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/payments/add", "")
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal(recorder.Header().Get("allow"), "OPTIONS, POST")

	recorder = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/payments/delete/%s", uuid.New()), "")
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal(recorder.Header().Get("allow"), "OPTIONS, DELETE")
}

func (suite *TestSuiteStandard) TestCreatePayment() {
	payment := suite.createTestPayment(map[string]any{
		"name":     "Coffee",
		"amount":   4.5,
		"desc":     "Morning espresso",
		"category": "Food",
		"time":     "2024-03-15T08:00:00Z",
	})

	suite.Assert().NotEqual(uuid.Nil, payment.ID)
	suite.Assert().Equal("Coffee", payment.Name)
	suite.Assert().True(payment.Amount.Equal(decimal.NewFromFloat(4.5)), "amount is %s", payment.Amount)
	suite.Assert().Equal("Morning espresso", payment.Description)
	suite.Assert().Equal("food", payment.Category, "the category must be lower cased")
	suite.Assert().Equal(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), payment.Timestamp)
}

func (suite *TestSuiteStandard) TestCreatePaymentDefaults() {
	payment := suite.createTestPayment(map[string]any{
		"name":   "Coffee",
		"amount": 4.5,
	})

	suite.Assert().Equal(models.DefaultCategory, payment.Category)
	suite.Assert().Empty(payment.Description)
	suite.Assert().False(payment.Timestamp.IsZero(), "the timestamp must default to the creation time")
}

func (suite *TestSuiteStandard) TestCreatePaymentZeroAmount() {
	// A zero amount is explicitly present, only a missing amount is an error
	recorder := test.Request(suite.T(), http.MethodPost, "/payments/add", map[string]any{
		"name":   "Freebie",
		"amount": 0,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestCreatePaymentFails() {
	tests := []struct {
		name string
		body any
	}{
		{"Missing name", map[string]any{"amount": 4.5}},
		{"Missing amount", map[string]any{"name": "Coffee"}},
		{"Empty body", ""},
		{"Broken body", `{ "name": }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/payments/add", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestDeletePayment() {
	payment := suite.createTestPayment(map[string]any{"name": "Coffee", "amount": 4.5})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/payments/delete/%s", payment.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.MessageResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Payment deleted", response.Message)

	// Deleting the same payment again returns a 404
	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/payments/delete/%s", payment.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeletePaymentInvalidUUID() {
	recorder := test.Request(suite.T(), http.MethodDelete, "/payments/delete/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeletePaymentNotFound() {
	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/payments/delete/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetPaymentList() {
	suite.createTestPayment(map[string]any{"name": "Coffee", "amount": 4.5})
	suite.createTestPayment(map[string]any{"name": "Old rent", "amount": 850, "time": "2020-01-01T00:00:00Z"})

	var payments []models.Payment

	recorder := test.Request(suite.T(), http.MethodGet, "/payments/list/all", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &payments)
	suite.Assert().Len(payments, 2)

	// "month" only covers the current calendar month
	recorder = test.Request(suite.T(), http.MethodGet, "/payments/list/month", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &payments)
	suite.Assert().Len(payments, 1)
	suite.Assert().Equal("Coffee", payments[0].Name)
}

func (suite *TestSuiteStandard) TestGetPaymentListInvalidPeriod() {
	for _, selector := range []string{"year", "30", "Month", "ALL"} {
		recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/payments/list/%s", selector), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGetPaymentListByCategory() {
	suite.createTestPayment(map[string]any{"name": "Coffee", "amount": 4.5, "category": "food"})
	suite.createTestPayment(map[string]any{"name": "Bus", "amount": 2.8, "category": "transport"})

	recorder := test.Request(suite.T(), http.MethodGet, "/payments/list/by_cat/food", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var payments []models.Payment
	test.DecodeResponse(suite.T(), &recorder, &payments)
	suite.Require().Len(payments, 1)
	suite.Assert().Equal("Coffee", payments[0].Name)

	// An unknown category returns an empty list, not an error
	recorder = test.Request(suite.T(), http.MethodGet, "/payments/list/by_cat/nothing_here", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &payments)
	suite.Assert().Len(payments, 0)
}

func (suite *TestSuiteStandard) TestGetPaymentListFiltered() {
	suite.createTestPayment(map[string]any{"name": "Coffee", "amount": 4.5, "category": "food"})
	suite.createTestPayment(map[string]any{"name": "Old lunch", "amount": 12, "category": "food", "time": "2020-01-01T12:00:00Z"})
	suite.createTestPayment(map[string]any{"name": "Bus", "amount": 2.8, "category": "transport"})

	var payments []models.Payment

	// Category with a named time period
	recorder := test.Request(suite.T(), http.MethodGet, "/payments/list/food/week", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &payments)
	suite.Require().Len(payments, 1)
	suite.Assert().Equal("Coffee", payments[0].Name)

	// Category with a rolling day count
	recorder = test.Request(suite.T(), http.MethodGet, "/payments/list/food/30", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &payments)
	suite.Assert().Len(payments, 1)

	recorder = test.Request(suite.T(), http.MethodGet, "/payments/list/food/notaperiod", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetPaymentTotal() {
	// An empty database has a zero total
	recorder := test.Request(suite.T(), http.MethodGet, "/payments/total/all", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var total models.Total
	test.DecodeResponse(suite.T(), &recorder, &total)
	suite.Assert().Equal(0, total.NumberOfPayments)
	suite.Assert().True(total.TotalAmount.IsZero())

	suite.createTestPayment(map[string]any{"name": "Coffee", "amount": 4.5})
	suite.createTestPayment(map[string]any{"name": "Lunch", "amount": 12.25})

	recorder = test.Request(suite.T(), http.MethodGet, "/payments/total/month", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &total)
	suite.Assert().Equal(2, total.NumberOfPayments)
	suite.Assert().True(total.TotalAmount.Equal(decimal.NewFromFloat(16.75)), "total is %s", total.TotalAmount)

	recorder = test.Request(suite.T(), http.MethodGet, "/payments/total/nope", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetPaymentTotalByCategory() {
	suite.createTestPayment(map[string]any{"name": "Coffee", "amount": 4.5, "category": "food"})
	suite.createTestPayment(map[string]any{"name": "Old lunch", "amount": 12, "category": "food", "time": "2020-01-01T12:00:00Z"})
	suite.createTestPayment(map[string]any{"name": "Bus", "amount": 2.8, "category": "transport"})

	var total models.Total

	recorder := test.Request(suite.T(), http.MethodGet, "/payments/total/category/food", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &total)
	suite.Assert().Equal(2, total.NumberOfPayments)
	suite.Assert().True(total.TotalAmount.Equal(decimal.NewFromFloat(16.5)), "total is %s", total.TotalAmount)

	// Restricted to the last 7 days the old lunch is not counted
	recorder = test.Request(suite.T(), http.MethodGet, "/payments/total/category/food/week", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &total)
	suite.Assert().Equal(1, total.NumberOfPayments)
	suite.Assert().True(total.TotalAmount.Equal(decimal.NewFromFloat(4.5)), "total is %s", total.TotalAmount)

	recorder = test.Request(suite.T(), http.MethodGet, "/payments/total/category/food/notaperiod", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetPaymentDayCount() {
	var response controllers.DayCountResponse

	recorder := test.Request(suite.T(), http.MethodGet, "/payments/day_count", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(0, response.DaysLogged)

	suite.createTestPayment(map[string]any{"name": "first", "amount": 1, "time": "2024-03-01T08:00:00Z"})
	suite.createTestPayment(map[string]any{"name": "last", "amount": 1, "time": "2024-03-03T08:00:00Z"})

	recorder = test.Request(suite.T(), http.MethodGet, "/payments/day_count", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(3, response.DaysLogged)
}

func (suite *TestSuiteStandard) TestGetPaymentPieData() {
	suite.createTestPayment(map[string]any{"name": "Coffee", "amount": 4.5, "category": "food", "time": "2024-03-15T08:00:00Z"})
	suite.createTestPayment(map[string]any{"name": "Lunch", "amount": 12, "category": "food", "time": "2024-03-20T12:00:00Z"})
	suite.createTestPayment(map[string]any{"name": "Bus", "amount": 2.8, "category": "transport", "time": "2024-03-02T09:00:00Z"})

	recorder := test.Request(suite.T(), http.MethodGet, "/payments/pie_data?year=2024&month=3", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var sums map[string]decimal.Decimal
	test.DecodeResponse(suite.T(), &recorder, &sums)
	suite.Require().Len(sums, 2)
	suite.Assert().True(sums["food"].Equal(decimal.NewFromFloat(16.5)), "food sum is %s", sums["food"])
	suite.Assert().True(sums["transport"].Equal(decimal.NewFromFloat(2.8)), "transport sum is %s", sums["transport"])

	// Month and year default to the current ones
	recorder = test.Request(suite.T(), http.MethodGet, "/payments/pie_data", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	// Reset so that entries from the previous decode do not survive the
	// merge semantics of json.Unmarshal into a non-nil map.
	sums = nil
	test.DecodeResponse(suite.T(), &recorder, &sums)
	suite.Assert().Len(sums, 0)

	recorder = test.Request(suite.T(), http.MethodGet, "/payments/pie_data?year=2024&month=13", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetMonthPayments() {
	suite.createTestPayment(map[string]any{"name": "Coffee", "amount": 4.5, "time": "2024-03-15T08:00:00Z"})
	suite.createTestPayment(map[string]any{"name": "Rent", "amount": 850, "time": "2024-04-01T00:00:00Z"})

	recorder := test.Request(suite.T(), http.MethodGet, "/payments/2024/3", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var payments []models.Payment
	test.DecodeResponse(suite.T(), &recorder, &payments)
	suite.Require().Len(payments, 1)
	suite.Assert().Equal("Coffee", payments[0].Name)

	recorder = test.Request(suite.T(), http.MethodGet, "/payments/2024/13", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodGet, "/payments/notayear/3", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetMonthTotals() {
	suite.createTestPayment(map[string]any{"name": "Coffee", "amount": 4.5, "category": "food", "time": "2024-03-15T08:00:00Z"})

	recorder := test.Request(suite.T(), http.MethodGet, "/payments/totals/2024/3", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.MonthTotalsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Total.Equal(decimal.NewFromFloat(4.5)), "total is %s", response.Total)
	suite.Require().Len(response.CategoryWise, 1)
	suite.Assert().True(response.CategoryWise["food"].Equal(decimal.NewFromFloat(4.5)))

	// A month without payments has a zero total and no categories
	recorder = test.Request(suite.T(), http.MethodGet, "/payments/totals/2024/4", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	// Reset so that entries from the previous decode do not survive the
	// merge semantics of json.Unmarshal into a non-nil map.
	response = controllers.MonthTotalsResponse{}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Total.IsZero())
	suite.Assert().Len(response.CategoryWise, 0)
}

func (suite *TestSuiteStandard) TestGetMonthTotalsInvalidMonth() {
	recorder := test.Request(suite.T(), http.MethodGet, "/payments/totals/2024/0", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodGet, "/payments/totals/2024/13", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
