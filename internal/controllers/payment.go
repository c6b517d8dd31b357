package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paylog/backend/internal/httputil"
	"github.com/paylog/backend/internal/models"
	"github.com/paylog/backend/internal/types"
)

// RegisterPaymentRoutes registers the routes for payments with
// the RouterGroup that is passed.
func RegisterPaymentRoutes(r *gin.RouterGroup) {
	// Creation and deletion
	{
		r.OPTIONS("/add", OptionsPaymentAdd)
		r.POST("/add", CreatePayment)
		r.OPTIONS("/delete/:id", OptionsPaymentDelete)
		r.DELETE("/delete/:id", DeletePayment)
	}

	// Lists
	{
		r.GET("/list/:selector", GetPaymentList)
		r.GET("/list/by_cat/:category", GetPaymentListByCategory)
		r.GET("/list/:selector/:period", GetPaymentListFiltered)
	}

	// Totals
	{
		r.GET("/total/:selector", GetPaymentTotal)
		r.GET("/total/category/:category", GetPaymentTotalByCategory)
		r.GET("/total/category/:category/:period", GetPaymentTotalFiltered)
	}

	// Aggregates
	{
		r.GET("/day_count", GetPaymentDayCount)
		r.GET("/pie_data", GetPaymentPieData)
		r.GET("/totals/:year/:month", GetMonthTotals)
	}

	// Month-scoped list. The year segment shares its position with the
	// static route heads above, gin matches those first.
	r.GET("/:year/:month", GetMonthPayments)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Router			/payments/add [options]
func OptionsPaymentAdd(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Param			id	path	string	true	"ID of the payment"
// @Router			/payments/delete/{id} [options]
func OptionsPaymentDelete(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Create payment
// @Description	Creates a new payment. The id defaults to a generated UUID, the timestamp to the creation time and the category to "unknown".
// @Tags			Payments
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.Payment
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			payment	body		PaymentEditable	true	"Payment"
// @Router			/payments/add [post]
func CreatePayment(c *gin.Context) {
	var editable PaymentEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	payment := editable.model()
	err = models.DB.Create(&payment).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// Re-read so that the response contains all server assigned fields
	err = models.DB.First(&payment, payment.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// @Summary		Delete payment
// @Description	Deletes a payment
// @Tags			Payments
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the payment"
// @Router			/payments/delete/{id} [delete]
func DeletePayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var payment models.Payment
	err = models.DB.First(&payment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&payment).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Payment deleted"})
}

// @Summary		List payments
// @Description	Returns the payments within a time period. Valid time periods are "all", "month" (the current calendar month), "week" (the last 7 days) and "day" (the last 24 hours).
// @Tags			Payments
// @Produce		json
// @Success		200			{array}		models.Payment
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			selector	path		string	true	"Time period"
// @Router			/payments/list/{selector} [get]
func GetPaymentList(c *gin.Context) {
	win, err := types.ParseTimePeriod(c.Param("selector"), time.Now())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	payments, err := models.Payments(win, "")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary		List payments by category
// @Description	Returns all payments with exactly the given category.
// @Tags			Payments
// @Produce		json
// @Success		200			{array}		models.Payment
// @Failure		500			{object}	httpError
// @Param			category	path		string	true	"Category"
// @Router			/payments/list/by_cat/{category} [get]
func GetPaymentListByCategory(c *gin.Context) {
	payments, err := models.Payments(types.Window{}, c.Param("category"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary		List payments by category and time period
// @Description	Returns the payments with the given category within a time period. The time period is a selector or a day count for a rolling window.
// @Tags			Payments
// @Produce		json
// @Success		200			{array}		models.Payment
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			selector	path		string	true	"Category"
// @Param			period		path		string	true	"Time period or number of days"
// @Router			/payments/list/{selector}/{period} [get]
func GetPaymentListFiltered(c *gin.Context) {
	// The first segment shares its route parameter with the single
	// segment list route, here it carries the category.
	category := c.Param("selector")

	win, err := types.ParsePeriod(c.Param("period"), time.Now())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	payments, err := models.Payments(win, category)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary		Payment totals
// @Description	Returns the number of payments and the sum of their amounts within a time period.
// @Tags			Payments
// @Produce		json
// @Success		200			{object}	models.Total
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			selector	path		string	true	"Time period"
// @Router			/payments/total/{selector} [get]
func GetPaymentTotal(c *gin.Context) {
	win, err := types.ParseTimePeriod(c.Param("selector"), time.Now())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	total, err := models.PaymentTotal(win, "")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, total)
}

// @Summary		Payment totals by category
// @Description	Returns the number of payments and the sum of their amounts for exactly the given category.
// @Tags			Payments
// @Produce		json
// @Success		200			{object}	models.Total
// @Failure		500			{object}	httpError
// @Param			category	path		string	true	"Category"
// @Router			/payments/total/category/{category} [get]
func GetPaymentTotalByCategory(c *gin.Context) {
	total, err := models.PaymentTotal(types.Window{}, c.Param("category"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, total)
}

// @Summary		Payment totals by category and time period
// @Description	Returns the number of payments and the sum of their amounts for the given category within a time period.
// @Tags			Payments
// @Produce		json
// @Success		200			{object}	models.Total
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	path		string	true	"Category"
// @Param			period		path		string	true	"Time period or number of days"
// @Router			/payments/total/category/{category}/{period} [get]
func GetPaymentTotalFiltered(c *gin.Context) {
	win, err := types.ParsePeriod(c.Param("period"), time.Now())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	total, err := models.PaymentTotal(win, c.Param("category"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, total)
}

// @Summary		Logged day count
// @Description	Returns the inclusive number of days between the earliest and the latest payment. 0 when there are no payments.
// @Tags			Payments
// @Produce		json
// @Success		200	{object}	DayCountResponse
// @Failure		500	{object}	httpError
// @Router			/payments/day_count [get]
func GetPaymentDayCount(c *gin.Context) {
	days, err := models.PaymentDayCount()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, DayCountResponse{DaysLogged: days})
}

// @Summary		Category sums for a month
// @Description	Returns the amount sum per category for the given month, suitable for a pie chart. Month and year default to the current ones.
// @Tags			Payments
// @Produce		json
// @Success		200		{object}	map[string]decimal.Decimal
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		int	false	"The month, 1 through 12"
// @Param			year	query		int	false	"The year"
// @Router			/payments/pie_data [get]
func GetPaymentPieData(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	now := time.Now()
	if query.Month == 0 {
		query.Month = int(now.Month())
	}
	if query.Year == 0 {
		query.Year = now.Year()
	}

	if query.Month < 1 || query.Month > 12 {
		c.JSON(http.StatusBadRequest, httpError{Error: errMonthOutOfRange.Error()})
		return
	}

	win := types.WindowForMonth(types.NewMonth(query.Year, time.Month(query.Month)))
	sums, err := models.PaymentCategorySums(win)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, sums)
}

// @Summary		List payments for a month
// @Description	Returns all payments within the given calendar month.
// @Tags			Payments
// @Produce		json
// @Success		200		{array}		models.Payment
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			year	path		int	true	"The year"
// @Param			month	path		int	true	"The month, 1 through 12"
// @Router			/payments/{year}/{month} [get]
func GetMonthPayments(c *gin.Context) {
	win, err := monthWindowFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	payments, err := models.Payments(win, "")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary		Totals for a month
// @Description	Returns the amount sum and the per-category sums for all payments within the given calendar month.
// @Tags			Payments
// @Produce		json
// @Success		200		{object}	MonthTotalsResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			year	path		int	true	"The year"
// @Param			month	path		int	true	"The month, 1 through 12"
// @Router			/payments/totals/{year}/{month} [get]
func GetMonthTotals(c *gin.Context) {
	win, err := monthWindowFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	payments, err := models.Payments(win, "")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MonthTotalsResponse{
		Total:        models.SumPayments(payments).TotalAmount,
		CategoryWise: models.CategorySums(payments),
	})
}

// monthWindowFromURI resolves the year and month URI segments to a
// calendar month window.
func monthWindowFromURI(c *gin.Context) (types.Window, error) {
	var uri URIYearMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return types.Window{}, types.ErrTimePeriodInvalid
	}

	if uri.Month < 1 || uri.Month > 12 {
		return types.Window{}, errMonthOutOfRange
	}

	return types.WindowForMonth(types.NewMonth(uri.Year, time.Month(uri.Month))), nil
}
