package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paylog/backend/internal/httputil"
	"github.com/paylog/backend/internal/settings"
)

type BudgetResponse struct {
	MonthlyBudget int64 `json:"monthly_budget" example:"10000"` // The monthly budget
}

type BudgetUpdateResponse struct {
	Message       string `json:"message" example:"Budget updated"` // Human readable result of the operation
	MonthlyBudget int64  `json:"monthly_budget" example:"500"`     // The monthly budget after the update
}

type BudgetEditable struct {
	Budget *int64 `json:"budget" binding:"required" example:"500"` // The new monthly budget
}

// RegisterSettingsRoutes registers the routes for settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup, s *settings.Settings) {
	r.OPTIONS("/budget", OptionsBudget)
	r.GET("/budget", GetBudget(s))
	r.POST("/budget", UpdateBudget(s))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/settings/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get monthly budget
// @Description	Returns the configured monthly budget.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Router			/settings/budget [get]
func GetBudget(s *settings.Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, BudgetResponse{MonthlyBudget: s.MonthlyBudget()})
	}
}

// @Summary		Set monthly budget
// @Description	Replaces the monthly budget and echoes the new value. The budget is not validated, zero and negative values are accepted.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetUpdateResponse
// @Failure		400		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/settings/budget [post]
func UpdateBudget(s *settings.Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable BudgetEditable

		err := httputil.BindData(c, &editable)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		s.SetMonthlyBudget(*editable.Budget)

		c.JSON(http.StatusOK, BudgetUpdateResponse{
			Message:       "Budget updated",
			MonthlyBudget: s.MonthlyBudget(),
		})
	}
}
