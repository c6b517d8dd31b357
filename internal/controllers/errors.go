package controllers

import (
	"errors"
	"net/http"

	"github.com/paylog/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified time period is invalid"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var errMonthOutOfRange = errors.New("the month must be between 1 and 12")
