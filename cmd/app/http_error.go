package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// jsonError maps the service error taxonomy to HTTP responses.
func jsonError(c echo.Context, err error) error {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
	}
	if errors.Is(err, model.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if errors.Is(err, model.ErrPaymentNotVerified) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	var se *model.StorageError
	if errors.As(err, &se) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage failure"})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
}
