package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omosemola/my-ecommerce-web/internal/services"
)

type sendConfirmationRequest struct {
	OrderID string `json:"orderId"`
}

type sendShippingRequest struct {
	OrderID        string `json:"orderId"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

type testEmailRequest struct {
	Email string `json:"email"`
}

func registerEmailRoutes(g *echo.Group, orderSvc *services.OrderService, mailer services.Mailer) {
	e := g.Group("/email")

	e.POST("/send-confirmation", func(c echo.Context) error {
		req := new(sendConfirmationRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := orderSvc.SendConfirmation(c.Request().Context(), req.OrderID); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Confirmation email sent",
			"orderId": req.OrderID,
		})
	})

	e.POST("/send-shipping", func(c echo.Context) error {
		req := new(sendShippingRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := orderSvc.SendShippingNotification(c.Request().Context(), req.OrderID, req.TrackingNumber); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Shipping email sent",
			"orderId": req.OrderID,
		})
	})

	e.POST("/test", func(c echo.Context) error {
		req := new(testEmailRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.Email == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email address required"})
		}
		if err := mailer.SendTestEmail(c.Request().Context(), req.Email); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Test email sent successfully",
			"email":   req.Email,
		})
	})
}
