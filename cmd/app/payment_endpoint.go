package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omosemola/my-ecommerce-web/internal/model"
	"github.com/omosemola/my-ecommerce-web/internal/services"
)

type createIntentRequest struct {
	Items         []model.CartItem `json:"items"`
	Amount        *float64         `json:"amount,omitempty"`
	Currency      string           `json:"currency,omitempty"`
	CustomerEmail string           `json:"customerEmail"`
	CustomerName  string           `json:"customerName,omitempty"`
}

type processPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
	Reference       string `json:"reference,omitempty"`
	OrderData       struct {
		Customer model.Customer        `json:"customer"`
		Shipping model.ShippingAddress `json:"shipping"`
	} `json:"orderData"`
	Items []model.CartItem `json:"items"`
}

func (r *processPaymentRequest) ref() string {
	if r.PaymentIntentID != "" {
		return r.PaymentIntentID
	}
	return r.Reference
}

func registerPaymentRoutes(g *echo.Group, ps *services.PaymentService) {
	// Stripe: create a PaymentIntent for the cart. The charged amount is
	// recomputed from catalog prices; the client amount is only checked.
	g.POST("/create-payment-intent", func(c echo.Context) error {
		req := new(createIntentRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		currency := req.Currency
		if currency == "" {
			currency = "ngn"
		}

		intent, err := ps.CreateIntent(
			c.Request().Context(),
			"stripe",
			req.Items, currency, req.CustomerEmail, req.CustomerName,
			req.Amount,
		)
		if err != nil {
			return jsonError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success":         true,
			"clientSecret":    intent.ClientSecret,
			"paymentIntentId": intent.ID,
		})
	})

	processHandler := func(provider string) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := new(processPaymentRequest)
			if err := c.Bind(req); err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
			}

			order, err := ps.ProcessPayment(
				c.Request().Context(),
				provider,
				req.ref(),
				req.OrderData.Customer,
				req.OrderData.Shipping,
				req.Items,
			)
			if err != nil {
				return jsonError(c, err)
			}

			return c.JSON(http.StatusOK, echo.Map{
				"success": true,
				"message": "Order created successfully",
				"orderId": order.ID,
				"order":   order,
			})
		}
	}

	// Stripe: verify the intent and commit the order.
	g.POST("/process-payment", processHandler("stripe"))

	// Paystack: verify the transaction reference and commit the order.
	g.POST("/paystack/verify-payment", processHandler("paystack"))

	g.GET("/stripe-public-key", func(c echo.Context) error {
		key, err := ps.PublicKey("stripe")
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"publicKey": key})
	})

	g.GET("/paystack-public-key", func(c echo.Context) error {
		key, err := ps.PublicKey("paystack")
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"publicKey": key})
	})
}
