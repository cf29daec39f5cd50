package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omosemola/my-ecommerce-web/internal/middleware"
	"github.com/omosemola/my-ecommerce-web/internal/model"
	"github.com/omosemola/my-ecommerce-web/internal/services"
)

type createOrderRequest struct {
	Customer model.Customer        `json:"customer"`
	Shipping model.ShippingAddress `json:"shipping"`
	Items    []model.CartItem      `json:"items"`
	Total    *float64              `json:"total,omitempty"`
}

func registerOrderRoutes(g *echo.Group, orderSvc *services.OrderService) {
	p := g.Group("/orders")

	// Direct order placement (no hosted payment). Totals are recomputed
	// server-side; the client total is only checked.
	p.POST("", func(c echo.Context) error {
		req := new(createOrderRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.Customer.Email == "" || len(req.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required order data"})
		}

		order, err := orderSvc.PlaceOrder(
			c.Request().Context(),
			req.Customer, req.Shipping, req.Items, req.Total,
		)
		if err != nil {
			return jsonError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Order placed successfully",
			"orderId": order.ID,
			"order":   order,
		})
	})

	p.GET("", func(c echo.Context) error {
		orders, err := orderSvc.List(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		if orders == nil {
			orders = []model.Order{}
		}
		return c.JSON(http.StatusOK, echo.Map{
			"count":  len(orders),
			"orders": orders,
		})
	})

	p.GET("/email/:email", func(c echo.Context) error {
		email := c.Param("email")
		orders, err := orderSvc.ByEmail(c.Request().Context(), email)
		if err != nil {
			return jsonError(c, err)
		}
		if orders == nil {
			orders = []model.Order{}
		}
		return c.JSON(http.StatusOK, echo.Map{
			"email":  email,
			"count":  len(orders),
			"orders": orders,
		})
	})

	p.GET("/:orderId", func(c echo.Context) error {
		order, err := orderSvc.Get(c.Request().Context(), c.Param("orderId"))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, order)
	})

	// Admin order deletion
	adminOrders := g.Group("/admin/orders")
	adminOrders.Use(middleware.JWTMiddleware())
	adminOrders.Use(middleware.AdminOnly)

	adminOrders.DELETE("/:orderId", func(c echo.Context) error {
		if err := orderSvc.Delete(c.Request().Context(), c.Param("orderId")); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Order deleted"})
	})
}
