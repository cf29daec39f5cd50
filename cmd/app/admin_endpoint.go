package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omosemola/my-ecommerce-web/internal/middleware"
	"github.com/omosemola/my-ecommerce-web/internal/services"
)

type adminLoginRequest struct {
	Password string `json:"password"`
}

func registerAdminRoutes(g *echo.Group, authSvc *services.AuthService, orderSvc *services.OrderService) {
	g.POST("/admin/login", func(c echo.Context) error {
		req := new(adminLoginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := authSvc.AdminLogin(req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		token, err := middleware.GenerateToken(0, "", "admin", 24)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token generation failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"token":   token,
			"message": "Admin login successful",
		})
	})

	dashboard := g.Group("/admin/dashboard")
	dashboard.Use(middleware.JWTMiddleware())
	dashboard.Use(middleware.AdminOnly)

	dashboard.GET("", func(c echo.Context) error {
		stats, orders, err := orderSvc.Dashboard(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"stats":   stats,
			"orders":  orders,
		})
	})
}
