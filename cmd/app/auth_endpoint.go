package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omosemola/my-ecommerce-web/internal/middleware"
	"github.com/omosemola/my-ecommerce-web/internal/services"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Country  string `json:"country,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService) {
	a := g.Group("/auth")

	a.POST("/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		u, err := authSvc.Register(
			c.Request().Context(),
			req.Name, req.Email, req.Password, req.Phone, req.Country,
		)
		if err != nil {
			return jsonError(c, err)
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"message": "User registered successfully",
			"user":    userResponse{ID: u.ID, Name: u.Name, Email: u.Email},
		})
	})

	a.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		u, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}

		token, err := middleware.GenerateToken(u.ID, u.Email, "user", 24*7)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token generation failed"})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"token": token,
			"user":  userResponse{ID: u.ID, Name: u.Name, Email: u.Email},
		})
	})
}
