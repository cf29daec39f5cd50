package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/omosemola/my-ecommerce-web/internal/middleware"
	"github.com/omosemola/my-ecommerce-web/internal/model"
	"github.com/omosemola/my-ecommerce-web/internal/services"
)

type createProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

// registerProductRoutes mounts the catalog endpoints.
// Public:
//
//	GET /products      -> list
//	GET /products/:id  -> get
//
// Admin (JWT + role=admin):
//
//	GET/POST /admin/products, PUT/DELETE /admin/products/:id
func registerProductRoutes(g *echo.Group, ps *services.ProductService) {
	g.GET("/products", func(c echo.Context) error {
		products, err := ps.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if products == nil {
			products = []model.Product{}
		}
		return c.JSON(http.StatusOK, products)
	})

	g.GET("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		p, err := ps.Get(c.Request().Context(), id)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, p)
	})

	admin := g.Group("/admin/products")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.GET("", func(c echo.Context) error {
		products, err := ps.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":  true,
			"products": products,
			"total":    len(products),
		})
	})

	admin.POST("", func(c echo.Context) error {
		req := new(createProductRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		p, err := ps.Create(c.Request().Context(), &model.Product{
			Name:        req.Name,
			Price:       req.Price,
			Category:    req.Category,
			Description: req.Description,
			Image:       req.Image,
		})
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{
			"success": true,
			"message": "Product added successfully",
			"product": p,
		})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(updateProductRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		p, err := ps.Update(c.Request().Context(), id, model.ProductUpdate{
			Name:        req.Name,
			Price:       req.Price,
			Category:    req.Category,
			Description: req.Description,
			Image:       req.Image,
		})
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Product updated successfully",
			"product": p,
		})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := ps.Delete(c.Request().Context(), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":   true,
			"message":   "Product deleted successfully",
			"productId": id,
		})
	})
}
