package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/omosemola/my-ecommerce-web/internal/cart"
	"github.com/omosemola/my-ecommerce-web/internal/model"
	"github.com/omosemola/my-ecommerce-web/internal/pricing"
	"github.com/omosemola/my-ecommerce-web/internal/services"
)

type addCartRequest struct {
	ProductID int64  `json:"id"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int    `json:"quantity"`
}

type updateCartRequest struct {
	Variant  string `json:"variant,omitempty"`
	Quantity int    `json:"quantity"`
}

// registerCartRoutes mounts the server-held session cart. The session id
// comes from the X-Session-ID header; one cart per session, no concurrent
// writers by construction.
func registerCartRoutes(g *echo.Group, store cart.Store, ps *services.ProductService, policy pricing.Policy) {
	p := g.Group("/cart")

	openCart := func(c echo.Context) (*cart.Cart, error) {
		sessionID := c.Request().Header.Get("X-Session-ID")
		if sessionID == "" {
			return nil, model.Invalid("session", "X-Session-ID header is required")
		}
		return cart.Open(sessionID, store)
	}

	// GET cart with server-computed totals
	p.GET("", func(c echo.Context) error {
		ct, err := openCart(c)
		if err != nil {
			return jsonError(c, err)
		}
		items := ct.Snapshot()
		if items == nil {
			items = []model.CartItem{}
		}
		return c.JSON(http.StatusOK, echo.Map{
			"items":  items,
			"count":  ct.Count(),
			"totals": pricing.Compute(items, policy),
		})
	})

	// ADD item; unit price comes from the catalog, never the client
	p.POST("", func(c echo.Context) error {
		ct, err := openCart(c)
		if err != nil {
			return jsonError(c, err)
		}
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		product, err := ps.Get(c.Request().Context(), req.ProductID)
		if err != nil {
			return jsonError(c, err)
		}
		item := model.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Variant:   req.Variant,
		}
		if err := ct.Add(item, req.Quantity); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"message": "added", "count": ct.Count()})
	})

	// UPDATE quantity (0 removes the line)
	p.PUT("/:id", func(c echo.Context) error {
		ct, err := openCart(c)
		if err != nil {
			return jsonError(c, err)
		}
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		key := model.CartKey{ProductID: id, Variant: req.Variant}
		if err := ct.SetQuantity(key, req.Quantity); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "updated", "count": ct.Count()})
	})

	// REMOVE item
	p.DELETE("/:id", func(c echo.Context) error {
		ct, err := openCart(c)
		if err != nil {
			return jsonError(c, err)
		}
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		key := model.CartKey{ProductID: id, Variant: c.QueryParam("variant")}
		if err := ct.Remove(key); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "removed", "count": ct.Count()})
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		ct, err := openCart(c)
		if err != nil {
			return jsonError(c, err)
		}
		if err := ct.Clear(); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "cleared"})
	})
}
