package model

// CartKey identifies a cart line: the same product in two sizes is two lines.
type CartKey struct {
	ProductID int64
	Variant   string
}

// CartItem is one line in a cart.
type CartItem struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Variant   string  `json:"variant,omitempty"`
	Quantity  int     `json:"quantity"`
}

func (i CartItem) Key() CartKey {
	return CartKey{ProductID: i.ProductID, Variant: i.Variant}
}

// CartResponse is returned when calling GET /api/cart.
type CartResponse struct {
	Items []CartItem `json:"items"`
	Count int        `json:"count"`
}
