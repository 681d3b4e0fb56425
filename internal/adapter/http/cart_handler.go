package http

import (
	"encoding/json"
	"net/http"

	"github.com/sipzooppp/orders/internal/adapter/logger"
	"github.com/sipzooppp/orders/internal/domain"
)

// CartHandler exposes the session cart and the product menu.
type CartHandler struct {
	catalog *domain.Catalog
	cart    *domain.Cart
	logger  logger.Logger
}

func NewCartHandler(catalog *domain.Catalog, cart *domain.Cart, logger logger.Logger) *CartHandler {
	return &CartHandler{
		catalog: catalog,
		cart:    cart,
		logger:  logger,
	}
}

type SetQuantityRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type MenuItemResponse struct {
	Name      string `json:"name"`
	Glyph     string `json:"glyph"`
	UnitPrice string `json:"unit_price"`
}

// GetMenu handles GET /menu.
func (h *CartHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}

	items := make([]MenuItemResponse, 0, h.catalog.Len())
	for _, p := range h.catalog.Products() {
		items = append(items, MenuItemResponse{
			Name:      p.Name,
			Glyph:     p.Glyph,
			UnitPrice: p.UnitPrice.StringFixed(2),
		})
	}

	respondJSON(w, http.StatusOK, items)
}

// HandleCart handles GET /cart and DELETE /cart.
func (h *CartHandler) HandleCart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		respondJSON(w, http.StatusOK, cartResponse(h.cart))

	case http.MethodDelete:
		h.cart.Clear()
		h.logger.Debug("cart_cleared", "Cart cleared", "", nil)
		respondJSON(w, http.StatusOK, cartResponse(h.cart))

	default:
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	}
}

// SetQuantity handles PUT /cart/items.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}

	var req SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.cart.SetQuantity(req.Product, req.Quantity); err != nil {
		h.logger.Error("cart_update_failed", "Failed to update cart", "", map[string]interface{}{
			"product":  req.Product,
			"quantity": req.Quantity,
		}, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(h.cart))
}
