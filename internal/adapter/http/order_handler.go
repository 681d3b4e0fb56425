package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sipzooppp/orders/internal/adapter/logger"
	"github.com/sipzooppp/orders/internal/domain"
	"github.com/sipzooppp/orders/internal/interfaces"
)

// OrderHandler runs the checkout workflow against the session cart.
type OrderHandler struct {
	service interfaces.CheckoutService
	cart    *domain.Cart
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.CheckoutService, cart *domain.Cart, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		cart:    cart,
		logger:  logger,
	}
}

type CheckoutRequest struct {
	CustomerName string `json:"customer_name"`
	MobileNumber string `json:"mobile_number"`
}

type OrderItemResponse struct {
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type OrderResponse struct {
	Timestamp    string              `json:"timestamp"`
	CustomerName string              `json:"customer_name"`
	MobileNumber string              `json:"mobile_number"`
	Items        []OrderItemResponse `json:"items"`
	TotalPrice   string              `json:"total_price"`
}

type CheckoutResponse struct {
	Order OrderResponse `json:"order"`
	Cart  CartResponse  `json:"cart"`
}

// Checkout handles POST /checkout.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	cmd := interfaces.CheckoutCommand{
		CustomerName: strings.TrimSpace(req.CustomerName),
		MobileNumber: strings.TrimSpace(req.MobileNumber),
	}

	record, err := h.service.Checkout(r.Context(), h.cart, cmd)
	if err != nil {
		h.logger.Error("checkout_failed", "Failed to place order", "", nil, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponse{
		Order: orderResponse(*record),
		Cart:  cartResponse(h.cart),
	})
}

func orderResponse(record domain.OrderRecord) OrderResponse {
	items := make([]OrderItemResponse, 0, len(record.Items))
	for _, item := range record.Items {
		items = append(items, OrderItemResponse{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			LineTotal: item.LineTotal.StringFixed(2),
		})
	}

	return OrderResponse{
		Timestamp:    record.CreatedAt.Format("2006-01-02 15:04:05"),
		CustomerName: record.CustomerName,
		MobileNumber: record.MobileNumber,
		Items:        items,
		TotalPrice:   record.TotalPrice.StringFixed(2),
	}
}
