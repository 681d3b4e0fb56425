package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sipzooppp/orders/internal/domain"
)

type CartLineResponse struct {
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// CartResponse is the fresh cart snapshot returned after every mutation, so
// the caller re-renders from the reply instead of re-reading state.
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total string             `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func cartResponse(cart *domain.Cart) CartResponse {
	resp := CartResponse{
		Items: []CartLineResponse{},
		Total: cart.Total().StringFixed(2),
	}
	for _, line := range cart.Lines() {
		resp.Items = append(resp.Items, CartLineResponse{
			Product:   line.Product,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
			LineTotal: line.LineTotal.StringFixed(2),
		})
	}
	return resp
}

func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusForError(err), ErrorResponse{Error: err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidProduct),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrMissingName),
		errors.Is(err, domain.ErrInvalidMobile),
		errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
