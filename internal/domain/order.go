package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is one purchased item within an order. The JSON keys match the
// persisted "Items Ordered" column.
type OrderLine struct {
	Product   string          `json:"Item"`
	Quantity  int             `json:"Quantity"`
	UnitPrice decimal.Decimal `json:"Price"`
	LineTotal decimal.Decimal `json:"Line Total"`
}

// OrderRecord is a placed order. Once created it is never mutated; the order
// log only ever appends.
type OrderRecord struct {
	CreatedAt    time.Time
	CustomerName string
	MobileNumber string
	Items        []OrderLine
	TotalPrice   decimal.Decimal
}

var mobileNumberRegex = regexp.MustCompile(`^[0-9]{10}$`)

// NewOrderRecord builds an order from a cart snapshot with business rules
// applied. The items slice is deep-copied so the record never aliases live
// cart state.
func NewOrderRecord(customerName, mobileNumber string, items []OrderLine, createdAt time.Time) (*OrderRecord, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrMissingName
	}
	if !mobileNumberRegex.MatchString(mobileNumber) {
		return nil, ErrInvalidMobile
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}
	if !total.IsPositive() {
		return nil, ErrEmptyCart
	}

	record := &OrderRecord{
		CreatedAt:    createdAt,
		CustomerName: customerName,
		MobileNumber: mobileNumber,
		Items:        make([]OrderLine, len(items)),
		TotalPrice:   total,
	}
	copy(record.Items, items)

	return record, nil
}

// TotalItems is the number of units across all lines.
func (r *OrderRecord) TotalItems() int {
	n := 0
	for _, item := range r.Items {
		n += item.Quantity
	}
	return n
}
