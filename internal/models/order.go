package models

import (
	"fmt"
	"sort"
	"time"
)

// Date layouts used across the backend API and the UI.
const (
	DateTimeLayout    = "2006-01-02T15:04:05"
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "02/01/2006"
)

// Order is a transaction record linked to exactly one customer. Dates
// travel as strings because the backend accepts and returns them that
// way; an empty shipped date means the order has not shipped yet.
type Order struct {
	OrderID     int    `json:"orderId,omitempty" form:"-"`
	CustomerID  int    `json:"customerId" form:"customerId"`
	OrderDate   string `json:"orderDate" form:"orderDate"`
	ShippedDate string `json:"shippedDate,omitempty" form:"shippedDate"`
}

// Shipped reports whether the order carries a shipped date.
func (o Order) Shipped() bool {
	return o.ShippedDate != ""
}

// ParseDate parses a stored date value, accepting the backend's full
// timestamp form as well as day-granularity and RFC3339 values.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range []string{DateTimeLayout, time.RFC3339, DateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", value)
}

// FormatDate renders a stored date for display in day/month/year form.
// An absent value renders as "Pending", an unparsable one as "Invalid date".
func FormatDate(value string) string {
	if value == "" {
		return "Pending"
	}
	t, err := ParseDate(value)
	if err != nil {
		return "Invalid date"
	}
	return t.Format(DisplayDateLayout)
}

// SortByShippedDateDesc sorts most recently shipped first. Orders that
// have not shipped sort after every shipped order regardless of their
// order date.
func SortByShippedDateDesc(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if !a.Shipped() {
			return false
		}
		if !b.Shipped() {
			return true
		}
		at, erra := ParseDate(a.ShippedDate)
		bt, errb := ParseDate(b.ShippedDate)
		if erra != nil {
			return false
		}
		if errb != nil {
			return true
		}
		return at.After(bt)
	})
}
