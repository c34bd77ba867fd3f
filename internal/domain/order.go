package domain

import "encoding/json"

// Order is the order document published by the storefront checkout flow.
// The alert dispatcher consumes OrderUID, TotalPrice and the shipping display
// name; the remaining sections are carried through as-is.
type Order struct {
	OrderUID    string          `json:"order_uid"`
	TotalPrice  float64         `json:"total_price"`
	Shipping    ShippingInfo    `json:"shipping"`
	Items       json.RawMessage `json:"items"`
	Payment     json.RawMessage `json:"payment"`
	CustomerID  string          `json:"customer_id"`
	DateCreated string          `json:"date_created"`
}

type ShippingInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

// ShortID returns the first eight characters of the order id, used in the
// alert body shown to the administrator.
func (o Order) ShortID() string {
	if len(o.OrderUID) <= 8 {
		return o.OrderUID
	}
	return o.OrderUID[:8]
}
