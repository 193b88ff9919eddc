package model

// Cart is the session-scoped working set of a not-yet-committed purchase.
// It lives in the session bag as a JSON value, never in the durable store,
// and is discarded on successful checkout or session expiry.
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartItem snapshots a product at add-time. UnitPrice is fixed when the item
// enters the cart; at most one item exists per distinct ProductID.
type CartItem struct {
	ProductID  uint     `json:"product_id"`
	Name       string   `json:"name"`
	UnitPrice  int64    `json:"unit_price"` // minor currency unit
	Quantity   int      `json:"quantity"`
	ExtraCodes []string `json:"extra_codes,omitempty"`
}

// Find returns the item for productID, or nil.
func (c *Cart) Find(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Remove drops the item for productID if present. Removing an absent
// product leaves the cart unchanged.
func (c *Cart) Remove(productID uint) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total is the sum of unit price times quantity over all items.
// Extra surcharges do not contribute to the total.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
