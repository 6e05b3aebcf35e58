package record

import (
	"strings"
)

// Order is a [Key] with a direction.
type Order struct {
	Key        Key
	Descending bool
}

// Compare compares a and b by o.Key, inverting the result for descending
// orders.
func (o Order) Compare(a, b Record) int {
	c := o.Key.Compare(a, b)
	if o.Descending {
		return -c
	}

	return c
}

func (o Order) String() string {
	if o.Descending {
		return o.Key.String() + "-"
	}

	return o.Key.String()
}

// ParseOrders parses a comma separated list of keys. A key may carry a "-"
// suffix for descending order or a "+" suffix for ascending order, e.g.
// "genre,year-". Empty entries are skipped. An empty string yields a single
// ascending title order.
func ParseOrders(s string) ([]Order, error) {
	var orders []Order

	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		desc := false
		if strings.HasSuffix(field, "-") {
			desc = true
			field = field[:len(field)-1]
		} else if strings.HasSuffix(field, "+") {
			field = field[:len(field)-1]
		}

		key, err := ParseKey(field)
		if err != nil {
			return nil, err
		}

		orders = append(orders, Order{Key: key, Descending: desc})
	}

	if len(orders) == 0 {
		orders = []Order{{Key: KeyTitle}}
	}

	return orders, nil
}

// FormatOrders is the inverse of [ParseOrders].
func FormatOrders(orders []Order) string {
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		parts = append(parts, o.String())
	}

	return strings.Join(parts, ",")
}
