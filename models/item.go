package models

import (
	"strconv"
	"time"
)

// CatalogItem is one diecast model in the catalog. MRP is the single
// canonical price field; anything non-numeric in the store decodes to 0.
type CatalogItem struct {
	ID        string    `json:"id"`
	UniqueID  string    `json:"uniqueId"`
	Brand     string    `json:"brand"`
	Name      string    `json:"name"`
	Series    string    `json:"series"`
	MRP       float64   `json:"mrp"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// CoercePrice normalizes a price value of unknown stored type. Older
// documents hold the price as a string taken straight from a form input.
func CoercePrice(v interface{}) float64 {
	switch p := v.(type) {
	case float64:
		return p
	case float32:
		return float64(p)
	case int:
		return float64(p)
	case int32:
		return float64(p)
	case int64:
		return float64(p)
	case string:
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
