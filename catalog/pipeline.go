package catalog

import (
	"sort"
	"strings"

	"endlessvault/models"
)

// DefaultPageSize matches the ten-per-page grid of the storefront.
const DefaultPageSize = 10

// pageButtons is how many page buttons the pagination strip shows at most.
const pageButtons = 5

type Sort int

const (
	SortNone Sort = iota
	SortLowToHigh
	SortHighToLow
)

// ParseSort maps the query-string values to a Sort. Unknown values mean
// no sorting.
func ParseSort(s string) Sort {
	switch s {
	case "low-to-high":
		return SortLowToHigh
	case "high-to-low":
		return SortHighToLow
	default:
		return SortNone
	}
}

// Params narrows, orders and pages a catalog list. Query and Brand are
// conjunctive; Sort applies after filtering; pagination applies last.
type Params struct {
	Query    string
	Brand    string
	Sort     Sort
	Page     int
	PageSize int
}

type Result struct {
	Items        []models.CatalogItem
	TotalMatches int
	TotalPages   int
}

// Apply runs the filter/sort/paginate pipeline. It is pure: the input
// slice is never mutated.
func Apply(items []models.CatalogItem, p Params) Result {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.Page < 1 {
		p.Page = 1
	}

	filtered := make([]models.CatalogItem, 0, len(items))
	query := strings.ToLower(strings.TrimSpace(p.Query))
	brand := strings.ToLower(strings.TrimSpace(p.Brand))

	for _, item := range items {
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		if brand != "" && strings.ToLower(item.Brand) != brand {
			continue
		}
		filtered = append(filtered, item)
	}

	switch p.Sort {
	case SortLowToHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].MRP < filtered[j].MRP
		})
	case SortHighToLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].MRP > filtered[j].MRP
		})
	}

	totalPages := (len(filtered) + p.PageSize - 1) / p.PageSize

	start := (p.Page - 1) * p.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + p.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result{
		Items:        filtered[start:end],
		TotalMatches: len(filtered),
		TotalPages:   totalPages,
	}
}

// matchesQuery reports whether any of brand, name, series or uniqueId
// contains the lowercased query.
func matchesQuery(item models.CatalogItem, query string) bool {
	for _, field := range []string{item.Brand, item.Name, item.Series, item.UniqueID} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// PageRange returns up to five page numbers centered on current, shifted
// to stay full width near either edge of the valid range.
func PageRange(current, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}

	start := current - pageButtons/2
	if start < 1 {
		start = 1
	}
	end := start + pageButtons - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start+1 < pageButtons {
		start = end - pageButtons + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
