package catalog

import "sync"

// View is the pagination state a browse or admin listing sits on: the
// current filter parameters plus the current page. Changing any filter
// resets to page 1; a page change outside [1, totalPages] is a no-op.
type View struct {
	store *Store

	mu     sync.Mutex
	params Params
}

func NewView(store *Store) *View {
	return &View{
		store:  store,
		params: Params{Page: 1, PageSize: DefaultPageSize},
	}
}

func (v *View) SetQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.params.Query != query {
		v.params.Query = query
		v.params.Page = 1
	}
}

func (v *View) SetBrand(brand string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.params.Brand != brand {
		v.params.Brand = brand
		v.params.Page = 1
	}
}

func (v *View) SetSort(s Sort) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.params.Sort != s {
		v.params.Sort = s
		v.params.Page = 1
	}
}

// SetPage moves to page n when it lies within the current result's page
// range and does nothing otherwise.
func (v *View) SetPage(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	res := Apply(v.store.Items(), v.params)
	if n >= 1 && n <= res.TotalPages {
		v.params.Page = n
	}
}

// ClampPage pulls the current page back into range after the result set
// shrank, e.g. when the only item on the last page was deleted.
func (v *View) ClampPage() {
	v.mu.Lock()
	defer v.mu.Unlock()

	res := Apply(v.store.Items(), v.params)
	if res.TotalPages > 0 && v.params.Page > res.TotalPages {
		v.params.Page = res.TotalPages
	}
}

// Page computes the visible page for the current parameters.
func (v *View) Page() (Result, Params) {
	v.mu.Lock()
	params := v.params
	v.mu.Unlock()

	return Apply(v.store.Items(), params), params
}
