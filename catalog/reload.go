package catalog

import "sync"

// ReloadSignal tells interested parties that the catalog changed in the
// document store. Subscribers run synchronously on Notify, so a write
// followed by a read through the store sees fresh data.
type ReloadSignal struct {
	mu   sync.Mutex
	subs []func()
}

func NewReloadSignal() *ReloadSignal {
	return &ReloadSignal{}
}

func (r *ReloadSignal) Subscribe(fn func()) {
	r.mu.Lock()
	r.subs = append(r.subs, fn)
	r.mu.Unlock()
}

func (r *ReloadSignal) Notify() {
	r.mu.Lock()
	subs := make([]func(), len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
