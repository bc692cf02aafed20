// Package manager turns published state into host callbacks. Each manager compares the
// slice it watches with the value it last reported, so a reducer pass that changes
// nothing never notifies twice.
package manager

import (
	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/Wyydra/callstate/internal/core/store"
)

// Observer receives every published state in order.
type Observer interface {
	Observe(s state.AppState)
}

// Attach subscribes every observer to st.
func Attach(st *store.Store, observers ...Observer) []*store.Subscription {
	subs := make([]*store.Subscription, 0, len(observers))
	for _, o := range observers {
		subs = append(subs, st.Subscribe(o.Observe))
	}
	return subs
}
