package port

import "time"

// Metrics records pipeline counters.
type Metrics interface {
	ActionDispatched(domain, kind string, took time.Duration)
	ActionThrottled(key string)
	SideEffectFailed(operation string)
}
