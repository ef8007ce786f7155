package tracer

import "github.com/planartrace/tracer/source"

// tracerListener implements source.MutationListener on behalf of one
// subscribed layer. Every mutation signal discards the cached graph
// (spec.md §4.5's invalidation list); OnDestroyed additionally removes
// its layer from the configured list, per the same section's final
// bullet. Delivery is synchronous on the caller's thread (spec.md §5),
// so every handler takes t.mu itself rather than assuming it is held.
type tracerListener struct {
	t     *Tracer
	layer source.Layer
}

func (l *tracerListener) OnFeatureAdded(source.Feature)          { l.t.invalidate() }
func (l *tracerListener) OnFeatureDeleted(source.Feature)        { l.t.invalidate() }
func (l *tracerListener) OnGeometryChanged(source.Feature)       { l.t.invalidate() }
func (l *tracerListener) OnAttributeValueChanged(source.Feature) { l.t.invalidate() }
func (l *tracerListener) OnDataChanged()                         { l.t.invalidate() }
func (l *tracerListener) OnStyleChanged()                        { l.t.invalidate() }

// OnDestroyed removes this listener's layer from the Tracer's
// configured list, unsubscribes it, and invalidates the cached graph.
func (l *tracerListener) OnDestroyed() {
	l.t.mu.Lock()
	defer l.t.mu.Unlock()

	if unsubscribe, ok := l.t.listeners[l.layer]; ok {
		unsubscribe()
		delete(l.t.listeners, l.layer)
	}

	remaining := l.t.cfg.layers[:0]
	for _, layer := range l.t.cfg.layers {
		if layer != l.layer {
			remaining = append(remaining, layer)
		}
	}
	l.t.cfg.layers = remaining

	l.t.invalidateLocked()
}

// invalidate discards the cached graph under lock.
func (t *Tracer) invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.invalidateLocked()
}
