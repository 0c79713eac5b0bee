package panzoom

import (
	"slices"
	"time"
)

// NotificationType identifies a kind of engine notification.
type NotificationType uint8

const (
	NotifyTransform  NotificationType = iota // a target's transform changed
	NotifyActivation                         // a target crossed the active/inactive boundary
)

// TransformEvent carries engine notifications for callbacks and the optional
// EventStore bridge.
type TransformEvent struct {
	Type      NotificationType
	Target    string
	Transform Transform
	Active    bool
	// Transition is non-zero when the change should be animated.
	Transition time.Duration
}

// EventStore is the interface for optional ECS integration.
// When set on an Engine, notifications are forwarded to the store.
type EventStore interface {
	EmitEvent(event TransformEvent)
}

// --- Handler registry ---

type activationHandler struct {
	id uint32
	fn func(target *Target, active bool)
}

type transformHandler struct {
	id uint32
	fn func(TransformEvent)
}

type handlerRegistry struct {
	activation []activationHandler
	transform  []transformHandler
	nextID     uint32
}

// CallbackHandle allows removing a registered engine callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind NotificationType
}

// Remove unregisters this callback so it no longer fires. It is safe to call
// from inside a callback; handlers already being dispatched still run.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case NotifyActivation:
		for i := range h.reg.activation {
			if h.reg.activation[i].id == h.id {
				h.reg.activation = slices.Concat(h.reg.activation[:i], h.reg.activation[i+1:])
				return
			}
		}
	case NotifyTransform:
		for i := range h.reg.transform {
			if h.reg.transform[i].id == h.id {
				h.reg.transform = slices.Concat(h.reg.transform[:i], h.reg.transform[i+1:])
				return
			}
		}
	}
}

// OnActivationChange registers a callback fired whenever a target crosses
// the active/inactive boundary.
func (e *Engine) OnActivationChange(fn func(target *Target, active bool)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.activation = append(e.handlers.activation, activationHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: NotifyActivation}
}

// OnTransform registers a callback fired after every applied transform.
func (e *Engine) OnTransform(fn func(TransformEvent)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.transform = append(e.handlers.transform, transformHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: NotifyTransform}
}

// SetEventStore sets the optional ECS bridge.
func (e *Engine) SetEventStore(store EventStore) {
	e.store = store
}

func (e *Engine) fireTransform(t *Target, transition time.Duration) {
	ev := TransformEvent{
		Type:       NotifyTransform,
		Target:     t.id,
		Transform:  t.transform,
		Active:     t.active,
		Transition: transition,
	}
	for _, h := range e.handlers.transform {
		h.fn(ev)
	}
	if e.store != nil {
		e.store.EmitEvent(ev)
	}
}

func (e *Engine) fireActivation(t *Target) {
	for _, h := range e.handlers.activation {
		h.fn(t, t.active)
	}
	if e.store != nil {
		e.store.EmitEvent(TransformEvent{
			Type:      NotifyActivation,
			Target:    t.id,
			Transform: t.transform,
			Active:    t.active,
		})
	}
}
