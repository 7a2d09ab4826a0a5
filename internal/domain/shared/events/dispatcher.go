package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Dispatcher delivers events to subscribed handlers on the caller's goroutine.
// Every handler runs even if an earlier one fails; failures are joined.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]EventHandler)}
}

// Subscribe registers handler for eventType.
func (d *Dispatcher) Subscribe(eventType string, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

func (d *Dispatcher) PublishAll(ctx context.Context, events []DomainEvent) error {
	var errs []error
	for _, event := range events {
		d.mu.RLock()
		handlers := d.handlers[event.GetEventType()]
		d.mu.RUnlock()

		for _, h := range handlers {
			if err := h.Handle(ctx, event); err != nil {
				errs = append(errs, fmt.Errorf("%s handler: %w", event.GetEventType(), err))
			}
		}
	}
	return errors.Join(errs...)
}
