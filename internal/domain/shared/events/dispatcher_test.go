package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_PublishAll(t *testing.T) {
	d := NewDispatcher()

	var seen []string
	d.Subscribe("ticket.status_changed", EventHandlerFunc(func(_ context.Context, e DomainEvent) error {
		seen = append(seen, fmt.Sprintf("first:%d", e.GetAggregateID()))
		return fmt.Errorf("smtp down")
	}))
	d.Subscribe("ticket.status_changed", EventHandlerFunc(func(_ context.Context, e DomainEvent) error {
		seen = append(seen, fmt.Sprintf("second:%d", e.GetAggregateID()))
		return nil
	}))

	err := d.PublishAll(context.Background(), []DomainEvent{
		BaseEvent{AggregateID: 7, EventType: "ticket.status_changed", OccurredAt: time.Now()},
		BaseEvent{AggregateID: 8, EventType: "ticket.unrelated", OccurredAt: time.Now()},
	})

	assert.ErrorContains(t, err, "smtp down")
	assert.Equal(t, []string{"first:7", "second:7"}, seen)
}

func TestDispatcher_NoHandlers(t *testing.T) {
	assert.NoError(t, NewDispatcher().PublishAll(context.Background(), []DomainEvent{BaseEvent{EventType: "x"}}))
}
