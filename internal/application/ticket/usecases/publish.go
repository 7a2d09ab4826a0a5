package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/domain/shared/events"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// publishAfterCommit hands events to subscribers once the data they describe
// is durable. Subscriber failures never fail the request.
func publishAfterCommit(ctx context.Context, publisher events.EventPublisher, log logger.Interface, evts ...events.DomainEvent) {
	if publisher == nil || len(evts) == 0 {
		return
	}
	if err := publisher.PublishAll(ctx, evts); err != nil {
		log.Warnw("event handlers failed", "error", err)
	}
}
