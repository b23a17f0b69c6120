package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-service/internal/cache"
	"github.com/spec-kit/staff-service/internal/events"
	"github.com/spec-kit/staff-service/internal/mq"
)

var staffEventTypes = []events.EventType{
	events.EventStaffCreated,
	events.EventStaffUpdated,
	events.EventStaffDeleted,
}

// StartStaffEventsWorker subscribes the cache invalidator and, when a
// broker is configured, the outbound event forwarder.
func StartStaffEventsWorker(dispatcher events.Dispatcher, staffCache *cache.StaffCache, publisher *mq.Publisher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	for _, eventType := range staffEventTypes {
		dispatcher.Subscribe(eventType, func(ctx context.Context, event events.Event) error {
			staffCache.Invalidate(ctx, event.StaffID)
			return nil
		})
	}

	if publisher == nil {
		return
	}
	for _, eventType := range staffEventTypes {
		dispatcher.Subscribe(eventType, func(ctx context.Context, event events.Event) error {
			if err := publisher.PublishJSON(ctx, "staff."+string(event.Type), event); err != nil {
				logger.Warn("publish staff event",
					zap.String("type", string(event.Type)),
					zap.Int("staff_id", event.StaffID),
					zap.Error(err))
				return err
			}
			return nil
		})
	}
}
