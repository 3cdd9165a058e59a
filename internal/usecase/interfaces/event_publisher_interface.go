package interfaces

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/mock_event_publisher.go -package=mock_interfaces

import (
	"context"

	"salesops/internal/domain/entities"
)

// IEventPublisher fans committed mutations out to connected observers.
// Publish must not block and never reports failure to the caller.
type IEventPublisher interface {
	Publish(ctx context.Context, e entities.Event)
}
