package interfaces

import "context"

// INotificationDispatcher is invoked after a successful commit. It is
// best-effort: a dispatch failure is logged by the caller and never
// downgrades a committed transition.
type INotificationDispatcher interface {
	Dispatch(ctx context.Context, entityType, entityID, newState string) error
}
