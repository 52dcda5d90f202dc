package maintenance

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ResyncCalendar mirrors schedules that have no calendar event yet.
	ResyncCalendar(ctx context.Context) (ResyncOutput, error)
	// PurgeInbox removes done inbox items older than the retention.
	PurgeInbox(ctx context.Context) (PurgeOutput, error)
}
