package usecase

import (
	"context"

	"timeblock/internal/maintenance"
)

// ResyncCalendar creates calendar events for one batch of unsynced schedules.
// A failing schedule is counted and left for the next run.
func (uc *implUseCase) ResyncCalendar(ctx context.Context) (maintenance.ResyncOutput, error) {
	if uc.calendar == nil {
		uc.l.Debugf(ctx, "uc.ResyncCalendar: calendar not configured, skipping")
		return maintenance.ResyncOutput{}, nil
	}

	pending, err := uc.schedules.ListUnsynced(ctx, uc.batchSize)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ResyncCalendar schedules.ListUnsynced: %v", err)
		return maintenance.ResyncOutput{}, err
	}

	var out maintenance.ResyncOutput
	for _, s := range pending {
		event, err := uc.calendar.CreateEvent(ctx, s.EventRequest(uc.calendarID))
		if err != nil {
			uc.l.Warnf(ctx, "uc.ResyncCalendar calendar.CreateEvent %s: %v", s.ID, err)
			out.Failed++
			continue
		}
		if err := uc.schedules.MarkSynced(ctx, s.ID, event.ID); err != nil {
			uc.l.Warnf(ctx, "uc.ResyncCalendar schedules.MarkSynced %s: %v", s.ID, err)
			out.Failed++
			continue
		}
		out.Synced++
	}

	if len(pending) > 0 {
		uc.l.Infof(ctx, "uc.ResyncCalendar: synced %d, failed %d", out.Synced, out.Failed)
	}
	return out, nil
}
