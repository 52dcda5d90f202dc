package usecase

import (
	"bytes"
	"context"
	"fmt"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
	repo "timeblock/internal/schedule/repository"
	"timeblock/pkg/icalendar"
)

const calendarName = "timeblock"

// Export renders the caller's schedules touching [From, To) as an iCalendar
// feed. Recurring schedules are exported as series with their RRULE.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input schedule.ExportInput) (schedule.ExportOutput, error) {
	if err := uc.validateRange(input.From, input.To); err != nil {
		return schedule.ExportOutput{}, err
	}

	schedules, err := uc.repo.ListSchedules(ctx, repo.ListSchedulesOptions{
		UserID: sc.UserID,
		From:   input.From,
		To:     input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export ListSchedules: %v", err)
		return schedule.ExportOutput{}, err
	}

	events := make([]icalendar.Event, 0, len(schedules))
	for _, s := range schedules {
		events = append(events, icalendar.Event{
			UID:         s.ID + "@" + calendarName,
			Summary:     s.Title,
			Description: s.Description,
			Color:       s.Color,
			Start:       s.StartAt,
			End:         s.StartAt.Add(s.Duration()),
			Created:     s.CreatedAt,
			Modified:    s.UpdatedAt,
			Recurrence:  s.Recurrence,
			Timezone:    s.Timezone,
		})
	}

	var buf bytes.Buffer
	if err := icalendar.Encode(&buf, calendarName, events, uc.now()); err != nil {
		uc.l.Errorf(ctx, "uc.Export Encode: %v", err)
		return schedule.ExportOutput{}, err
	}

	return schedule.ExportOutput{
		Filename: fmt.Sprintf("%s-%s.ics", calendarName, input.From.Format("20060102")),
		Body:     buf.Bytes(),
	}, nil
}
