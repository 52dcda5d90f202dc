package usecase

import (
	"context"
	"sort"
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
	repo "timeblock/internal/schedule/repository"
	"timeblock/pkg/recurrence"
)

// List returns every occurrence overlapping [From, To), recurring schedules
// expanded, sorted by start.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input schedule.ListInput) (schedule.ListOutput, error) {
	if err := uc.validateRange(input.From, input.To); err != nil {
		return schedule.ListOutput{}, err
	}

	schedules, err := uc.repo.ListSchedules(ctx, repo.ListSchedulesOptions{
		UserID: sc.UserID,
		From:   input.From,
		To:     input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListSchedules: %v", err)
		return schedule.ListOutput{}, err
	}

	occurrences, truncated := uc.expand(ctx, schedules, input.From, input.To)
	return schedule.ListOutput{Occurrences: occurrences, Truncated: truncated}, nil
}

func (uc *implUseCase) expand(ctx context.Context, schedules []schedule.Schedule, from, to time.Time) ([]schedule.Occurrence, bool) {
	var (
		out       []schedule.Occurrence
		truncated bool
	)

	for _, s := range schedules {
		d := s.Duration()
		if s.Recurrence == "" {
			if s.StartAt.Before(to) && s.StartAt.Add(d).After(from) {
				out = append(out, schedule.Occurrence{Schedule: s, StartAt: s.StartAt, EndAt: s.StartAt.Add(d)})
			}
			continue
		}

		starts, cut, err := recurrence.Expand(s.Recurrence, s.StartAt.In(uc.scheduleLocation(s)), d, from, to, recurrence.DefaultMaxOccurrences)
		if err != nil {
			uc.l.Warnf(ctx, "uc.expand %s: %v", s.ID, err)
			continue
		}
		truncated = truncated || cut
		for _, start := range starts {
			out = append(out, schedule.Occurrence{Schedule: s, StartAt: start, EndAt: start.Add(d)})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartAt.Equal(out[j].StartAt) {
			return out[i].StartAt.Before(out[j].StartAt)
		}
		return out[i].Schedule.ID < out[j].Schedule.ID
	})

	return out, truncated
}
