package usecase

import (
	"context"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
	"timeblock/pkg/datemath"
	"timeblock/pkg/timegrid"
)

// Week lays out the Monday..Sunday week containing input.Date as seven day
// columns in the viewer's timezone.
func (uc *implUseCase) Week(ctx context.Context, sc model.Scope, input schedule.WeekInput) (schedule.WeekOutput, error) {
	loc, tz, err := uc.resolveLocation(input.Timezone)
	if err != nil {
		return schedule.WeekOutput{}, err
	}

	parser := datemath.NewParserInLocation(loc)
	anchor, err := parser.Parse(input.Date, uc.now())
	if err != nil {
		return schedule.WeekOutput{}, schedule.ErrInvalidDate
	}
	week := parser.Week(anchor)

	list, err := uc.List(ctx, sc, schedule.ListInput{From: week.Start, To: week.End})
	if err != nil {
		return schedule.WeekOutput{}, err
	}

	days := week.Days()
	columns := make([]schedule.DayColumn, 0, len(days))
	for _, day := range days {
		col := schedule.DayColumn{Date: day, Cells: []schedule.Cell{}}
		for _, occ := range list.Occurrences {
			cell, ok := timegrid.Position(occ.StartAt, occ.EndAt.Sub(occ.StartAt), day)
			if !ok {
				continue
			}
			occ.StartAt = occ.StartAt.In(loc)
			occ.EndAt = occ.EndAt.In(loc)
			col.Cells = append(col.Cells, schedule.Cell{
				Occurrence:    occ,
				TopPercent:    cell.TopPercent,
				HeightPercent: cell.HeightPercent,
			})
		}
		columns = append(columns, col)
	}

	return schedule.WeekOutput{
		Start:      week.Start,
		End:        week.End,
		Timezone:   tz,
		HourGuides: timegrid.HourGuides(),
		Days:       columns,
		Truncated:  list.Truncated,
	}, nil
}
