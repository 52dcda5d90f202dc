package postgre

import (
	"fmt"
	"strings"

	repo "timeblock/internal/schedule/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneSchedule.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneScheduleOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT clause for ListSchedules.
func (r *implRepository) buildListQuery(opt repo.ListSchedulesOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	// Filters
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if !opt.To.IsZero() {
		conditions = append(conditions, fmt.Sprintf("start_at < $%d", idx))
		args = append(args, opt.To)
		idx++
	}
	if !opt.From.IsZero() {
		conditions = append(conditions, fmt.Sprintf(
			"(recurrence <> '' OR start_at + duration_minutes * INTERVAL '1 minute' > $%d)", idx))
		args = append(args, opt.From)
		idx++
	}
	if opt.Unsynced {
		conditions = append(conditions, "calendar_event_id = ''")
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "start_at ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	// Pagination
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}
