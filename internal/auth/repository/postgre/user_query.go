package postgre

import (
	"fmt"
	"strings"

	repo "timeblock/internal/auth/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneUser.
// All non-empty fields are applied as AND conditions. Without any filter
// nothing matches.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.GoogleID != "" {
		conditions = append(conditions, fmt.Sprintf("google_id = $%d", idx))
		args = append(args, opt.GoogleID)
		idx++
	}

	if len(conditions) == 0 {
		return "FALSE", args
	}
	return strings.Join(conditions, " AND "), args
}
