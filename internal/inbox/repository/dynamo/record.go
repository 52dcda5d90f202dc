package dynamo

import (
	"time"

	"timeblock/internal/inbox"
)

// itemRecord is the stored shape of an inbox Item. Timestamps are Unix
// milliseconds so filters can compare them as numbers.
type itemRecord struct {
	UserID          string `dynamodbav:"user_id"`
	ID              string `dynamodbav:"id"`
	Title           string `dynamodbav:"title"`
	Description     string `dynamodbav:"description"`
	DurationMinutes int    `dynamodbav:"duration_minutes"`
	Done            bool   `dynamodbav:"done"`
	CreatedAt       int64  `dynamodbav:"created_at"`
	UpdatedAt       int64  `dynamodbav:"updated_at"`
}

func (rec itemRecord) toItem() inbox.Item {
	return inbox.Item{
		UserID:          rec.UserID,
		ID:              rec.ID,
		Title:           rec.Title,
		Description:     rec.Description,
		DurationMinutes: rec.DurationMinutes,
		Done:            rec.Done,
		CreatedAt:       time.UnixMilli(rec.CreatedAt).UTC(),
		UpdatedAt:       time.UnixMilli(rec.UpdatedAt).UTC(),
	}
}
