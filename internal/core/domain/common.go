package domain

import "time"

// AuditFields holds creation metadata for append-only finance records.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // actor user id
}

// DateLayout is the ISO calendar date format used on every finance boundary.
const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MonthBounds returns the first and last calendar day of t's month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	y, m, _ := t.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}

// DateRangeFilter narrows list queries to an inclusive date window. Nil bounds are open.
type DateRangeFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}
