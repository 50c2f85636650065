package domain

import "time"

// Session is a login audit entry. One row is appended per successful login
// and never mutated afterwards.
type Session struct {
	ID        int64
	UserID    int64
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time
}
