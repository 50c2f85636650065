package dto

import (
	"time"

	dom "Dashboard/internal/domain"
)

// SessionResponse is one login audit entry.
type SessionResponse struct {
	ID        int64     `json:"id"`
	IPAddress *string   `json:"ipAddress"`
	UserAgent *string   `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListSessionsResponse is returned by GET /user/sessions.
type ListSessionsResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// SessionToResponse maps a domain session to its wire view.
func SessionToResponse(s dom.Session) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		IPAddress: s.IPAddress,
		UserAgent: s.UserAgent,
		CreatedAt: s.CreatedAt,
	}
}

// SessionsToResponses maps a list of sessions, keeping order.
func SessionsToResponses(list []dom.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, SessionToResponse(s))
	}
	return out
}
