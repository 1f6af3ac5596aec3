package request

import "encoding/json"

type UserRequest struct {
	Email string `json:"email,omitempty" validate:"required,max=255"`
}

// TaskRequest accepts priority as a JSON number or a numeric string; the
// service coerces it.
type TaskRequest struct {
	Name     string      `json:"name,omitempty" validate:"max=255"`
	UserID   string      `json:"userId,omitempty"`
	Priority json.Number `json:"priority,omitempty"`
}
