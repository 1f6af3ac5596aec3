package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	UUID      uuid.UUID
	Email     string `validate:"required,max=255"`
	CreatedAt time.Time
	Tasks     []Task
}

// Profile is the restricted view of a user handed out by the detail
// endpoint. Name parts are derived from the email local part.
type Profile struct {
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}

func (u *User) Profile() Profile {
	local := u.Email

	if at := strings.Index(local, "@"); at >= 0 {
		local = local[:at]
	}

	first, last := local, ""

	if dot := strings.Index(local, "."); dot >= 0 {
		first, last = local[:dot], local[dot+1:]
	}

	return Profile{
		FirstName: first,
		LastName:  last,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
