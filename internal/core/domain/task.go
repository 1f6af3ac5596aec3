package domain

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	UUID      uuid.UUID
	Name      string `validate:"max=255"`
	UserUUID  uuid.UUID
	Priority  int `validate:"gt=0"`
	CreatedAt time.Time
}

func (t *Task) BelongsToUser(userUUID uuid.UUID) bool {
	return t.UserUUID == userUUID
}

func (t *Task) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":         t.UUID,
		"name":       t.Name,
		"user_id":    t.UserUUID,
		"priority":   t.Priority,
		"created_at": t.CreatedAt,
	}
}
