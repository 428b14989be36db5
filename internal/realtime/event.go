package realtime

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreated  Action = "created"
	ActionUpdated  Action = "updated"
	ActionDeleted  Action = "deleted"
	ActionRestored Action = "restored"
)

// CatalogEvent announces a committed change to one catalog row.
type CatalogEvent struct {
	Resource string    `json:"resource"`
	Action   Action    `json:"action"`
	ID       uuid.UUID `json:"id"`
	At       time.Time `json:"at"`
}

func NewCatalogEvent(resource string, action Action, id uuid.UUID) CatalogEvent {
	return CatalogEvent{Resource: resource, Action: action, ID: id, At: time.Now().UTC()}
}
