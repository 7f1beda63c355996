package models

import "time"

// Catalog event names, also used as AMQP routing keys.
const (
	EventDateTypeCreated = "date_type.created"
	EventDateTypeUpdated = "date_type.updated"
	EventDateTypeDeleted = "date_type.deleted"
)

// CatalogEvent is published after every successful catalog mutation.
type CatalogEvent struct {
	ID         uint      `json:"id"`
	Event      string    `json:"event"`
	NameEn     string    `json:"name_en,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
