package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Prompt is a managed prompt record with its business metadata.
// ID and CreatedAt are assigned by the datastore on insert.
type Prompt struct {
	ID            string          `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Prompt        string          `json:"prompt" db:"prompt"`
	LocationID    *string         `json:"location_id" db:"location_id"`
	BusinessName  *string         `json:"business_name" db:"business_name"`
	Knowledgebase *string         `json:"knowledgebase" db:"knowledgebase"`
	Inventory     json.RawMessage `json:"inventory" db:"inventory"` // Opaque JSONB: string, object, array...
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// HasInventory reports whether the inventory holds a non-null JSON value.
func (p *Prompt) HasInventory() bool {
	return IsJSONPresent(p.Inventory)
}

// IsJSONPresent reports whether raw holds a JSON value other than null.
func IsJSONPresent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
