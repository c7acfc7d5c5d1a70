package ws

import (
	"context"
	"encoding/json"
	"time"

	"skill-manager/internal/usecase"
)

type ChangeEvent struct {
	Type      string `json:"type"`
	Entity    string `json:"entity"`
	Action    string `json:"action"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
}

// Changed broadcasts c to every connected client. Delivery is best effort
// and never fails the mutation.
func (h *Hub) Changed(_ context.Context, c usecase.Change) error {
	if h == nil {
		return nil
	}
	at := c.At
	if at.IsZero() {
		at = time.Now()
	}
	b, err := json.Marshal(ChangeEvent{
		Type:      "store_changed",
		Entity:    c.Entity,
		Action:    c.Action,
		ID:        c.ID,
		Timestamp: at.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil
	}
	h.Broadcast(b)
	return nil
}
