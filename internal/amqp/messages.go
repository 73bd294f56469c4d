package amqp

import (
	"encoding/json"
	"time"
)

// Actions carried by order change events.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
	ActionCleared = "cleared"
)

// OrderEventMessage announces that the persisted collection changed. It is
// intentionally small: consumers re-read the blob rather than trusting a
// possibly-stale payload.
type OrderEventMessage struct {
	Action    string    `json:"action"`
	OrderID   string    `json:"order_id,omitempty"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

func NewOrderEventMessage(action, orderID string, count int) *OrderEventMessage {
	return &OrderEventMessage{
		Action:    action,
		OrderID:   orderID,
		Count:     count,
		Timestamp: time.Now(),
	}
}

func (m *OrderEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func OrderEventMessageFromJSON(data []byte) (*OrderEventMessage, error) {
	var msg OrderEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
