// Package events holds the concrete event payloads.
package events

import (
	"encoding/json"
	"time"

	"github.com/abryzgalov/motostore/pkg/messaging"
	"github.com/google/uuid"
)

// PurchaseCompletedEvent is published after every successful purchase.
type PurchaseCompletedEvent struct {
	ReceiptID  uuid.UUID `json:"receipt_id"`
	Bike       string    `json:"bike"`
	Category   string    `json:"category"`
	Total      int64     `json:"total"`
	PrepTime   float64   `json:"prep_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (p PurchaseCompletedEvent) Subject() string {
	return messaging.PurchasesCompletedSubject
}

func (p PurchaseCompletedEvent) Payload() ([]byte, error) {
	return json.Marshal(p)
}
