// Package outboxrepo stores order events in the outbox table until the relay
// has published them.
package outboxrepo

import (
	"encoding/json"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"

	"github.com/google/uuid"
)

type OutboxMessageDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	AggregateID uuid.UUID `gorm:"type:uuid;not null"`
	EventType   string    `gorm:"type:varchar(64);not null"`
	Payload     []byte    `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time `gorm:"not null"`
	PublishedAt *time.Time
}

func (OutboxMessageDTO) TableName() string {
	return "outbox"
}

// EventPayload is the JSON body published for every order event.
type EventPayload struct {
	EventID        string    `json:"eventId"`
	Type           string    `json:"type"`
	OrderID        string    `json:"orderId"`
	OwnerID        string    `json:"ownerId"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	ShippingStatus string    `json:"shippingStatus"`
	GrandTotal     string    `json:"grandTotal"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func fromEvent(e order.Event) (OutboxMessageDTO, error) {
	payload, err := json.Marshal(EventPayload{
		EventID:        e.ID().String(),
		Type:           string(e.Type()),
		OrderID:        e.OrderID().String(),
		OwnerID:        e.OwnerID().String(),
		Status:         e.Status().String(),
		PaymentStatus:  e.PaymentStatus().String(),
		ShippingStatus: e.ShippingStatus().String(),
		GrandTotal:     e.GrandTotal().String(),
		OccurredAt:     e.OccurredAt(),
	})
	if err != nil {
		return OutboxMessageDTO{}, err
	}

	return OutboxMessageDTO{
		EventID:     e.ID().Bytes(),
		AggregateID: e.OrderID().Bytes(),
		EventType:   string(e.Type()),
		Payload:     payload,
		OccurredAt:  e.OccurredAt(),
	}, nil
}

func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	eventID, err := kernel.UUIDFromBytes(dto.EventID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          dto.ID,
		EventID:     eventID,
		AggregateID: aggregateID,
		EventType:   dto.EventType,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt.UTC(),
	}, nil
}
