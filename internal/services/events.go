package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// EventsExchange is the exchange lifecycle events are published to.
const EventsExchange = "catalog"

// Routing keys of the lifecycle events.
const (
	EventProductCreated       = "product.created"
	EventProductUpdated       = "product.updated"
	EventProductDeleted       = "product.deleted"
	EventCategoryCreated      = "category.created"
	EventCategoryUpdated      = "category.updated"
	EventCategoryDeleted      = "category.deleted"
	EventEnquiryCreated       = "enquiry.created"
	EventEnquiryStatusUpdated = "enquiry.status_updated"
	EventEnquiryDeleted       = "enquiry.deleted"
)

// EventPublisher sends a message to a broker exchange.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// Event is the JSON body of every lifecycle message.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	ResourceID int64       `json:"resourceId"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data,omitempty"`
}

// emitter publishes events after the write they describe. Publish failures
// are logged and never returned.
type emitter struct {
	publisher EventPublisher
}

func (e emitter) emit(eventType string, resourceID int64, data interface{}) {
	if e.publisher == nil {
		return
	}

	body, err := json.Marshal(Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for %d: %v", eventType, resourceID, err)
		return
	}

	if err := e.publisher.Publish(EventsExchange, eventType, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for %d: %v", eventType, resourceID, err)
	}
}
