package mq

import (
	"context"
	"encoding/json"
	"log"

	"bakehouse/models"
	"bakehouse/rdx"
)

const eventChannel = "bakery-events"

// Emit publishes a domain event to Redis. Failures are logged and
// dropped; events are advisory, never part of a request's outcome.
func Emit(eventName string, content models.Event) {
	content.Kind = eventName

	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), eventChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// StartEventWorker consumes the event channel and logs each event.
// The kitchen display and mail sender subscribe to the same channel.
func StartEventWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventChannel)
	ch := sub.Channel()

	log.Println("[EventWorker] Listening for bakery events...")

	for msg := range ch {
		var event models.Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[EventWorker] Failed to parse event: %v", err)
			continue
		}
		log.Printf("[EventWorker] %s entity=%s user=%s", event.Kind, event.EntityID, event.UserID)
	}
}
