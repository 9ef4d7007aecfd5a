// Package events carries the task lifecycle pub/sub path: publishing
// mutations and reacting to completion notifications with the recurrence
// trigger.
package events

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tasksaathi/backend/config"
	"tasksaathi/backend/types"
)

// Publisher emits task lifecycle events. Delivery is fire-and-forget: a
// failed publish must never fail the task mutation that caused it.
type Publisher interface {
	Publish(event types.TaskLifecycleEvent)
}

// DaprPublisher publishes over the sidecar's plain HTTP API. No SDK on
// purpose - the wire format is one POST of the JSON payload.
type DaprPublisher struct {
	baseURL string
	client  *http.Client
}

func NewDaprPublisher() *DaprPublisher {
	port := config.Getenv("DAPR_HTTP_PORT", "3500")
	return &DaprPublisher{
		baseURL: fmt.Sprintf("http://localhost:%s/v1.0", port),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *DaprPublisher) Publish(event types.TaskLifecycleEvent) {
	go p.publish(config.TaskEventsTopic, event)
}

func (p *DaprPublisher) publish(topic string, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		config.Logger.Warn("Failed to encode event:", err)
		return
	}

	url := fmt.Sprintf("%s/publish/%s/%s", p.baseURL, config.PubsubName, topic)
	resp, err := p.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		config.Logger.Warn("Failed to publish event:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		config.Logger.Warnf("Failed to publish event to %s (status %d)", topic, resp.StatusCode)
	}
}

// NopPublisher drops every event. Used when no pub/sub sidecar is wired,
// and by tests that don't care about the event path.
type NopPublisher struct{}

func (NopPublisher) Publish(types.TaskLifecycleEvent) {}
