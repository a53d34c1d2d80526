package pubsub

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	// EventSnapshot carries the collection as it was when the relay started.
	EventSnapshot EventType = "snapshot"
	EventChange   EventType = "change"
)

// Event is one message of the changefeed: the complete collection of one
// kind after a mutation.
type Event[T any] struct {
	Tag   string    `json:"tag"`
	Type  EventType `json:"type"`
	Items []T       `json:"items"`
	At    time.Time `json:"at"`
}

// RawEvent leaves items undecoded, for consumers that do not know the
// record type of every tag.
type RawEvent = Event[json.RawMessage]
