package valueobjects

import "fmt"

// EventType classifies an audit-trail entry. Exactly one event is appended
// per lifecycle mutation.
type EventType string

const (
	EventCreated    EventType = "created"
	EventAssigned   EventType = "assigned"
	EventReport     EventType = "report"
	EventAttachment EventType = "attachment"
	EventClosed     EventType = "closed"
)

var validEventTypes = map[EventType]bool{
	EventCreated:    true,
	EventAssigned:   true,
	EventReport:     true,
	EventAttachment: true,
	EventClosed:     true,
}

func (e EventType) String() string {
	return string(e)
}

func (e EventType) IsValid() bool {
	return validEventTypes[e]
}

func NewEventType(s string) (EventType, error) {
	et := EventType(s)
	if !et.IsValid() {
		return "", fmt.Errorf("invalid ticket event type: %s", s)
	}
	return et, nil
}
