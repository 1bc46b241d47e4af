package valueobjects

import "fmt"

type Status string

const (
	StatusOpen       Status = "open"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusClosed:     true,
}

// Closed is terminal: a subsequent issue is a new ticket, never a reopen.
var statusTransitions = map[Status][]Status{
	StatusOpen: {
		StatusAssigned,
		StatusInProgress,
		StatusClosed,
	},
	StatusAssigned: {
		StatusInProgress,
		StatusClosed,
	},
	StatusInProgress: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}

	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsAssigned() bool {
	return s == StatusAssigned
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}
