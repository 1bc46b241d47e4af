package valueobjects

import "fmt"

// TriggerStatus is the maintenance urgency derived for a single entity.
type TriggerStatus string

const (
	StatusOK    TriggerStatus = "ok"
	StatusAlert TriggerStatus = "alert"
	StatusDue   TriggerStatus = "due"
)

var validTriggerStatuses = map[TriggerStatus]bool{
	StatusOK:    true,
	StatusAlert: true,
	StatusDue:   true,
}

func (s TriggerStatus) String() string {
	return string(s)
}

func (s TriggerStatus) IsValid() bool {
	return validTriggerStatuses[s]
}

func (s TriggerStatus) IsOK() bool {
	return s == StatusOK
}

func (s TriggerStatus) IsAlert() bool {
	return s == StatusAlert
}

func (s TriggerStatus) IsDue() bool {
	return s == StatusDue
}

// NeedsMaintenance reports whether the entity belongs in the
// "needs maintenance" fleet view.
func (s TriggerStatus) NeedsMaintenance() bool {
	return s == StatusAlert || s == StatusDue
}

func NewTriggerStatus(s string) (TriggerStatus, error) {
	ts := TriggerStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid trigger status: %s", s)
	}
	return ts, nil
}
