package valueobjects

import "fmt"

type Type string

const (
	TypeBasic         Type = "basic"
	TypeStandard      Type = "standard"
	TypeExtraordinary Type = "extraordinary"
)

var validTypes = map[Type]bool{
	TypeBasic:         true,
	TypeStandard:      true,
	TypeExtraordinary: true,
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}
