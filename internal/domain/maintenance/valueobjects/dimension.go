package valueobjects

import "fmt"

// Dimension is an independent wear axis with its own cycle threshold.
type Dimension string

const (
	DimensionHours   Dimension = "hours"
	DimensionFlights Dimension = "flights"
	DimensionDays    Dimension = "days"
)

var validDimensions = map[Dimension]bool{
	DimensionHours:   true,
	DimensionFlights: true,
	DimensionDays:    true,
}

func (d Dimension) String() string {
	return string(d)
}

func (d Dimension) IsValid() bool {
	return validDimensions[d]
}

func NewDimension(s string) (Dimension, error) {
	d := Dimension(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid trigger dimension: %s", s)
	}
	return d, nil
}
