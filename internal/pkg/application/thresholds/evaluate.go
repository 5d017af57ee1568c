// Package thresholds decides whether a reading crosses the bounds configured
// on its sensor and how severe the breach is.
package thresholds

import (
	"fmt"
	"math"

	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

type Bound string

const (
	BoundMin Bound = "min"
	BoundMax Bound = "max"
)

type Breach struct {
	Severity  types.Severity
	Category  types.Category
	Message   string
	Bound     Bound
	Threshold float64
	// PercentOver is only set for breaches of the max threshold. It is +Inf
	// when the max threshold is zero.
	PercentOver float64
}

// Evaluate returns the breach caused by value, if any. The min threshold is
// checked first and only one bound can fire.
func Evaluate(sensor types.Sensor, value float64) (Breach, bool) {
	name := sensor.Name
	if name == "" {
		name = sensor.Code
	}

	if sensor.MinThreshold != nil && value < *sensor.MinThreshold {
		return Breach{
			Severity:  types.SeverityWarning,
			Category:  types.CategoryThreshold,
			Message:   fmt.Sprintf("%s below minimum threshold", name),
			Bound:     BoundMin,
			Threshold: *sensor.MinThreshold,
		}, true
	}

	if sensor.MaxThreshold != nil && value > *sensor.MaxThreshold {
		max := *sensor.MaxThreshold
		over := percentOver(value, max)

		return Breach{
			Severity:    severityFor(over),
			Category:    types.CategoryThreshold,
			Message:     fmt.Sprintf("%s exceeds maximum threshold", name),
			Bound:       BoundMax,
			Threshold:   max,
			PercentOver: over,
		}, true
	}

	return Breach{}, false
}

func percentOver(value, max float64) float64 {
	if max == 0 {
		return math.Inf(1)
	}
	return (value - max) / max * 100
}

func severityFor(percentOver float64) types.Severity {
	switch {
	case percentOver > 50:
		return types.SeverityCritical
	case percentOver > 20:
		return types.SeverityWarning
	default:
		return types.SeverityInfo
	}
}
