package position

import (
	"errors"
	"fmt"
)

// ErrInvalidTouchSensor is wrapped by the error NewTouchSensor returns for
// an illegal group/index combination.
var ErrInvalidTouchSensor = errors.New("invalid touch sensor")

// SensorGroup is one of the five touch-sensor rings.
type SensorGroup byte

const (
	GroupA SensorGroup = 'A'
	GroupB SensorGroup = 'B'
	GroupC SensorGroup = 'C'
	GroupD SensorGroup = 'D'
	GroupE SensorGroup = 'E'
)

// TouchSensor is one of the 33 touch regions: eight each in groups A, B, D,
// E, plus the single C sensor (Index is meaningless for group C and always
// normalized to 0).
type TouchSensor struct {
	Group SensorGroup
	Index int
}

// NewTouchSensor validates (group, index) and returns the canonical sensor.
// Index is ignored (and normalized to 0) for group C.
func NewTouchSensor(group SensorGroup, index int) (TouchSensor, error) {
	switch group {
	case GroupC:
		return TouchSensor{Group: GroupC, Index: 0}, nil
	case GroupA, GroupB, GroupD, GroupE:
		if index < 0 || index > 7 {
			return TouchSensor{}, fmt.Errorf("%w: %c%d", ErrInvalidTouchSensor, group, index)
		}
		return TouchSensor{Group: group, Index: index}, nil
	default:
		return TouchSensor{}, fmt.Errorf("%w: group %c", ErrInvalidTouchSensor, group)
	}
}

func (s TouchSensor) String() string {
	if s.Group == GroupC {
		return "C"
	}
	return fmt.Sprintf("%c%d", s.Group, s.Index+1)
}

// AllSensors returns the 33 legal sensors in a stable order: A0..A7, B0..B7,
// C, D0..D7, E0..E7.
func AllSensors() []TouchSensor {
	out := make([]TouchSensor, 0, 33)
	for _, g := range []SensorGroup{GroupA, GroupB} {
		for i := 0; i < 8; i++ {
			out = append(out, TouchSensor{Group: g, Index: i})
		}
	}
	out = append(out, TouchSensor{Group: GroupC})
	for _, g := range []SensorGroup{GroupD, GroupE} {
		for i := 0; i < 8; i++ {
			out = append(out, TouchSensor{Group: g, Index: i})
		}
	}
	return out
}
