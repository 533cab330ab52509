package charts

import (
	"fmt"
	"strings"
)

// Slot is one of the fixed chart roles on the analytics tab
type Slot string

const (
	SlotTrend       Slot = "trend"
	SlotBreakdown   Slot = "breakdown"
	SlotComparison  Slot = "comparison"
	SlotUtilization Slot = "utilization"
)

// Slots lists every slot in render order
var Slots = []Slot{SlotTrend, SlotBreakdown, SlotComparison, SlotUtilization}

// slotAliases maps the role names the web dashboard used for its canvases
var slotAliases = map[string]Slot{
	"production": SlotTrend,
	"cost":       SlotBreakdown,
	"revenue":    SlotComparison,
	"resource":   SlotUtilization,
}

// ParseSlot accepts a slot name or one of its role aliases
func ParseSlot(s string) (Slot, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, slot := range Slots {
		if string(slot) == name {
			return slot, nil
		}
	}
	if slot, ok := slotAliases[name]; ok {
		return slot, nil
	}
	return "", fmt.Errorf("unknown chart slot %q", s)
}

// Kind returns the chart kind drawn into the slot
func (s Slot) Kind() Kind {
	switch s {
	case SlotTrend:
		return KindLine
	case SlotBreakdown:
		return KindDoughnut
	case SlotComparison:
		return KindBar
	case SlotUtilization:
		return KindRadar
	default:
		return ""
	}
}

// Kind is the visual form of a chart
type Kind string

const (
	KindLine     Kind = "line"
	KindDoughnut Kind = "doughnut"
	KindBar      Kind = "bar"
	KindRadar    Kind = "radar"
)

// State is the binding state of a slot
type State int

const (
	// StateEmpty means no instance is bound to the slot's surface
	StateEmpty State = iota
	// StateBound means a live instance is drawn on the slot's surface
	StateBound
)

func (s State) String() string {
	if s == StateBound {
		return "bound"
	}
	return "empty"
}

// MarshalText renders the state by name in JSON responses
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
