// Package economy validates and applies construction and inventory actions
// Every action either fully applies or leaves the world untouched
package economy

import "github.com/lixenwraith/ctower/entity"

// Status classifies the effect of an action
type Status uint8

const (
	StatusApplied Status = iota
	StatusRejected
	StatusLiquidated // upkeep unaffordable, building sold off
)

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusRejected:
		return "rejected"
	case StatusLiquidated:
		return "liquidated"
	default:
		return "unknown"
	}
}

// Reason explains a rejection
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonBaseNotDeployed
	ReasonOccupied
	ReasonNoSupport
	ReasonNoMountain
	ReasonNoGold
	ReasonNoBuilding
	ReasonMaxLevel
	ReasonTooClose
	ReasonNoBombs
	ReasonTrapDeployed
)

var reasonText = [...]string{
	ReasonNone:            "",
	ReasonBaseNotDeployed: "base not deployed",
	ReasonOccupied:        "cell occupied",
	ReasonNoSupport:       "no base or satellite in range",
	ReasonNoMountain:      "no adjacent mountain",
	ReasonNoGold:          "not enough gold",
	ReasonNoBuilding:      "no building here",
	ReasonMaxLevel:        "maximum level reached",
	ReasonTooClose:        "too close to base or satellite",
	ReasonNoBombs:         "no bombs left",
	ReasonTrapDeployed:    "trap already deployed",
}

func (r Reason) String() string {
	if int(r) < len(reasonText) {
		return reasonText[r]
	}
	return "unknown"
}

// Result reports the outcome of one action
type Result struct {
	Status   Status
	Reason   Reason
	Building *entity.Building // affected building, if any
	Gold     int              // signed change of base gold
}

// Ok reports whether the action took effect
func (r Result) Ok() bool {
	return r.Status != StatusRejected
}

func applied(b *entity.Building, gold int) Result {
	return Result{Status: StatusApplied, Building: b, Gold: gold}
}

func rejected(reason Reason) Result {
	return Result{Status: StatusRejected, Reason: reason}
}
