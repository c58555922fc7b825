package scoping

import (
	"fmt"

	"github.com/sirkon/jslower/internal/jsast"
)

// State of a context declarations.
type State int

const (
	stateInvalid State = iota

	// StateNoDeclarations means nothing was declared through the context yet
	// or its declarations were moved out.
	StateNoDeclarations

	// StateHasGroup means the context owns a declaration group residing in its block.
	StateHasGroup
)

func (s State) String() string {
	switch s {
	case StateNoDeclarations:
		return "no-declarations"
	case StateHasGroup:
		return "has-group"
	default:
		return fmt.Sprintf("invalid(%d)", s)
	}
}

// pending is either noDeclarations or hasGroup.
type pending interface {
	state() State
}

type noDeclarations struct{}

type hasGroup struct {
	vars *jsast.Vars
}

func (noDeclarations) state() State { return StateNoDeclarations }
func (hasGroup) state() State       { return StateHasGroup }
