package model

import (
	"fmt"

	"github.com/segmentio/ksuid"
)

// EditState models the progress of an edit through its transaction cycle
type EditState string

const (
	// EditUnopened is the state of an edit that has not been created or resumed remotely yet,
	// or that has been reset after completion.
	EditUnopened EditState = "unopened"

	// EditOpen is the state of an edit known to the remote system, accepting mutations
	EditOpen EditState = "open"

	// EditValidated indicates that the remote system accepted all pending mutations
	EditValidated EditState = "validated"

	// EditCommitted indicates that all pending mutations have been applied. This is a terminal state.
	EditCommitted EditState = "committed"
)

// IsValid checks the value of an edit state
func (s EditState) IsValid() bool {
	switch s {
	case EditUnopened, EditOpen, EditValidated, EditCommitted:
		return true
	default:
		return false
	}
}

func (s EditState) String() string {
	return string(s)
}

// Edit models a transactional change-set
type Edit struct {
	ID    string    `json:"id" yaml:"id"`
	State EditState `json:"state" yaml:"state"`
	_     struct{}
}

// NewEditID generates a random unique edit ID.
//
// The ID is generated client-side before the remote system is told about it,
// so a "get" on that ID may safely be retried.
func NewEditID() string {
	id, err := ksuid.NewRandom()
	if err != nil {
		panic(fmt.Sprintf("cannot generate random ksuid: %v", err))
	}
	return id.String()
}
