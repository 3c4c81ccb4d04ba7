// Copyright © 2018 One Concern

package core

// Outcome is the final state of a publishing operation
type Outcome uint8

// Outcomes of a publishing operation
const (
	OutcomeCommitted Outcome = iota
	OutcomeValidationRejected
	OutcomeCommitRejected
	OutcomeUploadFailed
	OutcomeUpdateFailed
	OutcomeSessionFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeValidationRejected:
		return "validation rejected"
	case OutcomeCommitRejected:
		return "commit rejected"
	case OutcomeUploadFailed:
		return "upload failed"
	case OutcomeUpdateFailed:
		return "update failed"
	case OutcomeSessionFailed:
		return "session failed"
	default:
		return "unknown"
	}
}

// ExitCode maps an outcome to a process exit code
func (o Outcome) ExitCode() int {
	if o == OutcomeCommitted {
		return 0
	}
	return 1
}

// CommitPolicy tells whether a promotion is committed when its track update failed
type CommitPolicy uint8

const (
	// CommitRegardless validates and commits the edit even if the track update failed
	CommitRegardless CommitPolicy = iota

	// CommitOnSuccess aborts the edit when the track update failed
	CommitOnSuccess
)
