// Copyright © 2018 One Concern

// Package publisher defines the contract of the remote publishing API consumed by playpub.
//
// Every call is scoped to the package the client was built for, and to an edit ID.
// Mutations are only visible to readers of the remote system after the edit is committed.
//
// Implementations return sentinel errors from the status package, so that callers may
// tell a missing resource (status.ErrNotFound) apart from other remote failures.
package publisher
