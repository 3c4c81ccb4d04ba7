// Copyright © 2018 One Concern

// Package core implements the edit transaction workflow to publish Android builds and store assets.
//
// Every publishing operation runs inside a single edit:
//
//	open (resume or create) -> mutate -> validate -> commit | abort -> reset
//
// Mutations are uploads (artifacts, expansion files, images) and track updates.
// Nothing becomes visible remotely until the edit is committed.
package core
