// Package model describes the base objects manipulated by playpub.
//
// The object model for playpub is composed of:
//
//	Edits:
//	  An edit is a server-side transaction scope. All mutations (uploads, track updates)
//	  happen inside one edit and only become visible to readers once the edit is committed.
//
//	Tracks:
//	  A track is a named distribution channel (internal, alpha, beta, production).
//	  playpub manages exactly one release per track.
//
//	Releases:
//	  A release is a labeled, versioned and status-tagged publishable unit assigned to a track.
//
//	Artifacts:
//	  An artifact is an application build: either a bundle (.aab) or a package (.apk).
//	  Packages may carry an expansion file.
//
//	Assets:
//	  An asset is an image uploaded into one of the store listing slots, for a given language.
package model
