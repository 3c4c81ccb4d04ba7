package model

import (
	"path"
	"strings"
)

// ArtifactKind tells which upload endpoint handles an artifact
type ArtifactKind string

const (
	// KindBundle is an Android App Bundle (.aab). Bundles are self-contained and never carry expansion files.
	KindBundle ArtifactKind = "bundle"

	// KindPackage is an APK
	KindPackage ArtifactKind = "package"

	bundleSuffix = ".aab"
)

func (k ArtifactKind) String() string {
	return string(k)
}

// KindOf infers the kind of an artifact from its file name
func KindOf(location string) ArtifactKind {
	if strings.HasSuffix(strings.ToLower(path.Base(location)), bundleSuffix) {
		return KindBundle
	}
	return KindPackage
}

// Artifact is an application build to upload
type Artifact struct {
	Path string       `json:"path" yaml:"path"`
	Kind ArtifactKind `json:"kind" yaml:"kind"`
}

// NewArtifact builds an artifact, classified by its name
func NewArtifact(location string) Artifact {
	return Artifact{
		Path: location,
		Kind: KindOf(location),
	}
}

// ExpansionFileType is the slot of an expansion file
type ExpansionFileType string

const (
	// ExpansionMain is the main expansion file, and the default
	ExpansionMain ExpansionFileType = "main"

	// ExpansionPatch is the patch expansion file
	ExpansionPatch ExpansionFileType = "patch"
)

// ParseExpansionFileType validates an expansion file type
func ParseExpansionFileType(s string) (ExpansionFileType, error) {
	switch ExpansionFileType(s) {
	case ExpansionMain, ExpansionPatch:
		return ExpansionFileType(s), nil
	default:
		return "", ErrInvalidExpansionFileType.WrapMessage("%q is not one of main, patch", s)
	}
}

func (e ExpansionFileType) String() string {
	return string(e)
}

// ExpansionFile is a large side file attached to an uploaded package.
//
// The owning version code must already exist remotely.
type ExpansionFile struct {
	Path              string            `json:"path" yaml:"path"`
	OwningVersionCode int64             `json:"owningVersionCode" yaml:"owningVersionCode"`
	FileType          ExpansionFileType `json:"fileType" yaml:"fileType"`
}
