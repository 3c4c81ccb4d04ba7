package model

// ReleaseOption is a functor to build a release with some options
type ReleaseOption func(*Release)

// ReleaseName defines the human-readable label of a release
func ReleaseName(name string) ReleaseOption {
	return func(r *Release) {
		r.Name = name
	}
}

// ReleaseWithStatus defines the status of a release
func ReleaseWithStatus(status ReleaseStatus) ReleaseOption {
	return func(r *Release) {
		r.Status = status
	}
}

// ReleaseVersionCode sets the single version code of a release
func ReleaseVersionCode(versionCode int64) ReleaseOption {
	return func(r *Release) {
		r.VersionCodes = []int64{versionCode}
	}
}

// ReleaseNotes defines the release notes of a release
func ReleaseNotes(notes []LocalizedText) ReleaseOption {
	return func(r *Release) {
		if len(notes) > 0 {
			r.ReleaseNotes = notes
		}
	}
}
