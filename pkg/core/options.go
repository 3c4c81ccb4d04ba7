// Copyright © 2018 One Concern

package core

import (
	"github.com/oneconcern/playpub/pkg/storage"
	"github.com/oneconcern/playpub/pkg/storage/localfs"
	"go.uber.org/zap"
)

// Option is a functor to build core components with some options.
//
// All components accept the same options: irrelevant ones are ignored.
type Option func(*settings)

type settings struct {
	l        *zap.Logger
	store    storage.Store
	editHint string
	policy   CommitPolicy
}

func defaultSettings() settings {
	return settings{
		l:      zap.NewNop(),
		policy: CommitRegardless,
	}
}

func newSettings(opts []Option) settings {
	s := defaultSettings()
	for _, apply := range opts {
		apply(&s)
	}
	if s.store == nil {
		s.store = localfs.New(nil)
	}
	return s
}

// Logger injects a logging facility into core operations
func Logger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.l = l
		}
	}
}

// Store defines the store to read artifacts and images from.
// The default is the local file system.
func Store(store storage.Store) Option {
	return func(s *settings) {
		s.store = store
	}
}

// ResumeEdit defines the ID of an existing edit to resume, instead of creating a new one
func ResumeEdit(editID string) Option {
	return func(s *settings) {
		s.editHint = editID
	}
}

// PromotionPolicy defines whether a promotion is committed when the track update fails.
// The default is CommitRegardless.
func PromotionPolicy(policy CommitPolicy) Option {
	return func(s *settings) {
		s.policy = policy
	}
}
