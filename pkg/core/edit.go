// Copyright © 2018 One Concern

package core

import (
	"context"

	"github.com/oneconcern/playpub/pkg/errors"
	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/publisher"
	"github.com/oneconcern/playpub/pkg/publisher/status"
	"go.uber.org/zap"
)

// EditSession holds the edit for the transaction in progress
type EditSession struct {
	client publisher.Client
	edit   model.Edit
	l      *zap.Logger
}

// NewEditSession builds an unopened edit session
func NewEditSession(client publisher.Client, opts ...Option) *EditSession {
	s := newSettings(opts)
	return &EditSession{
		client: client,
		edit:   model.Edit{State: model.EditUnopened},
		l:      s.l.With(zap.String("package", client.PackageName())),
	}
}

// ID of the current edit, empty when unopened
func (s *EditSession) ID() string {
	return s.edit.ID
}

// State of the current edit
func (s *EditSession) State() model.EditState {
	return s.edit.State
}

// Open resumes the edit with the given ID, or the edit currently held by the session.
//
// When there is no such edit, a new one is created with a random ID.
// Only a failure to create the edit is reported.
func (s *EditSession) Open(ctx context.Context, hint string) (model.Edit, error) {
	id := hint
	if id == "" {
		id = s.edit.ID
	}
	if id != "" {
		if edit, ok := s.tryResume(ctx, id); ok {
			s.edit = edit
			s.l.Info("edit resumed", zap.String("edit", edit.ID))
			return s.edit, nil
		}
	}

	remoteID, err := s.client.InsertEdit(ctx, model.NewEditID())
	if err != nil {
		s.edit = model.Edit{State: model.EditUnopened}
		s.l.Error("cannot create edit", zap.Error(err))
		return s.edit, status.ErrSessionFailed.Wrap(err)
	}
	s.edit = model.Edit{ID: remoteID, State: model.EditOpen}
	s.l.Info("edit created", zap.String("edit", remoteID))
	return s.edit, nil
}

func (s *EditSession) tryResume(ctx context.Context, id string) (model.Edit, bool) {
	remoteID, err := s.client.GetEdit(ctx, id)
	if err != nil {
		if errors.Is(err, status.ErrNotFound) {
			s.l.Info("edit not found, creating a new one", zap.String("edit", id))
		} else {
			s.l.Warn("could not resume edit, creating a new one", zap.String("edit", id), zap.Error(err))
		}
		return model.Edit{}, false
	}
	if remoteID == "" {
		remoteID = id
	}
	return model.Edit{ID: remoteID, State: model.EditOpen}, true
}

// Validate asks the remote system to check all pending mutations.
//
// A rejection is logged and reported as false.
func (s *EditSession) Validate(ctx context.Context) bool {
	if s.edit.State != model.EditOpen && s.edit.State != model.EditValidated {
		s.l.Warn("cannot validate edit", zap.String("edit", s.edit.ID), zap.Stringer("state", s.edit.State))
		return false
	}
	if err := s.client.ValidateEdit(ctx, s.edit.ID); err != nil {
		s.l.Warn("edit validation failed", zap.String("edit", s.edit.ID), zap.Error(err))
		return false
	}
	s.edit.State = model.EditValidated
	s.l.Info("edit validated", zap.String("edit", s.edit.ID))
	return true
}

// Commit applies all pending mutations. The edit must have been validated first.
func (s *EditSession) Commit(ctx context.Context) error {
	if s.edit.State != model.EditValidated {
		return status.ErrNotValidated.WrapMessage("edit %q is %s", s.edit.ID, s.edit.State)
	}
	if err := s.client.CommitEdit(ctx, s.edit.ID); err != nil {
		s.l.Error("edit commit failed", zap.String("edit", s.edit.ID), zap.Error(err))
		return status.ErrCommitRejected.Wrap(err)
	}
	s.edit.State = model.EditCommitted
	s.l.Info("edit committed", zap.String("edit", s.edit.ID))
	return nil
}

// Reset discards the current edit. The next Open creates a new one.
func (s *EditSession) Reset() {
	s.l.Info("edit reset", zap.String("edit", s.edit.ID), zap.Stringer("state", s.edit.State))
	s.edit = model.Edit{State: model.EditUnopened}
}
