// Copyright © 2018 One Concern

// Package changelog loads release notes from a JSON change log.
//
// A change log is a JSON array of localized entries:
//
//	[
//	  {"language": "en-US", "text": "Bug fixes"},
//	  {"language": "fr-FR", "text": "Corrections"}
//	]
//
// An array of plain strings is accepted as well: these entries get the default language.
package changelog

import (
	"context"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/playpub/pkg/errors"
	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/storage"
)

// ErrInvalidChangeLog indicates a change log that is not a JSON array of localized texts
var ErrInvalidChangeLog = errors.New("invalid change log")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parse decodes a change log into release notes. Entries with an empty text are skipped.
func Parse(data []byte) ([]model.LocalizedText, error) {
	var raw []jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ErrInvalidChangeLog.Wrap(err)
	}

	notes := make([]model.LocalizedText, 0, len(raw))
	for i, entry := range raw {
		var note model.LocalizedText
		if err := json.Unmarshal(entry, &note); err != nil {
			var text string
			if errText := json.Unmarshal(entry, &text); errText != nil {
				return nil, ErrInvalidChangeLog.WrapMessage("entry %d: %v", i, err)
			}
			note.Text = text
		}
		note.Text = strings.TrimSpace(note.Text)
		if note.Text == "" {
			continue
		}
		if note.Language == "" {
			note.Language = model.DefaultLanguage
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// Load reads and decodes a change log from some store
func Load(ctx context.Context, store storage.Store, key string) ([]model.LocalizedText, error) {
	data, err := storage.ReadAll(ctx, store, key)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
