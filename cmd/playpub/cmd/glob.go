// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/oneconcern/playpub/pkg/storage"
	"github.com/spf13/afero"
)

const globMeta = "*?[{"

// resolveGlob expands a local location with wildcards (e.g. build/outputs/**/*.aab) into a single file path.
//
// Remote locations and plain paths are returned unchanged.
func resolveGlob(location string) (string, error) {
	if location == "" || !strings.ContainsAny(location, globMeta) {
		return location, nil
	}
	loc, err := storage.ParseLocation(location)
	if err != nil || loc.Scheme != storage.SchemeLocal {
		return location, err
	}
	pattern := filepath.Clean(loc.Key)

	var matches []string
	err = afero.Walk(localFs, globBase(pattern), func(path string, info os.FileInfo, erw error) error {
		if erw != nil {
			if os.IsNotExist(erw) {
				return nil
			}
			return erw
		}
		if info.IsDir() {
			return nil
		}
		ok, erm := doublestar.PathMatch(pattern, path)
		if erm != nil {
			return erm
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no file matches %q", location)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%d files match %q, expected exactly one: %s", len(matches), location, strings.Join(matches, ", "))
	}
}

// globBase is the longest leading directory of a pattern without wildcards
func globBase(pattern string) string {
	parts := strings.Split(pattern, string(filepath.Separator))
	base := make([]string, 0, len(parts))
	for _, part := range parts[:len(parts)-1] {
		if strings.ContainsAny(part, globMeta) {
			break
		}
		base = append(base, part)
	}
	switch {
	case len(base) == 0:
		return "."
	case len(base) == 1 && base[0] == "":
		return string(filepath.Separator)
	default:
		return strings.Join(base, string(filepath.Separator))
	}
}
