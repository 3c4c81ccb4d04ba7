// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
	"sync"

	"github.com/oneconcern/playpub/pkg/storage/status"
)

// Resolver opens the store holding some location
type Resolver func(ctx context.Context, loc Location) (Store, error)

var _ Store = &Mux{}

// Mux is a store taking full locations as keys (e.g. gs://bucket/app.aab, ./app.apk),
// and dispatching calls to the store resolved for the scheme and bucket of each location.
//
// Resolved stores are retained for subsequent calls.
type Mux struct {
	resolvers map[Scheme]Resolver
	stores    map[string]Store
	mx        sync.Mutex
}

// NewMux builds a store dispatching to backends by scheme.
// Locations with a scheme without a resolver are rejected.
func NewMux(resolvers map[Scheme]Resolver) *Mux {
	return &Mux{
		resolvers: resolvers,
		stores:    make(map[string]Store),
	}
}

func (m *Mux) resolve(ctx context.Context, location string) (Store, string, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, "", err
	}
	resolver, ok := m.resolvers[loc.Scheme]
	if !ok {
		return nil, "", status.ErrInvalidResource.WrapMessage("unsupported location scheme %q", loc.Scheme)
	}

	m.mx.Lock()
	defer m.mx.Unlock()
	id := string(loc.Scheme) + "://" + loc.Bucket
	if store, ok := m.stores[id]; ok {
		return store, loc.Key, nil
	}
	store, err := resolver(ctx, loc)
	if err != nil {
		return nil, "", err
	}
	m.stores[id] = store
	return store, loc.Key, nil
}

// Has tells if a location exists
func (m *Mux) Has(ctx context.Context, location string) (bool, error) {
	store, key, err := m.resolve(ctx, location)
	if err != nil {
		return false, err
	}
	return store.Has(ctx, key)
}

// Get opens a location for reading
func (m *Mux) Get(ctx context.Context, location string) (io.ReadCloser, error) {
	store, key, err := m.resolve(ctx, location)
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, key)
}

// Size of the object at some location
func (m *Mux) Size(ctx context.Context, location string) (int64, error) {
	store, key, err := m.resolve(ctx, location)
	if err != nil {
		return 0, err
	}
	return store.Size(ctx, key)
}

func (m *Mux) String() string {
	return "mux"
}
