// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package oracle

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatchedOracleConfig is returned at construction when the asset
	// and adapter lists have different lengths.
	ErrMismatchedOracleConfig = errors.New("asset and price source lists must be the same length")
	// ErrAssetNotRegistered is returned for any asset outside the
	// registered collateral set.
	ErrAssetNotRegistered = errors.New("asset not registered as collateral")
	// ErrDuplicateAsset is returned when the same asset appears twice in
	// the construction lists.
	ErrDuplicateAsset = errors.New("duplicate collateral asset")
)

// Registry is the static-after-construction mapping from collateral asset
// to its oracle adapter. Built once, read-only afterward.
type Registry struct {
	// ordered list of supported assets, registration order
	assets   []string
	adapters map[string]*Adapter
}

// NewRegistry builds the collateral registry from two equal-length ordered
// lists. The set of registered assets is immutable once built.
func NewRegistry(assets []string, sources []PriceSource) (*Registry, error) {
	if len(assets) != len(sources) {
		return nil, fmt.Errorf("%w: %d assets, %d price sources", ErrMismatchedOracleConfig, len(assets), len(sources))
	}
	r := &Registry{
		assets:   make([]string, 0, len(assets)),
		adapters: make(map[string]*Adapter, len(assets)),
	}
	for i, asset := range assets {
		if _, ok := r.adapters[asset]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAsset, asset)
		}
		r.assets = append(r.assets, asset)
		r.adapters[asset] = NewAdapter(asset, sources[i])
	}
	return r, nil
}

// IsRegistered reports whether the asset is part of the collateral set.
func (r *Registry) IsRegistered(asset string) bool {
	_, ok := r.adapters[asset]
	return ok
}

// Adapter returns the oracle adapter for the given asset.
func (r *Registry) Adapter(asset string) (*Adapter, error) {
	a, ok := r.adapters[asset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotRegistered, asset)
	}
	return a, nil
}

// Assets returns the supported assets in registration order. The returned
// slice is a copy, callers cannot mutate the registry through it.
func (r *Registry) Assets() []string {
	out := make([]string, len(r.assets))
	copy(out, r.assets)
	return out
}
