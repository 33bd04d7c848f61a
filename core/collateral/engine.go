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

package collateral

import (
	"context"
	"errors"
	"fmt"

	"code.lyraprotocol.io/lyra/core/broker"
	"code.lyraprotocol.io/lyra/core/events"
	"code.lyraprotocol.io/lyra/libs/num"
	"code.lyraprotocol.io/lyra/logging"
)

var (
	// ErrInvalidAmount is returned for nil or zero amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInsufficientCollateral is returned when a redemption exceeds the
	// party's deposited balance.
	ErrInsufficientCollateral = errors.New("insufficient collateral balance")
)

// Registry is the read-only view over the collateral asset set.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/registry_mock.go -package mocks code.lyraprotocol.io/lyra/core/collateral Registry
type Registry interface {
	IsRegistered(asset string) bool
}

// AssetSource moves collateral tokens between external parties and the
// vault's custody. Every call is fallible and a reported failure aborts
// the enclosing operation.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/asset_source_mock.go -package mocks code.lyraprotocol.io/lyra/core/collateral AssetSource
type AssetSource interface {
	// Pull transfers amount of asset from the party into vault custody.
	Pull(ctx context.Context, asset, from string, amount *num.Uint) error
	// Push transfers amount of asset from vault custody to the party.
	Push(ctx context.Context, asset, to string, amount *num.Uint) error
}

// Engine is the collateral vault, the per-party per-asset deposited
// balance ledger.
type Engine struct {
	Config
	log *logging.Logger

	registry Registry
	source   AssetSource
	broker   broker.Interface

	// party -> asset -> deposited amount
	balances map[string]map[string]*num.Uint
}

// New instantiates a new collateral vault engine.
func New(log *logging.Logger, cfg Config, registry Registry, source AssetSource, broker broker.Interface) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		Config:   cfg,
		log:      log,
		registry: registry,
		source:   source,
		broker:   broker,
		balances: map[string]map[string]*num.Uint{},
	}
}

// ReloadConf updates the internal configuration of the engine.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	e.Config = cfg
}

// Deposit credits the party's balance with amount of asset and pulls the
// tokens into vault custody. A failed pull unwinds the credit, nothing
// observable persists.
func (e *Engine) Deposit(ctx context.Context, party, asset string, amount *num.Uint) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	if !e.registry.IsRegistered(asset) {
		return fmt.Errorf("cannot deposit: asset %s not registered", asset)
	}

	e.credit(party, asset, amount)
	if err := e.source.Pull(ctx, asset, party, amount); err != nil {
		e.debit(party, asset, amount)
		return fmt.Errorf("collateral transfer from %s failed: %w", party, err)
	}

	e.broker.Send(events.NewCollateralDepositedEvent(ctx, party, asset, amount))
	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("collateral deposited",
			logging.String("party", party),
			logging.String("asset", asset),
			logging.BigUint("amount", amount),
		)
	}
	return nil
}

// Redeem debits amount of asset from the from party's balance and pushes
// the tokens to the to party. It does not check solvency, callers own the
// post-condition health check: self-service redemption must leave the
// caller solvent, a liquidation seizure must leave the target improved.
func (e *Engine) Redeem(ctx context.Context, asset string, amount *num.Uint, from, to string) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	if !e.registry.IsRegistered(asset) {
		return fmt.Errorf("cannot redeem: asset %s not registered", asset)
	}
	if e.Balance(from, asset).LT(amount) {
		return fmt.Errorf("%w: party %s, asset %s", ErrInsufficientCollateral, from, asset)
	}

	e.debit(from, asset, amount)
	if err := e.source.Push(ctx, asset, to, amount); err != nil {
		e.credit(from, asset, amount)
		return fmt.Errorf("collateral transfer to %s failed: %w", to, err)
	}

	e.broker.Send(events.NewCollateralRedeemedEvent(ctx, from, to, asset, amount))
	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("collateral redeemed",
			logging.String("from", from),
			logging.String("to", to),
			logging.String("asset", asset),
			logging.BigUint("amount", amount),
		)
	}
	return nil
}

// Balance returns the party's deposited balance for the asset, zero for
// unknown parties or assets. The returned value is a copy.
func (e *Engine) Balance(party, asset string) *num.Uint {
	assets, ok := e.balances[party]
	if !ok {
		return num.UintZero()
	}
	b, ok := assets[asset]
	if !ok {
		return num.UintZero()
	}
	return b.Clone()
}

// Balances returns all non-zero deposited balances of the party, keyed
// by asset. The returned map and values are copies.
func (e *Engine) Balances(party string) map[string]*num.Uint {
	out := map[string]*num.Uint{}
	for asset, b := range e.balances[party] {
		if b.IsZero() {
			continue
		}
		out[asset] = b.Clone()
	}
	return out
}

func (e *Engine) credit(party, asset string, amount *num.Uint) {
	assets, ok := e.balances[party]
	if !ok {
		// position is created implicitly on first deposit
		assets = map[string]*num.Uint{}
		e.balances[party] = assets
	}
	b, ok := assets[asset]
	if !ok {
		b = num.UintZero()
		assets[asset] = b
	}
	b.AddSum(amount)
}

// debit assumes the balance was already checked, a larger amount is a
// programming error and panics rather than wrapping around.
func (e *Engine) debit(party, asset string, amount *num.Uint) {
	b := e.balances[party][asset]
	if b == nil || b.LT(amount) {
		e.log.Panic("collateral balance underflow",
			logging.String("party", party),
			logging.String("asset", asset),
			logging.BigUint("amount", amount),
		)
	}
	b.Sub(b, amount)
}
