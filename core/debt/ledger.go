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

package debt

import (
	"context"
	"errors"
	"fmt"

	"code.lyraprotocol.io/lyra/libs/num"
	"code.lyraprotocol.io/lyra/logging"
)

var (
	// ErrInvalidAmount is returned for nil or zero amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInsufficientDebt is returned when a decrease exceeds the party's
	// minted debt.
	ErrInsufficientDebt = errors.New("insufficient minted debt")
)

// TokenController is the external debt-token collaborator. The engine is
// the sole authorized minter and burner, all supply changes route through
// this ledger so that total supply always equals the sum of minted debt.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/token_controller_mock.go -package mocks code.lyraprotocol.io/lyra/core/debt TokenController
type TokenController interface {
	// Mint issues amount of debt tokens to the party.
	Mint(ctx context.Context, to string, amount *num.Uint) error
	// PullAndBurn pulls amount of debt tokens from the payer into the
	// engine's custody and destroys them.
	PullAndBurn(ctx context.Context, payer string, amount *num.Uint) error
}

// Ledger is the per-party minted-debt ledger.
type Ledger struct {
	Config
	log *logging.Logger

	controller TokenController

	// party -> minted debt, Precision scaled USD
	minted map[string]*num.Uint
}

// New instantiates a new debt ledger.
func New(log *logging.Logger, cfg Config, controller TokenController) *Ledger {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Ledger{
		Config:     cfg,
		log:        log,
		controller: controller,
		minted:     map[string]*num.Uint{},
	}
}

// ReloadConf updates the internal configuration of the ledger.
func (l *Ledger) ReloadConf(cfg Config) {
	l.log.Info("reloading configuration")
	if l.log.GetLevel() != cfg.Level.Get() {
		l.log.Info("updating log level",
			logging.String("old", l.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		l.log.SetLevel(cfg.Level.Get())
	}
	l.Config = cfg
}

// IncreaseDebt adds amount to the party's minted debt. The ledger mutates
// before any solvency check on purpose, the check must see the post-mint
// state.
func (l *Ledger) IncreaseDebt(party string, amount *num.Uint) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	d, ok := l.minted[party]
	if !ok {
		d = num.UintZero()
		l.minted[party] = d
	}
	d.AddSum(amount)
	return nil
}

// DecreaseDebt subtracts amount from the party's minted debt.
func (l *Ledger) DecreaseDebt(party string, amount *num.Uint) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	d, ok := l.minted[party]
	if !ok || d.LT(amount) {
		return fmt.Errorf("%w: party %s", ErrInsufficientDebt, party)
	}
	d.Sub(d, amount)
	return nil
}

// MintExternal instructs the token controller to issue amount of debt
// tokens to the party. A failure aborts the whole enclosing operation,
// the caller unwinds the matching ledger increase.
func (l *Ledger) MintExternal(ctx context.Context, to string, amount *num.Uint) error {
	if err := l.controller.Mint(ctx, to, amount); err != nil {
		return fmt.Errorf("debt token mint for %s failed: %w", to, err)
	}
	if l.log.GetLevel() == logging.DebugLevel {
		l.log.Debug("debt tokens minted",
			logging.String("to", to),
			logging.BigUint("amount", amount),
		)
	}
	return nil
}

// BurnExternal pulls amount of debt tokens from the payer into the
// engine's custody and destroys them. A failed pull aborts the enclosing
// operation.
func (l *Ledger) BurnExternal(ctx context.Context, payer string, amount *num.Uint) error {
	if err := l.controller.PullAndBurn(ctx, payer, amount); err != nil {
		return fmt.Errorf("debt token burn funded by %s failed: %w", payer, err)
	}
	if l.log.GetLevel() == logging.DebugLevel {
		l.log.Debug("debt tokens burned",
			logging.String("payer", payer),
			logging.BigUint("amount", amount),
		)
	}
	return nil
}

// Debt returns the party's minted debt, zero for unknown parties. The
// returned value is a copy.
func (l *Ledger) Debt(party string) *num.Uint {
	d, ok := l.minted[party]
	if !ok {
		return num.UintZero()
	}
	return d.Clone()
}
