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

package liquidation

import (
	"context"
	"errors"
	"fmt"

	"code.lyraprotocol.io/lyra/core/broker"
	"code.lyraprotocol.io/lyra/core/events"
	"code.lyraprotocol.io/lyra/core/oracle"
	"code.lyraprotocol.io/lyra/core/risk"
	"code.lyraprotocol.io/lyra/libs/num"
	"code.lyraprotocol.io/lyra/logging"
)

var (
	// ErrInvalidAmount is returned for nil or zero debt to cover.
	ErrInvalidAmount = errors.New("debt to cover must be greater than zero")
	// ErrHealthFactorOk is returned when trying to liquidate a healthy
	// position.
	ErrHealthFactorOk = errors.New("target health factor above minimum, liquidation forbidden")
	// ErrHealthFactorNotImproved is returned when the requested seizure
	// would leave the target's health factor below its starting value.
	ErrHealthFactorNotImproved = errors.New("liquidation would not improve target health factor")
	// ErrLiquidatorNotSolvent is returned when the liquidator itself holds
	// an undercollateralized debt position.
	ErrLiquidatorNotSolvent = errors.New("liquidator health factor below minimum")
	// ErrInsufficientTargetDebt is returned when debt to cover exceeds the
	// target's minted debt.
	ErrInsufficientTargetDebt = errors.New("debt to cover exceeds target debt")
	// ErrInsufficientTargetCollateral is returned when the seizure exceeds
	// the target's deposited balance of the chosen asset.
	ErrInsufficientTargetCollateral = errors.New("seizure exceeds target collateral balance")
)

// Registry gives access to the oracle adapters of the collateral set.
type Registry interface {
	Adapter(asset string) (*oracle.Adapter, error)
}

// Vault is the collateral vault as needed for seizures.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks code.lyraprotocol.io/lyra/core/liquidation Vault,DebtLedger,Solvency
type Vault interface {
	Redeem(ctx context.Context, asset string, amount *num.Uint, from, to string) error
	Balance(party, asset string) *num.Uint
}

// DebtLedger is the minted-debt ledger as needed for repayments.
type DebtLedger interface {
	Debt(party string) *num.Uint
	IncreaseDebt(party string, amount *num.Uint) error
	DecreaseDebt(party string, amount *num.Uint) error
	MintExternal(ctx context.Context, to string, amount *num.Uint) error
	BurnExternal(ctx context.Context, payer string, amount *num.Uint) error
}

// Solvency values positions under the global solvency rule, implemented
// by the composition root.
type Solvency interface {
	HealthFactor(party string) (*num.Uint, error)
	CollateralValueUSD(party string) (*num.Uint, error)
}

// Engine orchestrates seizure of collateral and repayment of debt on
// behalf of an undercollateralized party. The whole sequence is one
// atomic operation, no partial seizure or repayment is observable.
type Engine struct {
	Config
	log *logging.Logger

	registry Registry
	vault    Vault
	ledger   DebtLedger
	solvency Solvency
	broker   broker.Interface
}

// New instantiates a new liquidation engine.
func New(log *logging.Logger, cfg Config, registry Registry, vault Vault, ledger DebtLedger, solvency Solvency, broker broker.Interface) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		Config:   cfg,
		log:      log,
		registry: registry,
		vault:    vault,
		ledger:   ledger,
		solvency: solvency,
		broker:   broker,
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

// Liquidate covers debtToCover of the target's debt on behalf of the
// liquidator, seizing the debt-equivalent amount of the chosen collateral
// asset plus the liquidation bonus. All postconditions are validated
// prospectively, before any ledger or external mutation, so a failure at
// any step leaves no observable effect.
func (e *Engine) Liquidate(ctx context.Context, liquidator, target, asset string, debtToCover *num.Uint) error {
	if debtToCover == nil || debtToCover.IsZero() {
		return ErrInvalidAmount
	}

	hfBefore, err := e.solvency.HealthFactor(target)
	if err != nil {
		return err
	}
	if risk.Healthy(hfBefore) {
		return fmt.Errorf("%w: party %s, health factor %s", ErrHealthFactorOk, target, hfBefore)
	}

	// the liquidator must end the operation solvent under the same global
	// solvency rule as ordinary operations. The seizure pays out to the
	// liquidator's wallet, not its vault balance, so its own position is
	// unchanged and the check can run up front.
	hfLiquidator, err := e.solvency.HealthFactor(liquidator)
	if err != nil {
		return err
	}
	if !risk.Healthy(hfLiquidator) {
		return fmt.Errorf("%w: party %s, health factor %s", ErrLiquidatorNotSolvent, liquidator, hfLiquidator)
	}

	adapter, err := e.registry.Adapter(asset)
	if err != nil {
		return err
	}
	price, decimals, err := adapter.Price()
	if err != nil {
		return err
	}

	tokenAmount := risk.TokenAmountFromUsd(price, decimals, debtToCover)
	seized := num.Sum(tokenAmount, risk.BonusCollateral(tokenAmount))

	if e.ledger.Debt(target).LT(debtToCover) {
		return fmt.Errorf("%w: party %s", ErrInsufficientTargetDebt, target)
	}
	if e.vault.Balance(target, asset).LT(seized) {
		return fmt.Errorf("%w: party %s, asset %s", ErrInsufficientTargetCollateral, target, asset)
	}

	hfAfter, err := e.prospectiveHealthFactor(target, price, decimals, seized, debtToCover)
	if err != nil {
		return err
	}
	if hfAfter.LT(hfBefore) {
		return fmt.Errorf("%w: party %s, health factor %s -> %s", ErrHealthFactorNotImproved, target, hfBefore, hfAfter)
	}

	// pull the repayment from the liquidator first, it is the only
	// external call that can fail before any internal state changed
	if err := e.ledger.BurnExternal(ctx, liquidator, debtToCover); err != nil {
		return err
	}
	if err := e.ledger.DecreaseDebt(target, debtToCover); err != nil {
		// debt was checked above, this cannot happen
		e.log.Panic("debt decrease failed mid liquidation",
			logging.String("target", target),
			logging.Error(err),
		)
	}

	if err := e.vault.Redeem(ctx, asset, seized, target, liquidator); err != nil {
		// the vault unwound its own balance change, restore the debt and
		// refund the liquidator's repayment
		if uerr := e.ledger.IncreaseDebt(target, debtToCover); uerr != nil {
			e.log.Panic("failed to restore target debt", logging.Error(uerr))
		}
		if uerr := e.ledger.MintExternal(ctx, liquidator, debtToCover); uerr != nil {
			e.log.Panic("failed to refund liquidator repayment", logging.Error(uerr))
		}
		return err
	}

	// the covered debt was burned on the liquidator's account, emit the
	// burn alongside the liquidation so indexers see both ledger moves
	e.broker.SendBatch([]events.Event{
		events.NewDebtBurnedEvent(ctx, target, liquidator, debtToCover),
		events.NewPositionLiquidatedEvent(ctx, target, liquidator, asset, seized, debtToCover),
	})
	e.log.Info("position liquidated",
		logging.String("target", target),
		logging.String("liquidator", liquidator),
		logging.String("asset", asset),
		logging.BigUint("seized", seized),
		logging.BigUint("debtCovered", debtToCover),
		logging.BigUint("healthFactorBefore", hfBefore),
		logging.BigUint("healthFactorAfter", hfAfter),
	)
	return nil
}

// prospectiveHealthFactor computes the target's health factor as it will
// stand once seized collateral and covered debt are removed, without
// mutating any ledger.
func (e *Engine) prospectiveHealthFactor(target string, price *num.Uint, decimals uint8, seized, debtToCover *num.Uint) (*num.Uint, error) {
	value, err := e.solvency.CollateralValueUSD(target)
	if err != nil {
		return nil, err
	}
	seizedValue := risk.UsdValue(price, decimals, seized)
	// rounding on per-asset valuation means the seized value can nominally
	// exceed the total, clamp at zero
	remaining, neg := num.UintZero().Delta(value, seizedValue)
	if neg {
		remaining = num.UintZero()
	}
	debt := e.ledger.Debt(target)
	debt.Sub(debt, debtToCover)
	return risk.HealthFactor(remaining, debt), nil
}
