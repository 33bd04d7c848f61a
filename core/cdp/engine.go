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

package cdp

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"code.lyraprotocol.io/lyra/core/broker"
	"code.lyraprotocol.io/lyra/core/collateral"
	"code.lyraprotocol.io/lyra/core/debt"
	"code.lyraprotocol.io/lyra/core/events"
	"code.lyraprotocol.io/lyra/core/liquidation"
	"code.lyraprotocol.io/lyra/core/oracle"
	"code.lyraprotocol.io/lyra/core/risk"
	"code.lyraprotocol.io/lyra/core/types"
	"code.lyraprotocol.io/lyra/libs/num"
	"code.lyraprotocol.io/lyra/logging"
	"code.lyraprotocol.io/lyra/metrics"
)

// Registry is the read-only collateral asset registry.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks code.lyraprotocol.io/lyra/core/cdp Registry,Vault,DebtLedger
type Registry interface {
	IsRegistered(asset string) bool
	Assets() []string
	Adapter(asset string) (*oracle.Adapter, error)
}

// Vault is the collateral vault engine.
type Vault interface {
	Deposit(ctx context.Context, party, asset string, amount *num.Uint) error
	Redeem(ctx context.Context, asset string, amount *num.Uint, from, to string) error
	Balance(party, asset string) *num.Uint
}

// DebtLedger is the minted-debt ledger.
type DebtLedger interface {
	Debt(party string) *num.Uint
	IncreaseDebt(party string, amount *num.Uint) error
	DecreaseDebt(party string, amount *num.Uint) error
	MintExternal(ctx context.Context, to string, amount *num.Uint) error
	BurnExternal(ctx context.Context, payer string, amount *num.Uint) error
}

// Engine is the composition root of the debt engine. It owns the
// collateral vault, the debt ledger and the liquidation engine, exposes
// the public operation set and enforces ordering, atomicity and the
// global solvency rule.
type Engine struct {
	Config
	log *logging.Logger

	registry   Registry
	vault      Vault
	ledger     DebtLedger
	liquidator *liquidation.Engine
	broker     broker.Interface

	// serializes all operations against the shared ledgers
	mu sync.Mutex
	// set for the whole of every mutating operation, including external
	// transfers. A reentrant call from a transfer callback observes it
	// before reaching the lock and is rejected instead of deadlocking.
	inProgress atomic.Bool
}

// New instantiates the debt engine and wires the liquidation engine
// against its own solvency view.
func New(log *logging.Logger, cfg Config, liqCfg liquidation.Config, registry Registry, vault Vault, ledger DebtLedger, broker broker.Interface) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	e := &Engine{
		Config:   cfg,
		log:      log,
		registry: registry,
		vault:    vault,
		ledger:   ledger,
		broker:   broker,
	}
	e.liquidator = liquidation.New(log, liqCfg, registry, vault, ledger, solvencyView{e}, broker)
	return e
}

// ReloadConf updates the internal configuration of the engine and of the
// owned liquidation engine.
func (e *Engine) ReloadConf(cfg Config, liqCfg liquidation.Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	e.Config = cfg
	e.liquidator.ReloadConf(liqCfg)
}

// begin acquires the engine for one mutating operation. The returned
// release must run on every exit path. The flag cannot tell a reentrant
// callback from a concurrent caller racing an in-flight external
// transfer, both get ErrReentrantCall and the latter may retry. Callers
// blocked on the mutex itself still serialize as usual.
func (e *Engine) begin() (func(), error) {
	if e.inProgress.Load() {
		return nil, ErrReentrantCall
	}
	e.mu.Lock()
	e.inProgress.Store(true)
	return func() {
		e.inProgress.Store(false)
		e.mu.Unlock()
	}, nil
}

// Deposit credits the party with collateral pulled from its wallet. A
// deposit alone can only improve solvency, no health check applies.
func (e *Engine) Deposit(ctx context.Context, party, asset string, amount *num.Uint) (err error) {
	release, err := e.begin()
	if err != nil {
		return err
	}
	defer release()
	defer metrics.NewTimeCounter("cdp", "Deposit").EngineTimeCounterAdd()
	defer func() { incOperation("deposit", err) }()

	return e.vault.Deposit(ctx, party, asset, amount)
}

// Mint issues debtAmount of debt tokens to the party, provided the
// post-mint health factor meets the minimum.
func (e *Engine) Mint(ctx context.Context, party string, amount *num.Uint) (err error) {
	release, err := e.begin()
	if err != nil {
		return err
	}
	defer release()
	defer metrics.NewTimeCounter("cdp", "Mint").EngineTimeCounterAdd()
	defer func() { incOperation("mint", err) }()

	return e.mint(ctx, party, amount)
}

func (e *Engine) mint(ctx context.Context, party string, amount *num.Uint) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	// the solvency check runs against the post-mint debt
	value, err := e.collateralValueUSD(party)
	if err != nil {
		return err
	}
	debtAfter := num.Sum(e.ledger.Debt(party), amount)
	if hf := risk.HealthFactor(value, debtAfter); !risk.Healthy(hf) {
		return &SolvencyError{Party: party, HealthFactor: hf}
	}

	if err := e.ledger.IncreaseDebt(party, amount); err != nil {
		return err
	}
	if err := e.ledger.MintExternal(ctx, party, amount); err != nil {
		if uerr := e.ledger.DecreaseDebt(party, amount); uerr != nil {
			e.log.Panic("failed to unwind debt increase", logging.Error(uerr))
		}
		return err
	}

	e.broker.Send(events.NewDebtMintedEvent(ctx, party, amount))
	return nil
}

// DepositAndMint deposits collateral and mints debt as one atomic
// operation, with the solvency check applied once, over the state both
// steps produce.
func (e *Engine) DepositAndMint(ctx context.Context, party, asset string, collateralAmount, debtAmount *num.Uint) (err error) {
	release, err := e.begin()
	if err != nil {
		return err
	}
	defer release()
	defer metrics.NewTimeCounter("cdp", "DepositAndMint").EngineTimeCounterAdd()
	defer func() { incOperation("deposit_and_mint", err) }()

	if collateralAmount == nil || collateralAmount.IsZero() || debtAmount == nil || debtAmount.IsZero() {
		return ErrInvalidAmount
	}
	adapter, err := e.registry.Adapter(asset)
	if err != nil {
		return err
	}
	price, decimals, err := adapter.Price()
	if err != nil {
		return err
	}

	// validate the final state of the composite before mutating anything:
	// current value plus the deposit, current debt plus the mint
	value, err := e.collateralValueUSD(party)
	if err != nil {
		return err
	}
	value.AddSum(risk.UsdValue(price, decimals, collateralAmount))
	debtAfter := num.Sum(e.ledger.Debt(party), debtAmount)
	if hf := risk.HealthFactor(value, debtAfter); !risk.Healthy(hf) {
		return &SolvencyError{Party: party, HealthFactor: hf}
	}

	if err := e.vault.Deposit(ctx, party, asset, collateralAmount); err != nil {
		return err
	}
	if err := e.ledger.IncreaseDebt(party, debtAmount); err != nil {
		e.unwindDeposit(ctx, party, asset, collateralAmount)
		return err
	}
	if err := e.ledger.MintExternal(ctx, party, debtAmount); err != nil {
		if uerr := e.ledger.DecreaseDebt(party, debtAmount); uerr != nil {
			e.log.Panic("failed to unwind debt increase", logging.Error(uerr))
		}
		e.unwindDeposit(ctx, party, asset, collateralAmount)
		return err
	}

	e.broker.Send(events.NewDebtMintedEvent(ctx, party, debtAmount))
	return nil
}

// Redeem returns amount of deposited collateral to the party, provided
// the remaining position stays solvent.
func (e *Engine) Redeem(ctx context.Context, party, asset string, amount *num.Uint) (err error) {
	release, err := e.begin()
	if err != nil {
		return err
	}
	defer release()
	defer metrics.NewTimeCounter("cdp", "Redeem").EngineTimeCounterAdd()
	defer func() { incOperation("redeem", err) }()

	if err := e.checkRedeemSolvent(party, asset, amount, num.UintZero()); err != nil {
		return err
	}
	return e.vault.Redeem(ctx, asset, amount, party, party)
}

// Burn repays amount of the party's debt, funded by the party itself. A
// partial repayment must leave the position solvent, only clearing the
// debt in full lifts that requirement.
func (e *Engine) Burn(ctx context.Context, party string, amount *num.Uint) (err error) {
	release, err := e.begin()
	if err != nil {
		return err
	}
	defer release()
	defer metrics.NewTimeCounter("cdp", "Burn").EngineTimeCounterAdd()
	defer func() { incOperation("burn", err) }()

	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	owed := e.ledger.Debt(party)
	if owed.LT(amount) {
		return fmt.Errorf("%w: cannot burn %s for party %s", debt.ErrInsufficientDebt, amount, party)
	}
	value, err := e.collateralValueUSD(party)
	if err != nil {
		return err
	}
	owed.Sub(owed, amount)
	if hf := risk.HealthFactor(value, owed); !risk.Healthy(hf) {
		return &SolvencyError{Party: party, HealthFactor: hf}
	}

	if err := e.ledger.DecreaseDebt(party, amount); err != nil {
		e.log.Panic("failed to decrease checked debt", logging.Error(err))
	}
	if err := e.ledger.BurnExternal(ctx, party, amount); err != nil {
		if uerr := e.ledger.IncreaseDebt(party, amount); uerr != nil {
			e.log.Panic("failed to unwind debt decrease", logging.Error(uerr))
		}
		return err
	}

	e.broker.Send(events.NewDebtBurnedEvent(ctx, party, party, amount))
	return nil
}

// RedeemAndBurn burns debt and redeems collateral as one atomic
// operation. Debt is settled before the collateral leaves the vault, so
// the solvency rule is checked against the reduced collateral base.
func (e *Engine) RedeemAndBurn(ctx context.Context, party, asset string, collateralAmount, debtAmount *num.Uint) (err error) {
	release, err := e.begin()
	if err != nil {
		return err
	}
	defer release()
	defer metrics.NewTimeCounter("cdp", "RedeemAndBurn").EngineTimeCounterAdd()
	defer func() { incOperation("redeem_and_burn", err) }()

	if collateralAmount == nil || collateralAmount.IsZero() || debtAmount == nil || debtAmount.IsZero() {
		return ErrInvalidAmount
	}
	if e.ledger.Debt(party).LT(debtAmount) {
		return fmt.Errorf("%w: cannot burn %s for party %s", debt.ErrInsufficientDebt, debtAmount, party)
	}
	if err := e.checkRedeemSolvent(party, asset, collateralAmount, debtAmount); err != nil {
		return err
	}

	if err := e.ledger.BurnExternal(ctx, party, debtAmount); err != nil {
		return err
	}
	if err := e.ledger.DecreaseDebt(party, debtAmount); err != nil {
		e.log.Panic("failed to decrease checked debt", logging.Error(err))
	}
	if err := e.vault.Redeem(ctx, asset, collateralAmount, party, party); err != nil {
		if uerr := e.ledger.IncreaseDebt(party, debtAmount); uerr != nil {
			e.log.Panic("failed to restore debt", logging.Error(uerr))
		}
		if uerr := e.ledger.MintExternal(ctx, party, debtAmount); uerr != nil {
			e.log.Panic("failed to refund burned debt tokens", logging.Error(uerr))
		}
		return err
	}

	e.broker.Send(events.NewDebtBurnedEvent(ctx, party, party, debtAmount))
	return nil
}

// Liquidate covers part of an undercollateralized target's debt on
// behalf of the liquidator, seizing collateral plus the bonus.
func (e *Engine) Liquidate(ctx context.Context, liquidator, target, asset string, debtToCover *num.Uint) (err error) {
	release, err := e.begin()
	if err != nil {
		return err
	}
	defer release()
	defer metrics.NewTimeCounter("cdp", "Liquidate").EngineTimeCounterAdd()
	defer func() { incOperation("liquidate", err) }()

	if err := e.liquidator.Liquidate(ctx, liquidator, target, asset, debtToCover); err != nil {
		return err
	}
	metrics.LiquidationCounterInc()
	return nil
}

// HealthFactor returns the party's current health factor at live oracle
// prices.
func (e *Engine) HealthFactor(party string) (*num.Uint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.healthFactor(party)
}

// CollateralValueUSD returns the Precision-scaled USD value of all the
// party's deposited collateral at live oracle prices.
func (e *Engine) CollateralValueUSD(party string) (*num.Uint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.collateralValueUSD(party)
}

// AccountInformation returns a read-only snapshot of the party's
// position.
func (e *Engine) AccountInformation(party string) (*types.AccountInformation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	value, err := e.collateralValueUSD(party)
	if err != nil {
		return nil, err
	}
	owed := e.ledger.Debt(party)
	balances := map[string]*num.Uint{}
	for _, asset := range e.registry.Assets() {
		if b := e.vault.Balance(party, asset); !b.IsZero() {
			balances[asset] = b
		}
	}
	return &types.AccountInformation{
		Party:              party,
		CollateralValueUSD: value,
		Debt:               owed,
		HealthFactor:       risk.HealthFactor(value, owed),
		Balances:           balances,
	}, nil
}

// checkRedeemSolvent validates the state a redemption (and optional debt
// burn) will produce, before any ledger is touched.
func (e *Engine) checkRedeemSolvent(party, asset string, amount, debtBurned *num.Uint) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	if !e.registry.IsRegistered(asset) {
		return fmt.Errorf("%w: %s", oracle.ErrAssetNotRegistered, asset)
	}
	if e.vault.Balance(party, asset).LT(amount) {
		return fmt.Errorf("%w: cannot redeem %s of %s for party %s", collateral.ErrInsufficientCollateral, amount, asset, party)
	}
	adapter, err := e.registry.Adapter(asset)
	if err != nil {
		return err
	}
	price, decimals, err := adapter.Price()
	if err != nil {
		return err
	}
	value, err := e.collateralValueUSD(party)
	if err != nil {
		return err
	}
	redeemed := risk.UsdValue(price, decimals, amount)
	// per-asset rounding can make the redeemed value nominally exceed the
	// total, clamp at zero
	remaining, neg := num.UintZero().Delta(value, redeemed)
	if neg {
		remaining = num.UintZero()
	}
	owed := e.ledger.Debt(party)
	owed.Sub(owed, debtBurned)
	if hf := risk.HealthFactor(remaining, owed); !risk.Healthy(hf) {
		return &SolvencyError{Party: party, HealthFactor: hf}
	}
	return nil
}

func (e *Engine) healthFactor(party string) (*num.Uint, error) {
	value, err := e.collateralValueUSD(party)
	if err != nil {
		return nil, err
	}
	return risk.HealthFactor(value, e.ledger.Debt(party)), nil
}

func (e *Engine) collateralValueUSD(party string) (*num.Uint, error) {
	total := num.UintZero()
	for _, asset := range e.registry.Assets() {
		balance := e.vault.Balance(party, asset)
		// zero balances contribute zero, skip the oracle round trip
		if balance.IsZero() {
			continue
		}
		adapter, err := e.registry.Adapter(asset)
		if err != nil {
			return nil, err
		}
		price, decimals, err := adapter.Price()
		if err != nil {
			return nil, err
		}
		total.AddSum(risk.UsdValue(price, decimals, balance))
	}
	return total, nil
}

// unwindDeposit returns a just-deposited amount to the party after a
// later step of a composite operation failed. A failure here would leave
// the ledgers inconsistent with external balances, there is no way to
// continue.
func (e *Engine) unwindDeposit(ctx context.Context, party, asset string, amount *num.Uint) {
	if err := e.vault.Redeem(ctx, asset, amount, party, party); err != nil {
		e.log.Panic("failed to unwind collateral deposit",
			logging.String("party", party),
			logging.String("asset", asset),
			logging.BigUint("amount", amount),
			logging.Error(err),
		)
	}
}

func incOperation(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.OperationCounterInc(op, outcome)
}

// solvencyView exposes the engine's valuation internals to the owned
// liquidation engine without going through the reentrancy guard.
type solvencyView struct {
	e *Engine
}

func (s solvencyView) HealthFactor(party string) (*num.Uint, error) {
	return s.e.healthFactor(party)
}

func (s solvencyView) CollateralValueUSD(party string) (*num.Uint, error) {
	return s.e.collateralValueUSD(party)
}
