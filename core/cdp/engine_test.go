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

package cdp_test

import (
	"context"
	"testing"

	bmocks "code.lyraprotocol.io/lyra/core/broker/mocks"
	"code.lyraprotocol.io/lyra/core/cdp"
	"code.lyraprotocol.io/lyra/core/collateral"
	"code.lyraprotocol.io/lyra/core/debt"
	"code.lyraprotocol.io/lyra/core/liquidation"
	"code.lyraprotocol.io/lyra/core/oracle"
	"code.lyraprotocol.io/lyra/core/risk"
	"code.lyraprotocol.io/lyra/core/stubs"
	"code.lyraprotocol.io/lyra/libs/num"
	"code.lyraprotocol.io/lyra/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEngine struct {
	*cdp.Engine
	ctrl   *gomock.Controller
	vault  *collateral.Engine
	ledger *debt.Ledger
	wallet *stubs.WalletStub
	token  *stubs.TokenStub
	price  *stubs.PriceStub
}

// getTestEngine wires a full engine over in-memory externals, with WETH
// as the only collateral asset at $2000 on an 8 decimal feed.
func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	broker := bmocks.NewMockInterface(ctrl)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()
	broker.EXPECT().SendBatch(gomock.Any()).AnyTimes()

	log := logging.NewTestLogger()
	price := stubs.NewPriceStub("WETH", num.NewUint(2000_00000000), 8)
	registry, err := oracle.NewRegistry([]string{"WETH"}, []oracle.PriceSource{price})
	require.NoError(t, err)

	wallet := stubs.NewWalletStub()
	token := stubs.NewTokenStub()
	vault := collateral.New(log, collateral.NewDefaultConfig(), registry, wallet, broker)
	ledger := debt.New(log, debt.NewDefaultConfig(), token)
	eng := cdp.New(log, cdp.NewDefaultConfig(), liquidation.NewDefaultConfig(), registry, vault, ledger, broker)

	return &testEngine{
		Engine: eng,
		ctrl:   ctrl,
		vault:  vault,
		ledger: ledger,
		wallet: wallet,
		token:  token,
		price:  price,
	}
}

// unit returns n whole units of an 18 decimal amount.
func unit(n uint64) *num.Uint {
	return num.UintZero().Mul(num.NewUint(n), risk.Precision())
}

func TestDepositAndMint(t *testing.T) {
	t.Run("Minting at the borrowing limit succeeds", testDepositAndMintAtLimit)
	t.Run("Minting above the borrowing limit fails atomically", testDepositAndMintOverLimit)
	t.Run("Invalid amounts are rejected", testDepositAndMintInvalidAmount)
}

func testDepositAndMintAtLimit(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	// 10 units at $2000 are worth $20000, the 50% threshold caps
	// borrowing at $10000
	eng.wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.DepositAndMint(ctx, "alice", "WETH", unit(10), unit(10000)))

	assert.True(t, unit(10).EQ(eng.vault.Balance("alice", "WETH")))
	assert.True(t, unit(10000).EQ(eng.ledger.Debt("alice")))
	assert.True(t, unit(10000).EQ(eng.token.BalanceOf("alice")))
	assert.True(t, eng.wallet.Balance("alice", "WETH").IsZero())

	hf, err := eng.HealthFactor("alice")
	require.NoError(t, err)
	assert.True(t, risk.MinHealthFactor().EQ(hf), "expected 1.0, got %s", hf)
}

func testDepositAndMintOverLimit(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.wallet.Fund("alice", "WETH", unit(10))
	overMax := num.Sum(unit(10000), num.UintOne())

	err := eng.DepositAndMint(ctx, "alice", "WETH", unit(10), overMax)
	require.Error(t, err)
	assert.ErrorIs(t, err, cdp.ErrHealthFactorBreached)

	var solvErr *cdp.SolvencyError
	require.ErrorAs(t, err, &solvErr)
	assert.Equal(t, "alice", solvErr.Party)
	assert.True(t, solvErr.HealthFactor.LT(risk.MinHealthFactor()))

	// the composite failed before any mutation
	assert.True(t, unit(10).EQ(eng.wallet.Balance("alice", "WETH")))
	assert.True(t, eng.vault.Balance("alice", "WETH").IsZero())
	assert.True(t, eng.ledger.Debt("alice").IsZero())
	assert.True(t, eng.token.BalanceOf("alice").IsZero())
}

func testDepositAndMintInvalidAmount(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	assert.ErrorIs(t, eng.DepositAndMint(ctx, "alice", "WETH", num.UintZero(), unit(1)), cdp.ErrInvalidAmount)
	assert.ErrorIs(t, eng.DepositAndMint(ctx, "alice", "WETH", unit(1), nil), cdp.ErrInvalidAmount)
}

func TestMint(t *testing.T) {
	t.Run("Minting against deposited collateral succeeds", testMintOK)
	t.Run("Minting without collateral fails", testMintNoCollateral)
}

func testMintOK(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.Deposit(ctx, "alice", "WETH", unit(10)))
	require.NoError(t, eng.Mint(ctx, "alice", unit(4000)))
	require.NoError(t, eng.Mint(ctx, "alice", unit(6000)))

	assert.True(t, unit(10000).EQ(eng.ledger.Debt("alice")))

	// the limit is spent, one more token breaches the health factor
	err := eng.Mint(ctx, "alice", num.UintOne())
	assert.ErrorIs(t, err, cdp.ErrHealthFactorBreached)
	assert.True(t, unit(10000).EQ(eng.ledger.Debt("alice")))
}

func testMintNoCollateral(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	err := eng.Mint(context.Background(), "alice", unit(1))
	assert.ErrorIs(t, err, cdp.ErrHealthFactorBreached)
}

func TestRedeem(t *testing.T) {
	t.Run("Full redemption with no debt succeeds", testRedeemNoDebt)
	t.Run("Redemption breaching solvency fails", testRedeemBreachesSolvency)
	t.Run("Redemption within the limit succeeds", testRedeemWithinLimit)
}

func testRedeemNoDebt(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.Deposit(ctx, "alice", "WETH", unit(10)))

	// even debt free, a party cannot redeem more than it deposited
	assert.ErrorIs(t, eng.Redeem(ctx, "alice", "WETH", unit(11)), collateral.ErrInsufficientCollateral)

	require.NoError(t, eng.Redeem(ctx, "alice", "WETH", unit(10)))
	assert.True(t, eng.vault.Balance("alice", "WETH").IsZero())
	assert.True(t, unit(10).EQ(eng.wallet.Balance("alice", "WETH")))
}

func testRedeemBreachesSolvency(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.DepositAndMint(ctx, "alice", "WETH", unit(10), unit(10000)))

	// at the borrowing limit every unit of collateral is load bearing
	err := eng.Redeem(ctx, "alice", "WETH", unit(1))
	assert.ErrorIs(t, err, cdp.ErrHealthFactorBreached)
	assert.True(t, unit(10).EQ(eng.vault.Balance("alice", "WETH")))
}

func testRedeemWithinLimit(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.DepositAndMint(ctx, "alice", "WETH", unit(10), unit(5000)))

	// $5000 of debt needs only 5 units of collateral
	require.NoError(t, eng.Redeem(ctx, "alice", "WETH", unit(5)))
	assert.True(t, unit(5).EQ(eng.vault.Balance("alice", "WETH")))
	assert.True(t, unit(5).EQ(eng.wallet.Balance("alice", "WETH")))
}

func TestBurn(t *testing.T) {
	t.Run("Burning repays debt and destroys tokens", testBurnOK)
	t.Run("Burning more than the debt fails", testBurnTooMuch)
	t.Run("Partial repayment of an underwater position fails", testBurnUnderwater)
}

func testBurnOK(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.DepositAndMint(ctx, "alice", "WETH", unit(10), unit(10000)))

	require.NoError(t, eng.Burn(ctx, "alice", unit(10000)))
	assert.True(t, eng.ledger.Debt("alice").IsZero())
	assert.True(t, eng.token.BalanceOf("alice").IsZero())
	assert.True(t, eng.token.TotalSupply().IsZero())

	// debt free, the whole deposit is redeemable again
	require.NoError(t, eng.Redeem(ctx, "alice", "WETH", unit(10)))
}

func testBurnTooMuch(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.DepositAndMint(ctx, "alice", "WETH", unit(10), unit(5000)))

	assert.ErrorIs(t, eng.Burn(ctx, "alice", unit(5001)), debt.ErrInsufficientDebt)
	assert.True(t, unit(5000).EQ(eng.ledger.Debt("alice")))
}

func testBurnUnderwater(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.DepositAndMint(ctx, "alice", "WETH", unit(10), unit(10000)))

	// the price halves, the position is deep underwater and a partial
	// repayment cannot restore it above the minimum
	eng.price.SetPrice(num.NewUint(1000_00000000))
	err := eng.Burn(ctx, "alice", unit(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, cdp.ErrHealthFactorBreached)
	assert.True(t, unit(10000).EQ(eng.ledger.Debt("alice")))
	assert.True(t, unit(10000).EQ(eng.token.BalanceOf("alice")))

	// clearing the debt in full is always allowed
	require.NoError(t, eng.Burn(ctx, "alice", unit(10000)))
	assert.True(t, eng.ledger.Debt("alice").IsZero())
	assert.True(t, eng.token.TotalSupply().IsZero())
}

func TestRedeemAndBurn(t *testing.T) {
	t.Run("Combined redemption and repayment succeeds", testRedeemAndBurnOK)
	t.Run("Burning above the debt fails atomically", testRedeemAndBurnTooMuchDebt)
}

func testRedeemAndBurnOK(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.DepositAndMint(ctx, "alice", "WETH", unit(10), unit(5000)))

	require.NoError(t, eng.RedeemAndBurn(ctx, "alice", "WETH", unit(5), unit(5000)))
	assert.True(t, unit(5).EQ(eng.vault.Balance("alice", "WETH")))
	assert.True(t, unit(5).EQ(eng.wallet.Balance("alice", "WETH")))
	assert.True(t, eng.ledger.Debt("alice").IsZero())
	assert.True(t, eng.token.BalanceOf("alice").IsZero())
}

func testRedeemAndBurnTooMuchDebt(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.DepositAndMint(ctx, "alice", "WETH", unit(10), unit(5000)))

	assert.ErrorIs(t, eng.RedeemAndBurn(ctx, "alice", "WETH", unit(5), unit(6000)), debt.ErrInsufficientDebt)
	assert.True(t, unit(10).EQ(eng.vault.Balance("alice", "WETH")))
	assert.True(t, unit(5000).EQ(eng.ledger.Debt("alice")))
}

func TestLiquidateEndToEnd(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	// bob borrows at the limit, then the price drops from $2000 to
	// $1900 and his health factor falls below the minimum
	eng.wallet.Fund("bob", "WETH", unit(1))
	require.NoError(t, eng.DepositAndMint(ctx, "bob", "WETH", unit(1), unit(1000)))

	eng.price.SetPrice(num.NewUint(1900_00000000))
	hf, err := eng.HealthFactor("bob")
	require.NoError(t, err)
	require.False(t, risk.Healthy(hf))

	// alice takes a comfortable position to obtain debt tokens
	eng.wallet.Fund("alice", "WETH", unit(2))
	require.NoError(t, eng.DepositAndMint(ctx, "alice", "WETH", unit(2), unit(500)))

	require.NoError(t, eng.Liquidate(ctx, "alice", "bob", "WETH", unit(500)))

	price := num.NewUint(1900_00000000)
	tokenAmount := risk.TokenAmountFromUsd(price, 8, unit(500))
	seized := num.Sum(tokenAmount, risk.BonusCollateral(tokenAmount))

	assert.True(t, unit(500).EQ(eng.ledger.Debt("bob")))
	assert.True(t, seized.EQ(eng.wallet.Balance("alice", "WETH")))
	assert.True(t, num.UintZero().Sub(unit(1), seized).EQ(eng.vault.Balance("bob", "WETH")))
	assert.True(t, eng.token.BalanceOf("alice").IsZero())

	// the seizure restored bob above the minimum, no further
	// liquidation is possible
	hf, err = eng.HealthFactor("bob")
	require.NoError(t, err)
	require.True(t, risk.Healthy(hf))
	assert.ErrorIs(t, eng.Liquidate(ctx, "alice", "bob", "WETH", unit(100)), liquidation.ErrHealthFactorOk)
}

func TestAccountInformation(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.DepositAndMint(ctx, "alice", "WETH", unit(10), unit(5000)))

	info, err := eng.AccountInformation("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Party)
	assert.True(t, unit(20000).EQ(info.CollateralValueUSD))
	assert.True(t, unit(5000).EQ(info.Debt))
	assert.True(t, risk.Healthy(info.HealthFactor))
	require.Contains(t, info.Balances, "WETH")
	assert.True(t, unit(10).EQ(info.Balances["WETH"]))

	// a party with no debt is maximally healthy
	info, err = eng.AccountInformation("bob")
	require.NoError(t, err)
	assert.True(t, risk.MaxHealthFactor().EQ(info.HealthFactor))
	assert.Empty(t, info.Balances)
}

// reentrantController re-enters the engine from inside the mint
// callback, the way a malicious token contract would.
type reentrantController struct {
	eng *cdp.Engine
}

func (c *reentrantController) Mint(ctx context.Context, to string, amount *num.Uint) error {
	return c.eng.Deposit(ctx, to, "WETH", amount)
}

func (c *reentrantController) PullAndBurn(ctx context.Context, payer string, amount *num.Uint) error {
	return c.eng.Burn(ctx, payer, amount)
}

func TestReentrancyGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	broker := bmocks.NewMockInterface(ctrl)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()
	broker.EXPECT().SendBatch(gomock.Any()).AnyTimes()

	log := logging.NewTestLogger()
	price := stubs.NewPriceStub("WETH", num.NewUint(2000_00000000), 8)
	registry, err := oracle.NewRegistry([]string{"WETH"}, []oracle.PriceSource{price})
	require.NoError(t, err)

	controller := &reentrantController{}
	wallet := stubs.NewWalletStub()
	vault := collateral.New(log, collateral.NewDefaultConfig(), registry, wallet, broker)
	ledger := debt.New(log, debt.NewDefaultConfig(), controller)
	eng := cdp.New(log, cdp.NewDefaultConfig(), liquidation.NewDefaultConfig(), registry, vault, ledger, broker)
	controller.eng = eng

	ctx := context.Background()
	wallet.Fund("alice", "WETH", unit(10))
	require.NoError(t, eng.Deposit(ctx, "alice", "WETH", unit(10)))

	// the mint callback tries to deposit, the guard rejects it and the
	// whole mint unwinds
	err = eng.Mint(ctx, "alice", unit(100))
	require.Error(t, err)
	assert.ErrorIs(t, err, cdp.ErrReentrantCall)
	assert.True(t, ledger.Debt("alice").IsZero())
}
