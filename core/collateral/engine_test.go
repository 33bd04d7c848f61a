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

package collateral_test

import (
	"context"
	"errors"
	"testing"

	bmocks "code.lyraprotocol.io/lyra/core/broker/mocks"
	"code.lyraprotocol.io/lyra/core/collateral"
	"code.lyraprotocol.io/lyra/core/collateral/mocks"
	"code.lyraprotocol.io/lyra/core/events"
	"code.lyraprotocol.io/lyra/libs/num"
	"code.lyraprotocol.io/lyra/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEngine struct {
	*collateral.Engine
	ctrl     *gomock.Controller
	registry *mocks.MockRegistry
	source   *mocks.MockAssetSource
	broker   *bmocks.MockInterface
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)
	source := mocks.NewMockAssetSource(ctrl)
	broker := bmocks.NewMockInterface(ctrl)

	eng := collateral.New(
		logging.NewTestLogger(),
		collateral.NewDefaultConfig(),
		registry,
		source,
		broker,
	)
	return &testEngine{
		Engine:   eng,
		ctrl:     ctrl,
		registry: registry,
		source:   source,
		broker:   broker,
	}
}

func TestDeposit(t *testing.T) {
	t.Run("Deposit credits the balance and pulls the tokens", testDepositOK)
	t.Run("Deposits accumulate per party and asset", testDepositAccumulates)
	t.Run("Deposit of unregistered asset fails", testDepositUnregistered)
	t.Run("Deposit with invalid amount fails", testDepositInvalidAmount)
	t.Run("Failed pull leaves no balance behind", testDepositPullFails)
}

func testDepositOK(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.registry.EXPECT().IsRegistered("WETH").Times(1).Return(true)
	eng.source.EXPECT().Pull(gomock.Any(), "WETH", "alice", gomock.Any()).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(1).Do(func(e events.Event) {
		dep, ok := e.(*events.CollateralDeposited)
		require.True(t, ok)
		assert.Equal(t, "alice", dep.Party())
		assert.Equal(t, "WETH", dep.Asset())
		assert.True(t, num.NewUint(100).EQ(dep.Amount()))
	})

	require.NoError(t, eng.Deposit(ctx, "alice", "WETH", num.NewUint(100)))
	assert.True(t, num.NewUint(100).EQ(eng.Balance("alice", "WETH")))
}

func testDepositAccumulates(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.registry.EXPECT().IsRegistered(gomock.Any()).AnyTimes().Return(true)
	eng.source.EXPECT().Pull(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).AnyTimes()

	require.NoError(t, eng.Deposit(ctx, "alice", "WETH", num.NewUint(100)))
	require.NoError(t, eng.Deposit(ctx, "alice", "WETH", num.NewUint(50)))
	require.NoError(t, eng.Deposit(ctx, "alice", "WBTC", num.NewUint(7)))
	require.NoError(t, eng.Deposit(ctx, "bob", "WETH", num.NewUint(3)))

	assert.True(t, num.NewUint(150).EQ(eng.Balance("alice", "WETH")))
	assert.True(t, num.NewUint(7).EQ(eng.Balance("alice", "WBTC")))
	assert.True(t, num.NewUint(3).EQ(eng.Balance("bob", "WETH")))

	balances := eng.Balances("alice")
	require.Len(t, balances, 2)
	assert.True(t, num.NewUint(150).EQ(balances["WETH"]))
	assert.True(t, num.NewUint(7).EQ(balances["WBTC"]))
	assert.Empty(t, eng.Balances("carol"))
}

func testDepositUnregistered(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.registry.EXPECT().IsRegistered("DOGE").Times(1).Return(false)

	err := eng.Deposit(context.Background(), "alice", "DOGE", num.NewUint(100))
	assert.Error(t, err)
	assert.True(t, eng.Balance("alice", "DOGE").IsZero())
}

func testDepositInvalidAmount(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	assert.ErrorIs(t, eng.Deposit(ctx, "alice", "WETH", num.UintZero()), collateral.ErrInvalidAmount)
	assert.ErrorIs(t, eng.Deposit(ctx, "alice", "WETH", nil), collateral.ErrInvalidAmount)
}

func testDepositPullFails(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.registry.EXPECT().IsRegistered("WETH").Times(1).Return(true)
	eng.source.EXPECT().Pull(gomock.Any(), "WETH", "alice", gomock.Any()).Times(1).
		Return(errors.New("wallet empty"))

	err := eng.Deposit(context.Background(), "alice", "WETH", num.NewUint(100))
	assert.Error(t, err)
	assert.True(t, eng.Balance("alice", "WETH").IsZero())
}

func TestRedeem(t *testing.T) {
	t.Run("Redeem debits the balance and pushes the tokens", testRedeemOK)
	t.Run("Redeem to a third party pays that party", testRedeemToOtherParty)
	t.Run("Redeem beyond the balance fails", testRedeemInsufficient)
	t.Run("Failed push restores the balance", testRedeemPushFails)
}

func testRedeemOK(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.registry.EXPECT().IsRegistered("WETH").AnyTimes().Return(true)
	eng.source.EXPECT().Pull(gomock.Any(), "WETH", "alice", gomock.Any()).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(1)
	require.NoError(t, eng.Deposit(ctx, "alice", "WETH", num.NewUint(100)))

	eng.source.EXPECT().Push(gomock.Any(), "WETH", "alice", gomock.Any()).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(1).Do(func(e events.Event) {
		red, ok := e.(*events.CollateralRedeemed)
		require.True(t, ok)
		assert.Equal(t, "alice", red.From())
		assert.Equal(t, "alice", red.To())
		assert.True(t, num.NewUint(40).EQ(red.Amount()))
	})

	require.NoError(t, eng.Redeem(ctx, "WETH", num.NewUint(40), "alice", "alice"))
	assert.True(t, num.NewUint(60).EQ(eng.Balance("alice", "WETH")))
}

func testRedeemToOtherParty(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.registry.EXPECT().IsRegistered("WETH").AnyTimes().Return(true)
	eng.source.EXPECT().Pull(gomock.Any(), "WETH", "alice", gomock.Any()).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).AnyTimes()
	require.NoError(t, eng.Deposit(ctx, "alice", "WETH", num.NewUint(100)))

	// a liquidation seizure pays the liquidator, not the position owner
	eng.source.EXPECT().Push(gomock.Any(), "WETH", "bob", gomock.Any()).Times(1).Return(nil)

	require.NoError(t, eng.Redeem(ctx, "WETH", num.NewUint(100), "alice", "bob"))
	assert.True(t, eng.Balance("alice", "WETH").IsZero())
}

func testRedeemInsufficient(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.registry.EXPECT().IsRegistered("WETH").AnyTimes().Return(true)
	eng.source.EXPECT().Pull(gomock.Any(), "WETH", "alice", gomock.Any()).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(1)
	require.NoError(t, eng.Deposit(ctx, "alice", "WETH", num.NewUint(100)))

	err := eng.Redeem(ctx, "WETH", num.NewUint(101), "alice", "alice")
	assert.ErrorIs(t, err, collateral.ErrInsufficientCollateral)
	assert.True(t, num.NewUint(100).EQ(eng.Balance("alice", "WETH")))
}

func testRedeemPushFails(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.registry.EXPECT().IsRegistered("WETH").AnyTimes().Return(true)
	eng.source.EXPECT().Pull(gomock.Any(), "WETH", "alice", gomock.Any()).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(1)
	require.NoError(t, eng.Deposit(ctx, "alice", "WETH", num.NewUint(100)))

	eng.source.EXPECT().Push(gomock.Any(), "WETH", "alice", gomock.Any()).Times(1).
		Return(errors.New("chain halted"))

	err := eng.Redeem(ctx, "WETH", num.NewUint(40), "alice", "alice")
	assert.Error(t, err)
	assert.True(t, num.NewUint(100).EQ(eng.Balance("alice", "WETH")))
}
