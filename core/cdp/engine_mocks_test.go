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
	"errors"
	"testing"

	bmocks "code.lyraprotocol.io/lyra/core/broker/mocks"
	"code.lyraprotocol.io/lyra/core/cdp"
	"code.lyraprotocol.io/lyra/core/cdp/mocks"
	"code.lyraprotocol.io/lyra/core/liquidation"
	"code.lyraprotocol.io/lyra/core/oracle"
	omocks "code.lyraprotocol.io/lyra/core/oracle/mocks"
	"code.lyraprotocol.io/lyra/libs/num"
	"code.lyraprotocol.io/lyra/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// mockedEngine isolates the composition root from the real sub-engines,
// so failure injection and call ordering can be asserted directly.
type mockedEngine struct {
	*cdp.Engine
	ctrl     *gomock.Controller
	registry *mocks.MockRegistry
	vault    *mocks.MockVault
	ledger   *mocks.MockDebtLedger
}

// getMockedEngine wires the engine over mocked collaborators, with a
// $2000, 8 decimal price feed behind the registry adapter.
func getMockedEngine(t *testing.T) *mockedEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)
	vault := mocks.NewMockVault(ctrl)
	ledger := mocks.NewMockDebtLedger(ctrl)
	broker := bmocks.NewMockInterface(ctrl)

	src := omocks.NewMockPriceSource(ctrl)
	src.EXPECT().LatestPrice("WETH").AnyTimes().
		Return(num.NewUint(2000_00000000), uint8(8), nil)
	adapter := oracle.NewAdapter("WETH", src)
	registry.EXPECT().Adapter("WETH").AnyTimes().Return(adapter, nil)

	eng := cdp.New(
		logging.NewTestLogger(),
		cdp.NewDefaultConfig(),
		liquidation.NewDefaultConfig(),
		registry,
		vault,
		ledger,
		broker,
	)
	return &mockedEngine{
		Engine:   eng,
		ctrl:     ctrl,
		registry: registry,
		vault:    vault,
		ledger:   ledger,
	}
}

func TestCompositeUnwind(t *testing.T) {
	t.Run("Failed token mint unwinds debt and deposit", testDepositAndMintUnwindsOnMintFailure)
	t.Run("Failed debt increase unwinds the deposit", testDepositAndMintUnwindsOnDebtFailure)
}

func testDepositAndMintUnwindsOnMintFailure(t *testing.T) {
	eng := getMockedEngine(t)
	defer eng.ctrl.Finish()

	deposit := unit(10)
	debtAmount := unit(10000)

	eng.registry.EXPECT().Assets().Times(1).Return([]string{"WETH"})
	eng.vault.EXPECT().Balance("alice", "WETH").Times(1).Return(num.UintZero())
	eng.ledger.EXPECT().Debt("alice").Times(1).Return(num.UintZero())

	eng.vault.EXPECT().Deposit(gomock.Any(), "alice", "WETH", deposit).Times(1).Return(nil)
	eng.ledger.EXPECT().IncreaseDebt("alice", debtAmount).Times(1).Return(nil)
	eng.ledger.EXPECT().MintExternal(gomock.Any(), "alice", debtAmount).Times(1).
		Return(errors.New("token mint rejected"))

	// both previous mutations roll back, the deposit back to the wallet
	eng.ledger.EXPECT().DecreaseDebt("alice", debtAmount).Times(1).Return(nil)
	eng.vault.EXPECT().Redeem(gomock.Any(), "WETH", deposit, "alice", "alice").Times(1).Return(nil)

	err := eng.DepositAndMint(context.Background(), "alice", "WETH", deposit, debtAmount)
	require.Error(t, err)
}

func testDepositAndMintUnwindsOnDebtFailure(t *testing.T) {
	eng := getMockedEngine(t)
	defer eng.ctrl.Finish()

	deposit := unit(10)
	debtAmount := unit(10000)

	eng.registry.EXPECT().Assets().Times(1).Return([]string{"WETH"})
	eng.vault.EXPECT().Balance("alice", "WETH").Times(1).Return(num.UintZero())
	eng.ledger.EXPECT().Debt("alice").Times(1).Return(num.UintZero())

	eng.vault.EXPECT().Deposit(gomock.Any(), "alice", "WETH", deposit).Times(1).Return(nil)
	eng.ledger.EXPECT().IncreaseDebt("alice", debtAmount).Times(1).
		Return(errors.New("ledger rejected increase"))
	eng.vault.EXPECT().Redeem(gomock.Any(), "WETH", deposit, "alice", "alice").Times(1).Return(nil)

	err := eng.DepositAndMint(context.Background(), "alice", "WETH", deposit, debtAmount)
	require.Error(t, err)
}
