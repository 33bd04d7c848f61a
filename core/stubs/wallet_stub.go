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

package stubs

import (
	"context"
	"fmt"
	"sync"

	"code.lyraprotocol.io/lyra/libs/num"
)

// WalletStub is an in-memory stand-in for the external asset chain. It
// tracks per-party wallet balances for any number of assets and settles
// pulls and pushes against them.
type WalletStub struct {
	mu       sync.Mutex
	balances map[string]map[string]*num.Uint
}

func NewWalletStub() *WalletStub {
	return &WalletStub{
		balances: map[string]map[string]*num.Uint{},
	}
}

// Fund credits a party's wallet with amount of asset.
func (w *WalletStub) Fund(party, asset string, amount *num.Uint) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.credit(party, asset, amount)
}

// Pull debits from's wallet, failing when the wallet holds less than
// amount.
func (w *WalletStub) Pull(_ context.Context, asset, from string, amount *num.Uint) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	balance, ok := w.balances[from][asset]
	if !ok || balance.LT(amount) {
		return fmt.Errorf("wallet %s holds insufficient %s", from, asset)
	}
	balance.Sub(balance, amount)
	return nil
}

// Push credits to's wallet.
func (w *WalletStub) Push(_ context.Context, asset, to string, amount *num.Uint) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.credit(to, asset, amount)
	return nil
}

// Balance returns a copy of the party's wallet balance for asset.
func (w *WalletStub) Balance(party, asset string) *num.Uint {
	w.mu.Lock()
	defer w.mu.Unlock()

	balance, ok := w.balances[party][asset]
	if !ok {
		return num.UintZero()
	}
	return balance.Clone()
}

func (w *WalletStub) credit(party, asset string, amount *num.Uint) {
	wallet, ok := w.balances[party]
	if !ok {
		wallet = map[string]*num.Uint{}
		w.balances[party] = wallet
	}
	balance, ok := wallet[asset]
	if !ok {
		wallet[asset] = amount.Clone()
		return
	}
	balance.AddSum(amount)
}
