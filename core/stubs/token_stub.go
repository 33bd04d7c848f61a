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

// TokenStub is an in-memory stand-in for the debt token contract. It
// tracks holder balances and the total supply.
type TokenStub struct {
	mu       sync.Mutex
	balances map[string]*num.Uint
	supply   *num.Uint
}

func NewTokenStub() *TokenStub {
	return &TokenStub{
		balances: map[string]*num.Uint{},
		supply:   num.UintZero(),
	}
}

// Mint issues amount of tokens to the holder, failing on an empty
// recipient or a zero amount the way the real contract would.
func (t *TokenStub) Mint(_ context.Context, to string, amount *num.Uint) error {
	if to == "" {
		return fmt.Errorf("cannot mint to an empty holder")
	}
	if amount == nil || amount.IsZero() {
		return fmt.Errorf("cannot mint a zero amount")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	balance, ok := t.balances[to]
	if !ok {
		t.balances[to] = amount.Clone()
	} else {
		balance.AddSum(amount)
	}
	t.supply.AddSum(amount)
	return nil
}

// PullAndBurn destroys amount of the payer's tokens, failing when the
// payer holds less than amount.
func (t *TokenStub) PullAndBurn(_ context.Context, payer string, amount *num.Uint) error {
	if payer == "" {
		return fmt.Errorf("cannot burn from an empty holder")
	}
	if amount == nil || amount.IsZero() {
		return fmt.Errorf("cannot burn a zero amount")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	balance, ok := t.balances[payer]
	if !ok || balance.LT(amount) {
		return fmt.Errorf("holder %s has insufficient tokens to burn", payer)
	}
	balance.Sub(balance, amount)
	t.supply.Sub(t.supply, amount)
	return nil
}

// BalanceOf returns a copy of the holder's token balance.
func (t *TokenStub) BalanceOf(holder string) *num.Uint {
	t.mu.Lock()
	defer t.mu.Unlock()

	balance, ok := t.balances[holder]
	if !ok {
		return num.UintZero()
	}
	return balance.Clone()
}

// TotalSupply returns a copy of the current total supply.
func (t *TokenStub) TotalSupply() *num.Uint {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.supply.Clone()
}
