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

package events

import (
	"context"
	"sync/atomic"
)

// Type is the type of event.
type Type int

const (
	// All event type -> used by subscribers to just receive all events.
	All Type = iota
	CollateralDepositedEvent
	CollateralRedeemedEvent
	DebtMintedEvent
	DebtBurnedEvent
	PositionLiquidatedEvent
)

var eventStrings = map[Type]string{
	All:                      "ALL",
	CollateralDepositedEvent: "CollateralDeposited",
	CollateralRedeemedEvent:  "CollateralRedeemed",
	DebtMintedEvent:          "DebtMinted",
	DebtBurnedEvent:          "DebtBurned",
	PositionLiquidatedEvent:  "PositionLiquidated",
}

func (t Type) String() string {
	s, ok := eventStrings[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}

// Event interface, implemented by all the events emitted by the engines.
type Event interface {
	Type() Type
	Context() context.Context
	Sequence() uint64
}

var eventSeq uint64

// Base common denominator all event-bus events share.
type Base struct {
	ctx context.Context
	t   Type
	seq uint64
}

func newBase(ctx context.Context, t Type) *Base {
	return &Base{
		ctx: ctx,
		t:   t,
		seq: atomic.AddUint64(&eventSeq, 1),
	}
}

// Type returns the event type.
func (b Base) Type() Type {
	return b.t
}

// Context returns the context the event was emitted with.
func (b Base) Context() context.Context {
	return b.ctx
}

// Sequence returns the global emission sequence of the event, used by
// downstream consumers to restore ordering.
func (b Base) Sequence() uint64 {
	return b.seq
}
