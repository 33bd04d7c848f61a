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
	"errors"
	"fmt"

	"code.lyraprotocol.io/lyra/libs/num"
)

var (
	// ErrInvalidAmount is returned for nil or zero amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrReentrantCall is returned when a mutating operation is invoked
	// while another one is in flight, typically re-entered from an
	// external asset-transfer callback. A concurrent caller racing the
	// in-progress flag gets the same error, the operation had no effect
	// and can be retried once the in-flight one completes.
	ErrReentrantCall = errors.New("operation in progress, call rejected")
	// ErrHealthFactorBreached is the sentinel all solvency violations
	// match with errors.Is.
	ErrHealthFactorBreached = errors.New("health factor below minimum")
)

// SolvencyError is returned when an operation would leave, or found, a
// position below the minimum health factor. It carries the computed
// health factor for diagnosis and matches ErrHealthFactorBreached.
type SolvencyError struct {
	Party        string
	HealthFactor *num.Uint
}

func (e *SolvencyError) Error() string {
	return fmt.Sprintf("health factor below minimum: party %s, health factor %s", e.Party, e.HealthFactor)
}

func (e *SolvencyError) Is(target error) bool {
	return target == ErrHealthFactorBreached
}
