// Copyright (C) 2024 Zephyr Labs Limited
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

package accounting_test

import (
	"testing"

	"code.zephyrlabs.dev/premarket/core/accounting"
	"code.zephyrlabs.dev/premarket/core/types"
	"code.zephyrlabs.dev/premarket/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositCollateral(t *testing.T) {
	t.Run("Ask maker is leveraged by the collateral rate", testDepositAskMakerLeveraged)
	t.Run("Bid maker deposits the quote amount one to one", testDepositBidMakerFlat)
	t.Run("Ask taker deposits the quote amount one to one", testDepositAskTakerFlat)
	t.Run("Bid taker is leveraged by the collateral rate", testDepositBidTakerLeveraged)
	t.Run("Fractional deposits round in the requested direction", testDepositRounding)
}

func TestRefundCollateral(t *testing.T) {
	t.Run("Untouched offers refund the full deposit", testRefundUntouched)
	t.Run("Used quote rounds up so the refund rounds down", testRefundPartialUse)
	t.Run("Fully used offers refund nothing", testRefundFullyUsed)
	t.Run("Refund never exceeds the matching deposit", testRefundNeverExceedsDeposit)
}

func testDepositAskMakerLeveraged(t *testing.T) {
	rate := num.NewUint(12000) // 120%
	amount := num.NewUint(1000)

	got := accounting.DepositCollateral(types.SideAsk, rate, amount, true, accounting.RoundingUp)
	assert.True(t, got.EQUint64(1200))
}

func testDepositBidMakerFlat(t *testing.T) {
	rate := num.NewUint(15000)
	amount := num.NewUint(777)

	got := accounting.DepositCollateral(types.SideBid, rate, amount, true, accounting.RoundingUp)
	assert.True(t, got.EQ(amount))
	// the returned value is a copy, mutating it must not touch the input
	got.SetUint64(0)
	assert.True(t, amount.EQUint64(777))
}

func testDepositAskTakerFlat(t *testing.T) {
	rate := num.NewUint(20000)
	amount := num.NewUint(333)

	got := accounting.DepositCollateral(types.SideAsk, rate, amount, false, accounting.RoundingDown)
	assert.True(t, got.EQUint64(333))
}

func testDepositBidTakerLeveraged(t *testing.T) {
	rate := num.NewUint(11000) // 110%
	amount := num.NewUint(1000)

	got := accounting.DepositCollateral(types.SideBid, rate, amount, false, accounting.RoundingUp)
	assert.True(t, got.EQUint64(1100))
}

func testDepositRounding(t *testing.T) {
	rate := num.NewUint(10001) // 100.01%, forces a fractional product
	amount := num.NewUint(999)

	up := accounting.DepositCollateral(types.SideAsk, rate, amount, true, accounting.RoundingUp)
	down := accounting.DepositCollateral(types.SideAsk, rate, amount, true, accounting.RoundingDown)

	// 999 * 10001 / 10000 = 999.0999
	assert.True(t, up.EQUint64(1000))
	assert.True(t, down.EQUint64(999))
}

func testRefundUntouched(t *testing.T) {
	quote := num.NewUint(1000)
	points := num.NewUint(100)
	rate := num.NewUint(12000)

	askRefund := accounting.RefundCollateral(types.SideAsk, quote, points, num.UintZero(), rate)
	assert.True(t, askRefund.EQUint64(1200))

	bidRefund := accounting.RefundCollateral(types.SideBid, quote, points, num.UintZero(), rate)
	assert.True(t, bidRefund.EQUint64(1000))
}

func testRefundPartialUse(t *testing.T) {
	quote := num.NewUint(1000)
	points := num.NewUint(3)
	used := num.NewUint(1)
	rate := num.NewUint(10000)

	// used quote = ceil(1000/3) = 334, remaining = 666
	got := accounting.RefundCollateral(types.SideBid, quote, points, used, rate)
	assert.True(t, got.EQUint64(666))
}

func testRefundFullyUsed(t *testing.T) {
	quote := num.NewUint(1000)
	points := num.NewUint(100)
	rate := num.NewUint(15000)

	got := accounting.RefundCollateral(types.SideAsk, quote, points, points.Clone(), rate)
	assert.True(t, got.IsZero())
}

func testRefundNeverExceedsDeposit(t *testing.T) {
	// awkward numbers on purpose, every rounding boundary in one walk
	quote := num.NewUint(997)
	points := num.NewUint(7)
	rate := num.NewUint(13333)

	deposit := accounting.DepositCollateral(types.SideAsk, rate, quote, true, accounting.RoundingUp)
	for used := uint64(0); used <= 7; used++ {
		refund := accounting.RefundCollateral(types.SideAsk, quote, points, num.NewUint(used), rate)
		require.True(t, refund.LTE(deposit), "refund %s exceeds deposit %s at used=%d", refund, deposit, used)
	}
}
