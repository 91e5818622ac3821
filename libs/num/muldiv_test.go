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

package num_test

import (
	"testing"

	"code.zephyrlabs.dev/premarket/libs/num"

	"github.com/stretchr/testify/assert"
)

func TestMulDiv(t *testing.T) {
	t.Run("Exact division", func(t *testing.T) {
		got := num.MulDiv(num.NewUint(1000), num.NewUint(50), num.NewUint(100))
		assert.True(t, got.EQUint64(500))
	})
	t.Run("Floor on a remainder", func(t *testing.T) {
		got := num.MulDiv(num.NewUint(1000), num.NewUint(1), num.NewUint(3))
		assert.True(t, got.EQUint64(333))
	})
	t.Run("Ceiling on a remainder", func(t *testing.T) {
		got := num.MulDivUp(num.NewUint(1000), num.NewUint(1), num.NewUint(3))
		assert.True(t, got.EQUint64(334))
	})
	t.Run("Ceiling on an exact division stays exact", func(t *testing.T) {
		got := num.MulDivUp(num.NewUint(1000), num.NewUint(50), num.NewUint(100))
		assert.True(t, got.EQUint64(500))
	})
	t.Run("Intermediate product may exceed 256 bits", func(t *testing.T) {
		// max-uint256 * 2 / 2 round-trips through the big.Int intermediate
		max, overflow := num.UintFromString("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", 16)
		assert.False(t, overflow)
		got := num.MulDiv(max, num.NewUint(2), num.NewUint(2))
		assert.True(t, got.EQ(max))
	})
	t.Run("Zero denominator panics", func(t *testing.T) {
		assert.Panics(t, func() {
			num.MulDiv(num.NewUint(1), num.NewUint(1), num.UintZero())
		})
	})
}
