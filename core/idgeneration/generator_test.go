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

package idgeneration_test

import (
	"testing"

	"code.zephyrlabs.dev/premarket/core/idgeneration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceIsMonotonic(t *testing.T) {
	gen := idgeneration.New(1)
	assert.Equal(t, uint64(1), gen.NextSeq())
	assert.Equal(t, uint64(2), gen.NextSeq())
	assert.Equal(t, uint64(3), gen.NextSeq())
}

func TestDeriveAddressIsDeterministic(t *testing.T) {
	a := idgeneration.DeriveAddress(idgeneration.TagOffer, 42)
	b := idgeneration.DeriveAddress(idgeneration.TagOffer, 42)
	assert.Equal(t, a, b)
	assert.Len(t, a.String(), 64)
}

func TestDeriveAddressSeparatesTags(t *testing.T) {
	seen := map[string]struct{}{}
	for _, tag := range []string{idgeneration.TagMaker, idgeneration.TagOffer, idgeneration.TagHolding} {
		for seq := uint64(1); seq <= 100; seq++ {
			id := idgeneration.DeriveAddress(tag, seq)
			_, dup := seen[id.String()]
			require.False(t, dup, "address collision for tag %q seq %d", tag, seq)
			seen[id.String()] = struct{}{}
		}
	}
}

func TestNilGeneratorPanics(t *testing.T) {
	var gen *idgeneration.Generator
	assert.Panics(t, func() { gen.NextSeq() })
}
