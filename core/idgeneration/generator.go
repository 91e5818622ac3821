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

package idgeneration

import (
	"encoding/binary"
	"encoding/hex"

	"code.zephyrlabs.dev/premarket/core/types"
	vgcrypto "code.zephyrlabs.dev/premarket/libs/crypto"
)

// Tags salting the address derivation, one per record kind. Using a
// distinct tag per kind keeps the three addresses derived from one
// sequence number from ever colliding with each other.
const (
	TagMaker   = "maker"
	TagOffer   = "offer"
	TagHolding = "holding"
)

// Generator owns the process-wide monotonic sequence the trading engine
// allocates record numbers from. No mutex required, allocation happens
// under the engine's serialization.
type Generator struct {
	next uint64
}

// New returns a generator starting at the given sequence number.
func New(start uint64) *Generator {
	return &Generator{next: start}
}

// NextSeq returns the next sequence number, never reused.
func (g *Generator) NextSeq() uint64 {
	if g == nil {
		panic("id generator instance is not initialised")
	}
	seq := g.next
	g.next++
	return seq
}

// DeriveAddress maps a (tag, sequence) pair to the deterministic account
// identifier external callers use to reference the record. One-way and
// injective with overwhelming probability; the engine still asserts
// non-existence before the first write.
func DeriveAddress(tag string, seq uint64) types.AccountID {
	buf := make([]byte, 0, len(tag)+8)
	buf = append(buf, tag...)
	buf = binary.BigEndian.AppendUint64(buf, seq)
	return types.AccountID(hex.EncodeToString(vgcrypto.Hash(buf)))
}
