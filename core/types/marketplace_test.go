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

package types_test

import (
	"testing"
	"time"

	"code.zephyrlabs.dev/premarket/core/types"
	"code.zephyrlabs.dev/premarket/libs/num"

	"github.com/stretchr/testify/assert"
)

func TestMarketplaceStatusAt(t *testing.T) {
	tge := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mkt := &types.Marketplace{
		ID:               "pts-demo",
		Status:           types.MarketplaceStatusOnline,
		PointToken:       "DEMO",
		TokenPerPoint:    num.NewUint(100),
		TGE:              tge,
		SettlementPeriod: 48 * time.Hour,
	}

	cases := []struct {
		name string
		at   time.Time
		want types.MarketplaceStatus
	}{
		{"well before TGE", tge.Add(-30 * 24 * time.Hour), types.MarketplaceStatusOnline},
		{"one second before TGE", tge.Add(-time.Second), types.MarketplaceStatusOnline},
		{"exactly at TGE", tge, types.MarketplaceStatusAskSettling},
		{"inside the settlement period", tge.Add(24 * time.Hour), types.MarketplaceStatusAskSettling},
		{"exactly at the deadline", tge.Add(48 * time.Hour), types.MarketplaceStatusBidSettling},
		{"long after the deadline", tge.Add(1000 * time.Hour), types.MarketplaceStatusBidSettling},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, mkt.StatusAt(c.at))
		})
	}
}

func TestMarketplaceStatusAtNotOnline(t *testing.T) {
	// an explicitly stored non-online status wins over the TGE clock
	for _, status := range []types.MarketplaceStatus{
		types.MarketplaceStatusUninitialized,
		types.MarketplaceStatusOffline,
	} {
		mkt := &types.Marketplace{
			Status:        status,
			TokenPerPoint: num.UintZero(),
			TGE:           time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		assert.Equal(t, status, mkt.StatusAt(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
	}
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, types.SideBid, types.SideAsk.Opposite())
	assert.Equal(t, types.SideAsk, types.SideBid.Opposite())
}

func TestOfferIsChainRoot(t *testing.T) {
	maker := &types.Maker{
		ID:          "m1",
		OriginOffer: "o1",
	}
	root := &types.Offer{ID: "o1", Maker: "m1"}
	sub := &types.Offer{ID: "o2", Maker: "m1"}

	assert.True(t, root.IsChainRoot(maker))
	assert.False(t, sub.IsChainRoot(maker))
}
