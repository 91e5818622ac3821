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

package types

import (
	"time"

	"code.zephyrlabs.dev/premarket/libs/num"
)

type MarketplaceStatus int32

const (
	MarketplaceStatusUninitialized MarketplaceStatus = iota
	MarketplaceStatusOnline
	MarketplaceStatusAskSettling
	MarketplaceStatusBidSettling
	MarketplaceStatusOffline
)

func (s MarketplaceStatus) String() string {
	switch s {
	case MarketplaceStatusUninitialized:
		return "Uninitialized"
	case MarketplaceStatusOnline:
		return "Online"
	case MarketplaceStatusAskSettling:
		return "AskSettling"
	case MarketplaceStatusBidSettling:
		return "BidSettling"
	case MarketplaceStatusOffline:
		return "Offline"
	default:
		return "Unspecified"
	}
}

// Marketplace is the registry's record for one points market. The engine
// never owns or mutates these, it only reads them through the registry.
type Marketplace struct {
	ID     string
	Status MarketplaceStatus
	// IsSpecial marks non-fixed-ratio markets, which settle through a
	// different path than the one implemented here.
	IsSpecial        bool
	PointToken       string
	TokenPerPoint    *num.Uint
	TGE              time.Time
	SettlementPeriod time.Duration
}

func (m *Marketplace) Clone() *Marketplace {
	cpy := *m
	cpy.TokenPerPoint = m.TokenPerPoint.Clone()
	return &cpy
}

// StatusAt projects the effective marketplace phase at the given time.
// The phase is a pure function of the stored status and the TGE clock,
// recomputed on every read, never stored back.
func (m *Marketplace) StatusAt(now time.Time) MarketplaceStatus {
	if m.Status != MarketplaceStatusOnline {
		return m.Status
	}
	if now.Before(m.TGE) {
		return MarketplaceStatusOnline
	}
	if now.Before(m.TGE.Add(m.SettlementPeriod)) {
		return MarketplaceStatusAskSettling
	}
	return MarketplaceStatusBidSettling
}

// ReferralInfo is the registry's referral binding for one account.
// Referrer is empty when the account has no binding.
type ReferralInfo struct {
	Referrer     string
	ReferrerRate *num.Uint // basis points
	RefereeRate  *num.Uint // basis points
}
