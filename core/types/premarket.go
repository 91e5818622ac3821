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
	"code.zephyrlabs.dev/premarket/libs/num"
)

// AccountID is the deterministic identifier of a maker, offer or holding
// record. It is derived once by the trading engine and never reused.
type AccountID string

// NoAccount is the empty AccountID, used for unset back-references.
const NoAccount AccountID = ""

func (a AccountID) IsZero() bool {
	return a == NoAccount
}

func (a AccountID) String() string {
	return string(a)
}

// Side is the direction of an offer, or the type of a holding (which is
// always the opposite of the offer it was taken from).
type Side int32

const (
	SideUnspecified Side = iota
	// SideAsk sells points for quote tokens.
	SideAsk
	// SideBid buys points with quote tokens.
	SideBid
)

func (s Side) String() string {
	switch s {
	case SideAsk:
		return "Ask"
	case SideBid:
		return "Bid"
	default:
		return "Unspecified"
	}
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	switch s {
	case SideAsk:
		return SideBid
	case SideBid:
		return SideAsk
	default:
		return SideUnspecified
	}
}

// SettleType selects how collateral is owned across a relist chain:
// Turbo chains share the origin offer's collateral, Protected offers are
// each collateralised on their own.
type SettleType int32

const (
	SettleTypeUnspecified SettleType = iota
	SettleTypeTurbo
	SettleTypeProtected
)

func (s SettleType) String() string {
	switch s {
	case SettleTypeTurbo:
		return "Turbo"
	case SettleTypeProtected:
		return "Protected"
	default:
		return "Unspecified"
	}
}

type OfferStatus int32

const (
	OfferStatusUnspecified OfferStatus = iota
	// OfferStatusVirgin - the offer is open for takers.
	OfferStatusVirgin
	// OfferStatusCanceled - closed by its authority, may be relisted.
	OfferStatusCanceled
	// OfferStatusSettled - terminal, written exactly once.
	OfferStatusSettled
)

func (s OfferStatus) String() string {
	switch s {
	case OfferStatusVirgin:
		return "Virgin"
	case OfferStatusCanceled:
		return "Canceled"
	case OfferStatusSettled:
		return "Settled"
	default:
		return "Unspecified"
	}
}

// AbortStatus tracks the early-unwind state of an ask offer. Once the
// chain's liability has been propagated down through a Turbo relist the
// offer can no longer be aborted directly.
type AbortStatus int32

const (
	AbortStatusInitialized AbortStatus = iota
	AbortStatusAllocationPropagated
	AbortStatusAborted
)

func (s AbortStatus) String() string {
	switch s {
	case AbortStatusInitialized:
		return "Initialized"
	case AbortStatusAllocationPropagated:
		return "AllocationPropagated"
	case AbortStatusAborted:
		return "Aborted"
	default:
		return "Unspecified"
	}
}

type HoldingStatus int32

const (
	HoldingStatusUnspecified HoldingStatus = iota
	HoldingStatusInitialized
	HoldingStatusFinished
)

func (s HoldingStatus) String() string {
	switch s {
	case HoldingStatusInitialized:
		return "Initialized"
	case HoldingStatusFinished:
		return "Finished"
	default:
		return "Unspecified"
	}
}

// BalanceCategory identifies the claimable balance bucket a vault credit
// is routed to.
type BalanceCategory int32

const (
	BalanceCategoryUnspecified BalanceCategory = iota
	BalanceTaxIncome
	BalanceReferralBonus
	BalanceSalesRevenue
	BalanceRemainingCash
	BalanceMakerRefund
	BalancePointToken
)

func (c BalanceCategory) String() string {
	switch c {
	case BalanceTaxIncome:
		return "TaxIncome"
	case BalanceReferralBonus:
		return "ReferralBonus"
	case BalanceSalesRevenue:
		return "SalesRevenue"
	case BalanceRemainingCash:
		return "RemainingCash"
	case BalanceMakerRefund:
		return "MakerRefund"
	case BalancePointToken:
		return "PointToken"
	default:
		return "Unspecified"
	}
}

// Maker describes the settlement parameters shared by an offer chain.
// Immutable after creation.
type Maker struct {
	ID              AccountID
	Marketplace     string
	CollateralToken string
	SettleType      SettleType
	EachTradeTax    *num.Uint // basis points
	Authority       string
	OriginOffer     AccountID
}

func (m *Maker) Clone() *Maker {
	cpy := *m
	cpy.EachTradeTax = m.EachTradeTax.Clone()
	return &cpy
}

// Offer is a standing, partially fillable posting of points.
type Offer struct {
	ID        AccountID
	Seq       uint64
	Maker     AccountID
	Authority string

	Status      OfferStatus
	AbortStatus AbortStatus
	Side        Side

	Points           *num.Uint
	QuoteTokenAmount *num.Uint
	CollateralRate   *num.Uint // basis points, >= RateScaler
	UsedPoints       *num.Uint
	TradeTax         *num.Uint

	SettledPoints           *num.Uint
	SettledPointTokenAmount *num.Uint
	SettledCollateralAmount *num.Uint
}

func (o *Offer) Clone() *Offer {
	cpy := *o
	cpy.Points = o.Points.Clone()
	cpy.QuoteTokenAmount = o.QuoteTokenAmount.Clone()
	cpy.CollateralRate = o.CollateralRate.Clone()
	cpy.UsedPoints = o.UsedPoints.Clone()
	cpy.TradeTax = o.TradeTax.Clone()
	cpy.SettledPoints = o.SettledPoints.Clone()
	cpy.SettledPointTokenAmount = o.SettledPointTokenAmount.Clone()
	cpy.SettledCollateralAmount = o.SettledCollateralAmount.Clone()
	return &cpy
}

// IsChainRoot reports whether this offer is the origin of its chain.
func (o *Offer) IsChainRoot(m *Maker) bool {
	return m.OriginOffer == o.ID
}

// Holding is one counterparty's claim against an offer.
type Holding struct {
	ID        AccountID
	Seq       uint64
	Maker     AccountID
	Authority string

	Status HoldingStatus
	Side   Side

	// PreOffer is the offer this holding was taken from, empty for the
	// maker-side holding written at offer creation.
	PreOffer AccountID
	// Offer is set once the holding has been relisted as a new offer.
	Offer AccountID

	Points           *num.Uint
	QuoteTokenAmount *num.Uint
}

func (h *Holding) Clone() *Holding {
	cpy := *h
	cpy.Points = h.Points.Clone()
	cpy.QuoteTokenAmount = h.QuoteTokenAmount.Clone()
	return &cpy
}
