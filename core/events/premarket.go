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

package events

import (
	"context"
	"time"

	"code.zephyrlabs.dev/premarket/core/types"
)

// OfferCreated is raised when a fresh offer (and its maker and maker-side
// holding) has been written.
type OfferCreated struct {
	*Base
	o types.Offer
	m types.Maker
}

func NewOfferCreated(ctx context.Context, o *types.Offer, m *types.Maker) *OfferCreated {
	return &OfferCreated{
		Base: newBase(ctx, OfferCreatedEvent),
		o:    *o.Clone(),
		m:    *m.Clone(),
	}
}

func (e OfferCreated) Offer() types.Offer { return e.o }
func (e OfferCreated) Maker() types.Maker { return e.m }

type HoldingCreated struct {
	*Base
	h types.Holding
}

func NewHoldingCreated(ctx context.Context, h *types.Holding) *HoldingCreated {
	return &HoldingCreated{
		Base: newBase(ctx, HoldingCreatedEvent),
		h:    *h.Clone(),
	}
}

func (e HoldingCreated) Holding() types.Holding { return e.h }

// HoldingListed is raised when a holding has been relisted as a new offer.
type HoldingListed struct {
	*Base
	holding types.AccountID
	offer   types.Offer
}

func NewHoldingListed(ctx context.Context, holding types.AccountID, offer *types.Offer) *HoldingListed {
	return &HoldingListed{
		Base:    newBase(ctx, HoldingListedEvent),
		holding: holding,
		offer:   *offer.Clone(),
	}
}

func (e HoldingListed) HoldingID() types.AccountID { return e.holding }
func (e HoldingListed) Offer() types.Offer         { return e.offer }

type OfferClosed struct {
	*Base
	o types.Offer
}

func NewOfferClosed(ctx context.Context, o *types.Offer) *OfferClosed {
	return &OfferClosed{
		Base: newBase(ctx, OfferClosedEvent),
		o:    *o.Clone(),
	}
}

func (e OfferClosed) Offer() types.Offer { return e.o }

type OfferRelisted struct {
	*Base
	o types.Offer
}

func NewOfferRelisted(ctx context.Context, o *types.Offer) *OfferRelisted {
	return &OfferRelisted{
		Base: newBase(ctx, OfferRelistedEvent),
		o:    *o.Clone(),
	}
}

func (e OfferRelisted) Offer() types.Offer { return e.o }

type AskOfferAborted struct {
	*Base
	o types.Offer
}

func NewAskOfferAborted(ctx context.Context, o *types.Offer) *AskOfferAborted {
	return &AskOfferAborted{
		Base: newBase(ctx, AskOfferAbortedEvent),
		o:    *o.Clone(),
	}
}

func (e AskOfferAborted) Offer() types.Offer { return e.o }

type BidHoldingAborted struct {
	*Base
	h types.Holding
}

func NewBidHoldingAborted(ctx context.Context, h *types.Holding) *BidHoldingAborted {
	return &BidHoldingAborted{
		Base: newBase(ctx, BidHoldingAbortedEvent),
		h:    *h.Clone(),
	}
}

func (e BidHoldingAborted) Holding() types.Holding { return e.h }

// Rollin is the activity signal raised by a successful rollin call.
type Rollin struct {
	*Base
	party string
	at    time.Time
}

func NewRollin(ctx context.Context, party string, at time.Time) *Rollin {
	return &Rollin{
		Base:  newBase(ctx, RollinEvent),
		party: party,
		at:    at,
	}
}

func (e Rollin) Party() string { return e.party }
func (e Rollin) At() time.Time { return e.at }

type BidOfferClosed struct {
	*Base
	o types.Offer
}

func NewBidOfferClosed(ctx context.Context, o *types.Offer) *BidOfferClosed {
	return &BidOfferClosed{
		Base: newBase(ctx, BidOfferClosedEvent),
		o:    *o.Clone(),
	}
}

func (e BidOfferClosed) Offer() types.Offer { return e.o }

type BidHoldingClosed struct {
	*Base
	h types.Holding
}

func NewBidHoldingClosed(ctx context.Context, h *types.Holding) *BidHoldingClosed {
	return &BidHoldingClosed{
		Base: newBase(ctx, BidHoldingClosedEvent),
		h:    *h.Clone(),
	}
}

func (e BidHoldingClosed) Holding() types.Holding { return e.h }

type AskMakerSettled struct {
	*Base
	o types.Offer
}

func NewAskMakerSettled(ctx context.Context, o *types.Offer) *AskMakerSettled {
	return &AskMakerSettled{
		Base: newBase(ctx, AskMakerSettledEvent),
		o:    *o.Clone(),
	}
}

func (e AskMakerSettled) Offer() types.Offer { return e.o }

type AskHoldingSettled struct {
	*Base
	h types.Holding
}

func NewAskHoldingSettled(ctx context.Context, h *types.Holding) *AskHoldingSettled {
	return &AskHoldingSettled{
		Base: newBase(ctx, AskHoldingSettledEvent),
		h:    *h.Clone(),
	}
}

func (e AskHoldingSettled) Holding() types.Holding { return e.h }
