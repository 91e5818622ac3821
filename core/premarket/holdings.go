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

package premarket

import (
	"context"

	"code.zephyrlabs.dev/premarket/core/accounting"
	"code.zephyrlabs.dev/premarket/core/events"
	"code.zephyrlabs.dev/premarket/core/idgeneration"
	"code.zephyrlabs.dev/premarket/core/types"
	"code.zephyrlabs.dev/premarket/libs/num"
	"code.zephyrlabs.dev/premarket/logging"

	"github.com/pkg/errors"
)

// CreateHolding takes part of a virgin offer: the taker deposits the
// proportional quote amount (or its leveraged collateral on a bid
// offer) plus platform fee and trade tax, and the fee, tax, referral
// and sales revenue credits are routed.
func (e *Engine) CreateHolding(ctx context.Context, party string, offerID types.AccountID, points *num.Uint) (types.AccountID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return types.NoAccount, err
	}

	if points == nil || points.IsZero() {
		return types.NoAccount, ErrPointsMustBePositive
	}
	offer, err := e.store.Offer(offerID)
	if err != nil {
		return types.NoAccount, err
	}
	if offer.Status != types.OfferStatusVirgin {
		return types.NoAccount, ErrInvalidOfferStatus
	}
	maker, err := e.store.Maker(offer.Maker)
	if err != nil {
		return types.NoAccount, err
	}
	mkt, err := e.marketplaceFor(maker)
	if err != nil {
		return types.NoAccount, err
	}
	if err := e.requireOnline(mkt); err != nil {
		return types.NoAccount, err
	}
	if num.Sum(points, offer.UsedPoints).GT(offer.Points) {
		return types.NoAccount, ErrNotEnoughPoints
	}

	// the taker never underpays: its share of the quote rounds up
	quote := num.MulDivUp(offer.QuoteTokenAmount, points, offer.Points)
	platformFee := num.MulDiv(quote, e.registry.FeeRate(party), accounting.RateScaler())
	tradeTax := num.MulDiv(quote, maker.EachTradeTax, accounting.RateScaler())
	collateral := accounting.DepositCollateral(offer.Side, offer.CollateralRate, quote, false, accounting.RoundingUp)

	if err := e.vault.Deposit(ctx, party, maker.CollateralToken, num.Sum(collateral, platformFee, tradeTax), false); err != nil {
		return types.NoAccount, errors.Wrap(err, "depositing taker collateral")
	}

	offer.UsedPoints = num.Sum(offer.UsedPoints, points)
	offer.TradeTax = num.Sum(offer.TradeTax, tradeTax)

	// referral bonuses come out of the platform fee, the rest accrues
	// to the global per-token fee pool
	netFee := platformFee.Clone()
	if ri := e.registry.ReferralInfo(party); ri != nil && ri.Referrer != "" {
		referrerBonus := num.MulDiv(platformFee, ri.ReferrerRate, accounting.RateScaler())
		refereeBonus := num.MulDiv(platformFee, ri.RefereeRate, accounting.RateScaler())
		if !referrerBonus.IsZero() {
			e.vault.AddBalance(ctx, types.BalanceReferralBonus, ri.Referrer, maker.CollateralToken, referrerBonus)
		}
		if !refereeBonus.IsZero() {
			e.vault.AddBalance(ctx, types.BalanceReferralBonus, party, maker.CollateralToken, refereeBonus)
		}
		netFee.Sub(netFee, num.Sum(referrerBonus, refereeBonus))
	}

	// Turbo sub-offers forward their tax income to the chain root
	if !tradeTax.IsZero() {
		taxTo := maker.Authority
		if offer.IsChainRoot(maker) || maker.SettleType == types.SettleTypeProtected {
			taxTo = offer.Authority
		}
		e.vault.AddBalance(ctx, types.BalanceTaxIncome, taxTo, maker.CollateralToken, tradeTax)
	}

	// on an ask offer the poster is selling, on a bid offer the taker is
	revTo := offer.Authority
	if offer.Side == types.SideBid {
		revTo = party
	}
	e.vault.AddBalance(ctx, types.BalanceSalesRevenue, revTo, maker.CollateralToken, quote)

	if !netFee.IsZero() {
		e.vault.AccrueFee(ctx, maker.CollateralToken, netFee)
	}

	seq := e.idgen.NextSeq()
	holdingID := idgeneration.DeriveAddress(idgeneration.TagHolding, seq)
	if e.store.HasHolding(holdingID) {
		return types.NoAccount, ErrAddressCollision
	}
	holding := &types.Holding{
		ID:               holdingID,
		Seq:              seq,
		Maker:            offer.Maker,
		Authority:        party,
		Status:           types.HoldingStatusInitialized,
		Side:             offer.Side.Opposite(),
		PreOffer:         offerID,
		Offer:            types.NoAccount,
		Points:           points.Clone(),
		QuoteTokenAmount: quote,
	}
	if err := e.store.AddHolding(holding); err != nil {
		return types.NoAccount, err
	}
	if err := e.store.UpdateOffer(offer); err != nil {
		return types.NoAccount, err
	}

	if e.log.IsDebug() {
		e.log.Debug("holding created",
			logging.String("holding-id", holdingID.String()),
			logging.String("offer-id", offerID.String()),
			logging.String("party", party),
			logging.Stringer("points", points),
			logging.Stringer("quote", quote),
		)
	}
	e.broker.Send(events.NewHoldingCreated(ctx, holding))
	return holdingID, nil
}

// ListHolding resells a bid-side holding as a fresh ask offer at the
// caller's price. Turbo chains reuse the origin offer's collateral and
// rate, Protected listings are collateralised on their own.
func (e *Engine) ListHolding(ctx context.Context, party string, holdingID types.AccountID, quoteAmount, collateralRate *num.Uint) (types.AccountID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return types.NoAccount, err
	}

	if quoteAmount == nil || quoteAmount.IsZero() {
		return types.NoAccount, ErrAmountMustBePositive
	}
	if collateralRate == nil || collateralRate.LT(num.NewUint(accounting.MinCollateralRateBps)) {
		return types.NoAccount, ErrCollateralRateTooLow
	}
	holding, err := e.store.Holding(holdingID)
	if err != nil {
		return types.NoAccount, err
	}
	if holding.Authority != party {
		return types.NoAccount, ErrNotHoldingAuthority
	}
	if holding.Status != types.HoldingStatusInitialized {
		return types.NoAccount, ErrInvalidHoldingStatus
	}
	if !holding.Offer.IsZero() {
		return types.NoAccount, ErrHoldingAlreadyListed
	}
	if holding.Side != types.SideBid {
		return types.NoAccount, ErrHoldingNotListable
	}
	maker, err := e.store.Maker(holding.Maker)
	if err != nil {
		return types.NoAccount, err
	}
	mkt, err := e.marketplaceFor(maker)
	if err != nil {
		return types.NoAccount, err
	}
	if err := e.requireOnline(mkt); err != nil {
		return types.NoAccount, err
	}

	var origin *types.Offer
	switch maker.SettleType {
	case types.SettleTypeTurbo:
		origin, err = e.store.Offer(maker.OriginOffer)
		if err != nil {
			return types.NoAccount, err
		}
		// one collateral rate for the whole chain
		if !collateralRate.EQ(origin.CollateralRate) {
			return types.NoAccount, ErrCollateralRateMismatch
		}
		if origin.AbortStatus == types.AbortStatusAborted {
			return types.NoAccount, ErrInvalidAbortStatus
		}
	case types.SettleTypeProtected:
		deposit := accounting.DepositCollateral(types.SideAsk, collateralRate, quoteAmount, true, accounting.RoundingUp)
		if err := e.vault.Deposit(ctx, party, maker.CollateralToken, deposit, false); err != nil {
			return types.NoAccount, errors.Wrap(err, "depositing listing collateral")
		}
	}

	offerID := idgeneration.DeriveAddress(idgeneration.TagOffer, holding.Seq)
	if e.store.HasOffer(offerID) {
		return types.NoAccount, ErrAddressCollision
	}
	offer := &types.Offer{
		ID:                      offerID,
		Seq:                     holding.Seq,
		Maker:                   holding.Maker,
		Authority:               party,
		Status:                  types.OfferStatusVirgin,
		AbortStatus:             types.AbortStatusInitialized,
		Side:                    types.SideAsk,
		Points:                  holding.Points.Clone(),
		QuoteTokenAmount:        quoteAmount.Clone(),
		CollateralRate:          collateralRate.Clone(),
		UsedPoints:              num.UintZero(),
		TradeTax:                num.UintZero(),
		SettledPoints:           num.UintZero(),
		SettledPointTokenAmount: num.UintZero(),
		SettledCollateralAmount: num.UintZero(),
	}
	if err := e.store.AddOffer(offer); err != nil {
		return types.NoAccount, err
	}
	holding.Offer = offerID
	if err := e.store.UpdateHolding(holding); err != nil {
		return types.NoAccount, err
	}
	// liability now lives further down the chain, the root can no
	// longer abort
	if origin != nil && origin.AbortStatus == types.AbortStatusInitialized {
		origin.AbortStatus = types.AbortStatusAllocationPropagated
		if err := e.store.UpdateOffer(origin); err != nil {
			return types.NoAccount, err
		}
	}

	e.broker.Send(events.NewHoldingListed(ctx, holdingID, offer))
	return offerID, nil
}

// AbortBidHolding recovers a holder's stake once the chain root has
// been aborted: the proportional share of the quote and its collateral
// is credited back as remaining cash.
func (e *Engine) AbortBidHolding(ctx context.Context, party string, holdingID, offerID types.AccountID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}

	holding, err := e.store.Holding(holdingID)
	if err != nil {
		return err
	}
	if holding.Authority != party {
		return ErrNotHoldingAuthority
	}
	if holding.PreOffer != offerID {
		return ErrHoldingOfferMismatch
	}
	if holding.Status != types.HoldingStatusInitialized {
		return ErrInvalidHoldingStatus
	}
	offer, err := e.store.Offer(offerID)
	if err != nil {
		return err
	}
	if offer.AbortStatus != types.AbortStatusAborted {
		return ErrOfferNotAborted
	}
	maker, err := e.store.Maker(offer.Maker)
	if err != nil {
		return err
	}

	userQuote := num.MulDiv(offer.QuoteTokenAmount, holding.Points, offer.Points)
	amount := accounting.DepositCollateral(offer.Side, offer.CollateralRate, userQuote, false, accounting.RoundingDown)
	if !amount.IsZero() {
		e.vault.AddBalance(ctx, types.BalanceRemainingCash, party, maker.CollateralToken, amount)
	}

	holding.Status = types.HoldingStatusFinished
	if err := e.store.UpdateHolding(holding); err != nil {
		return err
	}
	e.broker.Send(events.NewBidHoldingAborted(ctx, holding))
	return nil
}
