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

// CreateOffer validates and books a fresh top-level offer: it derives
// the maker/offer/holding addresses from a new sequence number, takes
// the maker-side collateral deposit, and writes the three records.
func (e *Engine) CreateOffer(ctx context.Context, party string, sub OfferSubmission) (types.AccountID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return types.NoAccount, err
	}

	if sub.Points == nil || sub.Points.IsZero() {
		return types.NoAccount, ErrPointsMustBePositive
	}
	if sub.QuoteTokenAmount == nil || sub.QuoteTokenAmount.IsZero() {
		return types.NoAccount, ErrAmountMustBePositive
	}
	if sub.EachTradeTax == nil || sub.EachTradeTax.GTUint64(accounting.MaxEachTradeTaxBps) {
		return types.NoAccount, ErrTradeTaxRateTooHigh
	}
	if sub.CollateralRate == nil || sub.CollateralRate.LT(num.NewUint(accounting.MinCollateralRateBps)) {
		return types.NoAccount, ErrCollateralRateTooLow
	}
	if sub.Side != types.SideAsk && sub.Side != types.SideBid {
		return types.NoAccount, ErrInvalidSide
	}
	if sub.SettleType != types.SettleTypeTurbo && sub.SettleType != types.SettleTypeProtected {
		return types.NoAccount, ErrInvalidSettleType
	}

	mkt, err := e.registry.MarketplaceInfo(sub.Marketplace)
	if err != nil {
		return types.NoAccount, errors.Wrap(err, "resolving marketplace")
	}
	if err := e.requireOnline(mkt); err != nil {
		return types.NoAccount, err
	}

	seq := e.idgen.NextSeq()
	makerID := idgeneration.DeriveAddress(idgeneration.TagMaker, seq)
	offerID := idgeneration.DeriveAddress(idgeneration.TagOffer, seq)
	holdingID := idgeneration.DeriveAddress(idgeneration.TagHolding, seq)
	// derive before existence-check, a collision here means an id reuse bug
	if e.store.HasMaker(makerID) || e.store.HasOffer(offerID) || e.store.HasHolding(holdingID) {
		return types.NoAccount, ErrAddressCollision
	}

	deposit := accounting.DepositCollateral(sub.Side, sub.CollateralRate, sub.QuoteTokenAmount, true, accounting.RoundingUp)
	if err := e.vault.Deposit(ctx, party, sub.CollateralToken, deposit, false); err != nil {
		return types.NoAccount, errors.Wrap(err, "depositing maker collateral")
	}

	maker := &types.Maker{
		ID:              makerID,
		Marketplace:     sub.Marketplace,
		CollateralToken: sub.CollateralToken,
		SettleType:      sub.SettleType,
		EachTradeTax:    sub.EachTradeTax.Clone(),
		Authority:       party,
		OriginOffer:     offerID,
	}
	offer := &types.Offer{
		ID:                      offerID,
		Seq:                     seq,
		Maker:                   makerID,
		Authority:               party,
		Status:                  types.OfferStatusVirgin,
		AbortStatus:             types.AbortStatusInitialized,
		Side:                    sub.Side,
		Points:                  sub.Points.Clone(),
		QuoteTokenAmount:        sub.QuoteTokenAmount.Clone(),
		CollateralRate:          sub.CollateralRate.Clone(),
		UsedPoints:              num.UintZero(),
		TradeTax:                num.UintZero(),
		SettledPoints:           num.UintZero(),
		SettledPointTokenAmount: num.UintZero(),
		SettledCollateralAmount: num.UintZero(),
	}
	// the maker's own position against the chain, the opposite side of
	// the offer, never taken from another offer
	holding := &types.Holding{
		ID:               holdingID,
		Seq:              seq,
		Maker:            makerID,
		Authority:        party,
		Status:           types.HoldingStatusInitialized,
		Side:             sub.Side.Opposite(),
		PreOffer:         types.NoAccount,
		Offer:            offerID,
		Points:           sub.Points.Clone(),
		QuoteTokenAmount: sub.QuoteTokenAmount.Clone(),
	}

	if err := e.store.AddMaker(maker); err != nil {
		return types.NoAccount, err
	}
	if err := e.store.AddOffer(offer); err != nil {
		return types.NoAccount, err
	}
	if err := e.store.AddHolding(holding); err != nil {
		return types.NoAccount, err
	}

	if e.log.IsDebug() {
		e.log.Debug("offer created",
			logging.String("offer-id", offerID.String()),
			logging.String("party", party),
			logging.Stringer("side", sub.Side),
			logging.Stringer("settle-type", sub.SettleType),
			logging.Stringer("points", sub.Points),
		)
	}
	e.broker.SendBatch([]events.Event{
		events.NewOfferCreated(ctx, offer, maker),
		events.NewHoldingCreated(ctx, holding),
	})
	return offerID, nil
}

// CloseOffer cancels a virgin offer. Protected offers and chain roots
// get their unused collateral back, Turbo sub-offers do not since their
// collateral lives at the chain root.
func (e *Engine) CloseOffer(ctx context.Context, party string, holdingID, offerID types.AccountID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}

	offer, holding, maker, err := e.offerChain(holdingID, offerID)
	if err != nil {
		return err
	}
	if offer.Authority != party {
		return ErrNotOfferAuthority
	}
	if offer.Status != types.OfferStatusVirgin {
		return ErrInvalidOfferStatus
	}
	mkt, err := e.marketplaceFor(maker)
	if err != nil {
		return err
	}
	if err := e.requireOnline(mkt); err != nil {
		return err
	}

	if maker.SettleType == types.SettleTypeProtected || holding.PreOffer.IsZero() {
		refund := accounting.RefundCollateral(offer.Side, offer.QuoteTokenAmount, offer.Points, offer.UsedPoints, offer.CollateralRate)
		if !refund.IsZero() {
			e.vault.AddBalance(ctx, types.BalanceMakerRefund, party, maker.CollateralToken, refund)
		}
	}

	offer.Status = types.OfferStatusCanceled
	if err := e.store.UpdateOffer(offer); err != nil {
		return err
	}
	e.broker.Send(events.NewOfferClosed(ctx, offer))
	return nil
}

// RelistHolding is the inverse of CloseOffer: the authority re-deposits
// whatever the close refunded and the offer goes back on the book.
func (e *Engine) RelistHolding(ctx context.Context, party string, holdingID, offerID types.AccountID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}

	offer, holding, maker, err := e.offerChain(holdingID, offerID)
	if err != nil {
		return err
	}
	if offer.Authority != party {
		return ErrNotOfferAuthority
	}
	if offer.Status != types.OfferStatusCanceled {
		return ErrInvalidOfferStatus
	}
	mkt, err := e.marketplaceFor(maker)
	if err != nil {
		return err
	}
	if err := e.requireOnline(mkt); err != nil {
		return err
	}

	if maker.SettleType == types.SettleTypeProtected || holding.PreOffer.IsZero() {
		amount := accounting.RefundCollateral(offer.Side, offer.QuoteTokenAmount, offer.Points, offer.UsedPoints, offer.CollateralRate)
		if !amount.IsZero() {
			if err := e.vault.Deposit(ctx, party, maker.CollateralToken, amount, false); err != nil {
				return errors.Wrap(err, "re-depositing collateral")
			}
		}
	}

	offer.Status = types.OfferStatusVirgin
	if err := e.store.UpdateOffer(offer); err != nil {
		return err
	}
	e.broker.Send(events.NewOfferRelisted(ctx, offer))
	return nil
}

// AbortAskOffer unwinds an ask offer before settlement, releasing
// whatever collateral is not owed to the holders that already claimed
// points. Only chain roots whose liability has not been propagated can
// be aborted.
func (e *Engine) AbortAskOffer(ctx context.Context, party string, holdingID, offerID types.AccountID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}

	offer, holding, maker, err := e.offerChain(holdingID, offerID)
	if err != nil {
		return err
	}
	if offer.Authority != party {
		return ErrNotOfferAuthority
	}
	if offer.Side != types.SideAsk {
		return ErrInvalidSide
	}
	if offer.AbortStatus != types.AbortStatusInitialized {
		return ErrInvalidAbortStatus
	}
	if offer.Status != types.OfferStatusVirgin && offer.Status != types.OfferStatusCanceled {
		return ErrInvalidOfferStatus
	}
	if maker.SettleType == types.SettleTypeTurbo && !holding.PreOffer.IsZero() {
		return ErrTurboSubOfferNotAborted
	}

	// a virgin offer still carries its full liability, a canceled one
	// only the portion already claimed
	remainingAmount := offer.QuoteTokenAmount.Clone()
	if offer.Status == types.OfferStatusCanceled {
		remainingAmount = num.MulDiv(offer.QuoteTokenAmount, offer.UsedPoints, offer.Points)
	}
	remainingCollateral := accounting.DepositCollateral(offer.Side, offer.CollateralRate, remainingAmount, true, accounting.RoundingDown)

	usedQuote := num.MulDivUp(offer.QuoteTokenAmount, offer.UsedPoints, offer.Points)
	usedCollateral := accounting.DepositCollateral(offer.Side, offer.CollateralRate, usedQuote, true, accounting.RoundingUp)

	refund := num.UintZero()
	if remainingCollateral.GT(usedCollateral) {
		refund.Sub(remainingCollateral, usedCollateral)
	}
	if !refund.IsZero() {
		e.vault.AddBalance(ctx, types.BalanceMakerRefund, party, maker.CollateralToken, refund)
	}

	offer.AbortStatus = types.AbortStatusAborted
	offer.Status = types.OfferStatusSettled
	if err := e.store.UpdateOffer(offer); err != nil {
		return err
	}
	e.log.Info("ask offer aborted",
		logging.String("offer-id", offerID.String()),
		logging.Stringer("refund", refund),
	)
	e.broker.Send(events.NewAskOfferAborted(ctx, offer))
	return nil
}

// offerChain loads the offer, the holding it was listed from, and the
// chain's maker, validating the linkage between the three.
func (e *Engine) offerChain(holdingID, offerID types.AccountID) (*types.Offer, *types.Holding, *types.Maker, error) {
	offer, err := e.store.Offer(offerID)
	if err != nil {
		return nil, nil, nil, err
	}
	holding, err := e.store.Holding(holdingID)
	if err != nil {
		return nil, nil, nil, err
	}
	if holding.Offer != offerID {
		return nil, nil, nil, ErrHoldingOfferMismatch
	}
	maker, err := e.store.Maker(offer.Maker)
	if err != nil {
		return nil, nil, nil, err
	}
	return offer, holding, maker, nil
}
