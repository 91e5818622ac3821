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
	"code.zephyrlabs.dev/premarket/core/types"
	"code.zephyrlabs.dev/premarket/libs/num"
)

// SettlementWriter is the capability handle over the engine's restricted
// mutations. Only the settlement engine receives one, there is no
// caller-identity check at runtime: holding the value is the permission.
type SettlementWriter struct {
	e *Engine
}

// RestrictedWriter issues the capability handle consumed by the
// settlement engine.
func (e *Engine) RestrictedWriter() *SettlementWriter {
	return &SettlementWriter{e: e}
}

// UpdateOfferStatus force-writes an offer status. A settled offer is
// terminal, a second write is rejected rather than silently re-applied.
func (w *SettlementWriter) UpdateOfferStatus(id types.AccountID, status types.OfferStatus) error {
	offer, err := w.e.store.Offer(id)
	if err != nil {
		return err
	}
	if offer.Status == types.OfferStatusSettled {
		return ErrOfferAlreadySettled
	}
	offer.Status = status
	return w.e.store.UpdateOffer(offer)
}

// UpdateHoldingStatus force-writes a holding status, same terminal-state
// guard as offers.
func (w *SettlementWriter) UpdateHoldingStatus(id types.AccountID, status types.HoldingStatus) error {
	holding, err := w.e.store.Holding(id)
	if err != nil {
		return err
	}
	if holding.Status == types.HoldingStatusFinished {
		return ErrHoldingAlreadyFinished
	}
	holding.Status = status
	return w.e.store.UpdateHolding(holding)
}

// SettledAskOffer writes the three settlement outputs and the terminal
// status in one go. Exactly one write per offer.
func (w *SettlementWriter) SettledAskOffer(id types.AccountID, settledPoints, settledPointTokenAmount, settledCollateralAmount *num.Uint) error {
	offer, err := w.e.store.Offer(id)
	if err != nil {
		return err
	}
	if offer.Status == types.OfferStatusSettled {
		return ErrOfferAlreadySettled
	}
	offer.SettledPoints = settledPoints.Clone()
	offer.SettledPointTokenAmount = settledPointTokenAmount.Clone()
	offer.SettledCollateralAmount = settledCollateralAmount.Clone()
	offer.Status = types.OfferStatusSettled
	return w.e.store.UpdateOffer(offer)
}

// SettleAskHolding accumulates a holding's settlement onto its parent
// offer and finishes the holding.
func (w *SettlementWriter) SettleAskHolding(offerID, holdingID types.AccountID, settledPoints, settledPointTokenAmount *num.Uint) error {
	holding, err := w.e.store.Holding(holdingID)
	if err != nil {
		return err
	}
	if holding.Status == types.HoldingStatusFinished {
		return ErrHoldingAlreadyFinished
	}
	offer, err := w.e.store.Offer(offerID)
	if err != nil {
		return err
	}

	offer.SettledPoints = num.Sum(offer.SettledPoints, settledPoints)
	offer.SettledPointTokenAmount = num.Sum(offer.SettledPointTokenAmount, settledPointTokenAmount)
	holding.Status = types.HoldingStatusFinished

	if err := w.e.store.UpdateOffer(offer); err != nil {
		return err
	}
	return w.e.store.UpdateHolding(holding)
}
