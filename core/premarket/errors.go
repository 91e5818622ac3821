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

import "errors"

// Every rejection carries one of these discriminated reasons, callers
// branch on them to decide whether a corrected resubmission makes sense.
var (
	// validation
	ErrAmountMustBePositive    = errors.New("amount must be positive")
	ErrPointsMustBePositive    = errors.New("points must be positive")
	ErrTradeTaxRateTooHigh     = errors.New("each trade tax rate above maximum")
	ErrCollateralRateTooLow    = errors.New("collateral rate below minimum")
	ErrInvalidSide             = errors.New("invalid offer side")
	ErrInvalidSettleType       = errors.New("invalid settle type")
	ErrCollateralRateMismatch  = errors.New("collateral rate does not match origin offer")

	// authorization
	ErrNotOfferAuthority   = errors.New("party is not the offer authority")
	ErrNotHoldingAuthority = errors.New("party is not the holding authority")

	// state conflicts
	ErrEnginePaused            = errors.New("engine is paused")
	ErrMarketplaceNotOnline    = errors.New("marketplace is not online")
	ErrInvalidOfferStatus      = errors.New("invalid offer status")
	ErrInvalidHoldingStatus    = errors.New("invalid holding status")
	ErrInvalidAbortStatus      = errors.New("invalid abort status")
	ErrNotEnoughPoints         = errors.New("not enough points remaining on offer")
	ErrHoldingAlreadyListed    = errors.New("holding has already been listed")
	ErrHoldingNotListable      = errors.New("only bid-side holdings can be listed")
	ErrHoldingOfferMismatch    = errors.New("holding does not reference this offer")
	ErrTurboSubOfferNotAborted = errors.New("turbo sub-offers abort at the chain root")
	ErrOfferNotAborted         = errors.New("offer has not been aborted")
	ErrOfferAlreadySettled     = errors.New("offer has already been settled")
	ErrHoldingAlreadyFinished  = errors.New("holding has already been finished")
	ErrAddressCollision        = errors.New("derived address already exists")
	ErrRollinTooSoon           = errors.New("rollin called before cooldown elapsed")
)
