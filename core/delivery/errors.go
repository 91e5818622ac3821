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

package delivery

import "errors"

var (
	// authorization
	ErrNotOfferAuthority   = errors.New("party is not the offer authority")
	ErrNotHoldingAuthority = errors.New("party is not the holding authority")
	ErrNotSystemOwner      = errors.New("only the system owner may settle after the deadline")

	// state conflicts
	ErrEnginePaused              = errors.New("engine is paused")
	ErrMarketplaceNotSettling    = errors.New("marketplace is not in a settling phase")
	ErrSpecialMarketplace        = errors.New("special marketplaces settle through a different path")
	ErrInvalidSide               = errors.New("invalid side for this settlement")
	ErrInvalidOfferStatus        = errors.New("invalid offer status")
	ErrOfferNotSettled           = errors.New("effective offer has not been settled")
	ErrHoldingAlreadyFinished    = errors.New("holding has already been finished")
	ErrMakerHoldingNotClosable   = errors.New("maker-side holdings do not close this way")
	ErrNotChainRoot              = errors.New("turbo offers settle at the chain root")
	ErrNoPointsToSettle          = errors.New("no unsettled points remaining")
	ErrTooManySettledPoints      = errors.New("settled points exceed the claimable points")
	ErrSettledPointsMustBeZero   = errors.New("forced closure settles zero points")
)
