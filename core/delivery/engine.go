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

import (
	"context"
	"sync"
	"time"

	"code.zephyrlabs.dev/premarket/core/accounting"
	"code.zephyrlabs.dev/premarket/core/events"
	"code.zephyrlabs.dev/premarket/core/types"
	"code.zephyrlabs.dev/premarket/libs/num"
	"code.zephyrlabs.dev/premarket/logging"

	"github.com/pkg/errors"
)

// EntityReader is the accessor contract of the entity store.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/entity_reader_mock.go -package mocks code.zephyrlabs.dev/premarket/core/delivery EntityReader
type EntityReader interface {
	Maker(id types.AccountID) (*types.Maker, error)
	Offer(id types.AccountID) (*types.Offer, error)
	Holding(id types.AccountID) (*types.Holding, error)
}

// SettlementWriter is the trading engine's restricted mutation
// capability, issued to this engine alone.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/settlement_writer_mock.go -package mocks code.zephyrlabs.dev/premarket/core/delivery SettlementWriter
type SettlementWriter interface {
	UpdateOfferStatus(id types.AccountID, status types.OfferStatus) error
	UpdateHoldingStatus(id types.AccountID, status types.HoldingStatus) error
	SettledAskOffer(id types.AccountID, settledPoints, settledPointTokenAmount, settledCollateralAmount *num.Uint) error
	SettleAskHolding(offerID, holdingID types.AccountID, settledPoints, settledPointTokenAmount *num.Uint) error
}

// Vault is the custody service, see the trading engine for the full
// contract.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/vault_mock.go -package mocks code.zephyrlabs.dev/premarket/core/delivery Vault
type Vault interface {
	Deposit(ctx context.Context, payer, token string, amount *num.Uint, isPointToken bool) error
	AddBalance(ctx context.Context, category types.BalanceCategory, account, token string, amount *num.Uint)
}

// Registry is the marketplace configuration service.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/registry_mock.go -package mocks code.zephyrlabs.dev/premarket/core/delivery Registry
type Registry interface {
	MarketplaceInfo(id string) (*types.Marketplace, error)
}

// TimeService.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/time_service_mock.go -package mocks code.zephyrlabs.dev/premarket/core/delivery TimeService
type TimeService interface {
	GetTimeNow() time.Time
}

// Pauser is the administrative pause switch.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/pauser_mock.go -package mocks code.zephyrlabs.dev/premarket/core/delivery Pauser
type Pauser interface {
	Paused() bool
}

// Broker - the event bus broker, send events here.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks code.zephyrlabs.dev/premarket/core/delivery Broker
type Broker interface {
	Send(event events.Event)
	SendBatch(events []events.Event)
}

// Engine runs the post-TGE distribution: ask-side settlement at maker
// and holding level, bid-side closures, and the proportional pay-outs
// of point tokens and leftover collateral.
type Engine struct {
	Config
	log *logging.Logger

	reader      EntityReader
	writer      SettlementWriter
	vault       Vault
	registry    Registry
	timeService TimeService
	pauser      Pauser
	broker      Broker

	// owner may force-close remaining ask positions once the settlement
	// deadline has passed
	owner string

	mu sync.Mutex
}

// New instantiates the settlement engine. All collaborators are
// required.
func New(
	log *logging.Logger,
	conf Config,
	reader EntityReader,
	writer SettlementWriter,
	vault Vault,
	registry Registry,
	timeService TimeService,
	pauser Pauser,
	broker Broker,
	owner string,
) (*Engine, error) {
	if reader == nil || writer == nil || vault == nil || registry == nil || timeService == nil || pauser == nil || broker == nil {
		return nil, errors.New("delivery: missing collaborator")
	}
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	return &Engine{
		Config:      conf,
		log:         log,
		reader:      reader,
		writer:      writer,
		vault:       vault,
		registry:    registry,
		timeService: timeService,
		pauser:      pauser,
		broker:      broker,
		owner:       owner,
	}, nil
}

// ReloadConf updates the internal configuration of the engine.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.Config = cfg
}

func (e *Engine) guard() error {
	if e.pauser.Paused() {
		return ErrEnginePaused
	}
	return nil
}

// settlingPhase resolves the marketplace and its projected phase,
// rejecting anything outside the two settling windows.
func (e *Engine) settlingPhase(m *types.Maker) (*types.Marketplace, types.MarketplaceStatus, error) {
	mkt, err := e.registry.MarketplaceInfo(m.Marketplace)
	if err != nil {
		return nil, types.MarketplaceStatusUninitialized, errors.Wrap(err, "resolving marketplace")
	}
	phase := mkt.StatusAt(e.timeService.GetTimeNow())
	if phase != types.MarketplaceStatusAskSettling && phase != types.MarketplaceStatusBidSettling {
		return nil, phase, ErrMarketplaceNotSettling
	}
	return mkt, phase, nil
}

// CloseBidOffer refunds a bid offer's unused budget once the market has
// crossed into settlement and retires the offer.
func (e *Engine) CloseBidOffer(ctx context.Context, party string, offerID types.AccountID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}

	offer, err := e.reader.Offer(offerID)
	if err != nil {
		return err
	}
	if offer.Authority != party {
		return ErrNotOfferAuthority
	}
	if offer.Side != types.SideBid {
		return ErrInvalidSide
	}
	if offer.Status != types.OfferStatusVirgin {
		return ErrInvalidOfferStatus
	}
	maker, err := e.reader.Maker(offer.Maker)
	if err != nil {
		return err
	}
	if _, _, err := e.settlingPhase(maker); err != nil {
		return err
	}

	refund := accounting.RefundCollateral(offer.Side, offer.QuoteTokenAmount, offer.Points, offer.UsedPoints, offer.CollateralRate)
	if !refund.IsZero() {
		e.vault.AddBalance(ctx, types.BalanceMakerRefund, party, maker.CollateralToken, refund)
	}

	if err := e.writer.UpdateOfferStatus(offerID, types.OfferStatusSettled); err != nil {
		return err
	}
	offer.Status = types.OfferStatusSettled
	e.broker.Send(events.NewBidOfferClosed(ctx, offer))
	return nil
}

// CloseBidHolding pays a bid-side holder its share of the settled point
// tokens, and of the locked collateral when the chain settled short.
func (e *Engine) CloseBidHolding(ctx context.Context, party string, holdingID types.AccountID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}

	holding, err := e.reader.Holding(holdingID)
	if err != nil {
		return err
	}
	if holding.Authority != party {
		return ErrNotHoldingAuthority
	}
	if holding.Side != types.SideBid {
		return ErrInvalidSide
	}
	if holding.PreOffer.IsZero() {
		return ErrMakerHoldingNotClosable
	}
	if holding.Status != types.HoldingStatusInitialized {
		return ErrHoldingAlreadyFinished
	}
	maker, err := e.reader.Maker(holding.Maker)
	if err != nil {
		return err
	}
	mkt, _, err := e.settlingPhase(maker)
	if err != nil {
		return err
	}

	// Protected holdings settle against the offer they were taken from,
	// Turbo holdings against the chain root.
	settling := holding.PreOffer
	if maker.SettleType == types.SettleTypeTurbo {
		settling = maker.OriginOffer
	}
	effOffer, err := e.reader.Offer(settling)
	if err != nil {
		return err
	}

	// points never re-sold through a relist are still claimable here
	remaining := holding.Points.Clone()
	if !holding.Offer.IsZero() {
		relisted, err := e.reader.Offer(holding.Offer)
		if err != nil {
			return err
		}
		remaining = num.UintZero().Sub(relisted.Points, relisted.UsedPoints)
	}
	if remaining.IsZero() {
		return ErrNoPointsToSettle
	}
	if effOffer.Status != types.OfferStatusSettled {
		return ErrOfferNotSettled
	}

	if effOffer.UsedPoints.GT(effOffer.SettledPoints) {
		collateralShare := num.MulDiv(effOffer.SettledCollateralAmount, remaining, effOffer.UsedPoints)
		if !collateralShare.IsZero() {
			e.vault.AddBalance(ctx, types.BalanceRemainingCash, party, maker.CollateralToken, collateralShare)
		}
	}
	pointTokenShare := num.MulDiv(effOffer.SettledPointTokenAmount, remaining, effOffer.UsedPoints)
	if !pointTokenShare.IsZero() {
		e.vault.AddBalance(ctx, types.BalancePointToken, party, mkt.PointToken, pointTokenShare)
	}

	if err := e.writer.UpdateHoldingStatus(holdingID, types.HoldingStatusFinished); err != nil {
		return err
	}
	holding.Status = types.HoldingStatusFinished
	e.broker.Send(events.NewBidHoldingClosed(ctx, holding))
	return nil
}

// SettleAskMaker settles an ask offer at maker level: the maker delivers
// the point tokens owed and the collateral either unlocks in full or
// stays locked for the holders when the delivery came up short.
func (e *Engine) SettleAskMaker(ctx context.Context, party string, offerID types.AccountID, settledPoints *num.Uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}

	offer, err := e.reader.Offer(offerID)
	if err != nil {
		return err
	}
	maker, err := e.reader.Maker(offer.Maker)
	if err != nil {
		return err
	}
	mkt, phase, err := e.settlingPhase(maker)
	if err != nil {
		return err
	}
	if err := e.settleAuthority(phase, offer.Authority, party, settledPoints, ErrNotOfferAuthority); err != nil {
		return err
	}
	if mkt.IsSpecial {
		return ErrSpecialMarketplace
	}
	if offer.Side != types.SideAsk {
		return ErrInvalidSide
	}
	if settledPoints.GT(offer.UsedPoints) {
		return ErrTooManySettledPoints
	}
	if maker.SettleType == types.SettleTypeTurbo && !offer.IsChainRoot(maker) {
		return ErrNotChainRoot
	}
	if offer.Status != types.OfferStatusVirgin && offer.Status != types.OfferStatusCanceled {
		return ErrInvalidOfferStatus
	}

	settledPointTokenAmount := num.UintZero().Mul(mkt.TokenPerPoint, settledPoints)
	if !settledPointTokenAmount.IsZero() {
		if err := e.vault.Deposit(ctx, party, mkt.PointToken, settledPointTokenAmount, true); err != nil {
			return errors.Wrap(err, "depositing point tokens")
		}
	}

	collateralBase := offer.QuoteTokenAmount.Clone()
	if offer.Status == types.OfferStatusCanceled {
		collateralBase = num.MulDiv(offer.QuoteTokenAmount, offer.UsedPoints, offer.Points)
	}
	totalCollateralAmount := accounting.DepositCollateral(offer.Side, offer.CollateralRate, collateralBase, true, accounting.RoundingDown)

	// short delivery keeps the whole collateral locked for the holders,
	// full delivery books it as settled and refunds the difference
	settledCollateralAmount := num.UintZero()
	if settledPoints.EQ(offer.UsedPoints) {
		settledCollateralAmount = totalCollateralAmount.Clone()
		if makerRefund := num.UintZero().Sub(totalCollateralAmount, settledCollateralAmount); !makerRefund.IsZero() {
			e.vault.AddBalance(ctx, types.BalanceMakerRefund, party, maker.CollateralToken, makerRefund)
		}
	}

	if err := e.writer.SettledAskOffer(offerID, settledPoints, settledPointTokenAmount, settledCollateralAmount); err != nil {
		return err
	}

	offer.SettledPoints = settledPoints.Clone()
	offer.SettledPointTokenAmount = settledPointTokenAmount
	offer.SettledCollateralAmount = settledCollateralAmount
	offer.Status = types.OfferStatusSettled
	fillRatio := num.DecimalZero()
	if !offer.UsedPoints.IsZero() {
		fillRatio = num.DecimalFromUint(settledPoints).Div(num.DecimalFromUint(offer.UsedPoints))
	}
	e.log.Info("ask maker settled",
		logging.String("offer-id", offerID.String()),
		logging.Stringer("settled-points", settledPoints),
		logging.Stringer("settled-point-tokens", settledPointTokenAmount),
		logging.Decimal("fill-ratio", fillRatio),
	)
	e.broker.Send(events.NewAskMakerSettled(ctx, offer))
	return nil
}

// SettleAskHolding settles one ask-side holding: the holder delivers the
// point tokens owed, which pass through to the offer's authority, and
// the holder's collateral either comes back (full delivery) or is held
// in trust by the offer's authority.
func (e *Engine) SettleAskHolding(ctx context.Context, party string, holdingID types.AccountID, settledPoints *num.Uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}

	holding, err := e.reader.Holding(holdingID)
	if err != nil {
		return err
	}
	if holding.PreOffer.IsZero() {
		return ErrMakerHoldingNotClosable
	}
	if holding.Side != types.SideAsk {
		return ErrInvalidSide
	}
	if holding.Status != types.HoldingStatusInitialized {
		return ErrHoldingAlreadyFinished
	}
	maker, err := e.reader.Maker(holding.Maker)
	if err != nil {
		return err
	}
	mkt, phase, err := e.settlingPhase(maker)
	if err != nil {
		return err
	}
	if err := e.settleAuthority(phase, holding.Authority, party, settledPoints, ErrNotHoldingAuthority); err != nil {
		return err
	}
	if mkt.IsSpecial {
		return ErrSpecialMarketplace
	}
	if settledPoints.GT(holding.Points) {
		return ErrTooManySettledPoints
	}
	offer, err := e.reader.Offer(holding.PreOffer)
	if err != nil {
		return err
	}

	settledPointTokenAmount := num.UintZero().Mul(mkt.TokenPerPoint, settledPoints)
	if !settledPointTokenAmount.IsZero() {
		if err := e.vault.Deposit(ctx, party, mkt.PointToken, settledPointTokenAmount, true); err != nil {
			return errors.Wrap(err, "depositing point tokens")
		}
		e.vault.AddBalance(ctx, types.BalancePointToken, offer.Authority, mkt.PointToken, settledPointTokenAmount)
	}

	collateralAmount := accounting.DepositCollateral(offer.Side, offer.CollateralRate, holding.QuoteTokenAmount, false, accounting.RoundingDown)
	if !collateralAmount.IsZero() {
		if settledPoints.EQ(holding.Points) {
			e.vault.AddBalance(ctx, types.BalanceMakerRefund, party, maker.CollateralToken, collateralAmount)
		} else {
			e.vault.AddBalance(ctx, types.BalanceRemainingCash, offer.Authority, maker.CollateralToken, collateralAmount)
		}
	}

	if err := e.writer.SettleAskHolding(offer.ID, holdingID, settledPoints, settledPointTokenAmount); err != nil {
		return err
	}
	holding.Status = types.HoldingStatusFinished
	e.broker.Send(events.NewAskHoldingSettled(ctx, holding))
	return nil
}

// settleAuthority gates who may settle in which phase: the position's
// authority during ask settling, the system owner (settling zero points)
// once the deadline has passed.
func (e *Engine) settleAuthority(phase types.MarketplaceStatus, authority, party string, settledPoints *num.Uint, notAuthority error) error {
	switch phase {
	case types.MarketplaceStatusAskSettling:
		if party != authority {
			return notAuthority
		}
	case types.MarketplaceStatusBidSettling:
		if party != e.owner {
			return ErrNotSystemOwner
		}
		if !settledPoints.IsZero() {
			return ErrSettledPointsMustBeZero
		}
	}
	return nil
}
