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
	"sync"
	"time"

	"code.zephyrlabs.dev/premarket/core/events"
	"code.zephyrlabs.dev/premarket/core/idgeneration"
	"code.zephyrlabs.dev/premarket/core/store"
	"code.zephyrlabs.dev/premarket/core/types"
	"code.zephyrlabs.dev/premarket/libs/num"
	"code.zephyrlabs.dev/premarket/logging"

	"github.com/pkg/errors"
)

// Vault is the custody service holding deposits and claimable balances.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/vault_mock.go -package mocks code.zephyrlabs.dev/premarket/core/premarket Vault
type Vault interface {
	Deposit(ctx context.Context, payer, token string, amount *num.Uint, isPointToken bool) error
	AddBalance(ctx context.Context, category types.BalanceCategory, account, token string, amount *num.Uint)
	AccrueFee(ctx context.Context, token string, amount *num.Uint)
}

// Registry is the marketplace configuration service.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/registry_mock.go -package mocks code.zephyrlabs.dev/premarket/core/premarket Registry
type Registry interface {
	MarketplaceInfo(id string) (*types.Marketplace, error)
	ReferralInfo(account string) *types.ReferralInfo
	FeeRate(account string) *num.Uint
}

// TimeService.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/time_service_mock.go -package mocks code.zephyrlabs.dev/premarket/core/premarket TimeService
type TimeService interface {
	GetTimeNow() time.Time
}

// Pauser is the administrative pause switch checked at every mutating
// entry point.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/pauser_mock.go -package mocks code.zephyrlabs.dev/premarket/core/premarket Pauser
type Pauser interface {
	Paused() bool
}

// Broker - the event bus broker, send events here.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks code.zephyrlabs.dev/premarket/core/premarket Broker
type Broker interface {
	Send(event events.Event)
	SendBatch(events []events.Event)
}

// OfferSubmission carries the parameters of a new top-level offer.
type OfferSubmission struct {
	Marketplace      string
	CollateralToken  string
	Points           *num.Uint
	QuoteTokenAmount *num.Uint
	CollateralRate   *num.Uint // basis points
	EachTradeTax     *num.Uint // basis points
	Side             types.Side
	SettleType       types.SettleType
}

// Engine orchestrates the offer and holding lifecycle during the
// pre-settlement period: creation, taking, listing, closing, relisting
// and aborts, along with the fee, tax and referral accounting each of
// those implies.
type Engine struct {
	Config
	log *logging.Logger

	store       *store.Store
	vault       Vault
	registry    Registry
	timeService TimeService
	pauser      Pauser
	broker      Broker
	idgen       *idgeneration.Generator

	// mu serializes every mutating entry point, state transitions never
	// interleave.
	mu sync.Mutex

	lastRollin map[string]time.Time
}

// New instantiates the trading engine. All collaborators are required.
func New(
	log *logging.Logger,
	conf Config,
	entityStore *store.Store,
	vault Vault,
	registry Registry,
	timeService TimeService,
	pauser Pauser,
	broker Broker,
) (*Engine, error) {
	if entityStore == nil || vault == nil || registry == nil || timeService == nil || pauser == nil || broker == nil {
		return nil, errors.New("premarket: missing collaborator")
	}
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	return &Engine{
		Config:      conf,
		log:         log,
		store:       entityStore,
		vault:       vault,
		registry:    registry,
		timeService: timeService,
		pauser:      pauser,
		broker:      broker,
		idgen:       idgeneration.New(1),
		lastRollin:  map[string]time.Time{},
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

// Store exposes the read-only accessor contract of the entity store.
func (e *Engine) Store() *store.Store {
	return e.store
}

func (e *Engine) guard() error {
	if e.pauser.Paused() {
		return ErrEnginePaused
	}
	return nil
}

// marketplaceFor resolves the maker's marketplace record. The effective
// phase is always projected from the current time at the point of use,
// never kept around.
func (e *Engine) marketplaceFor(m *types.Maker) (*types.Marketplace, error) {
	mkt, err := e.registry.MarketplaceInfo(m.Marketplace)
	if err != nil {
		return nil, errors.Wrap(err, "resolving marketplace")
	}
	return mkt, nil
}

func (e *Engine) requireOnline(mkt *types.Marketplace) error {
	if mkt.StatusAt(e.timeService.GetTimeNow()) != types.MarketplaceStatusOnline {
		return ErrMarketplaceNotOnline
	}
	return nil
}

// Rollin records an activity heartbeat for the given party. It has no
// side effect beyond the timestamp and the event, and rejects repeat
// calls within the cooldown.
func (e *Engine) Rollin(ctx context.Context, party string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}

	now := e.timeService.GetTimeNow()
	if last, ok := e.lastRollin[party]; ok && now.Before(last.Add(e.RollinCooldown.Get())) {
		return ErrRollinTooSoon
	}
	e.lastRollin[party] = now
	e.broker.Send(events.NewRollin(ctx, party, now))
	return nil
}
