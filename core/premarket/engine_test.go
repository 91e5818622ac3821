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

package premarket_test

import (
	"context"
	"testing"
	"time"

	"code.zephyrlabs.dev/premarket/core/accounting"
	"code.zephyrlabs.dev/premarket/core/premarket"
	"code.zephyrlabs.dev/premarket/core/premarket/mocks"
	"code.zephyrlabs.dev/premarket/core/store"
	"code.zephyrlabs.dev/premarket/core/types"
	"code.zephyrlabs.dev/premarket/libs/num"
	"code.zephyrlabs.dev/premarket/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	marketplaceID = "pts-demo"
	collateral    = "USDC"
	maker1        = "party-maker-1"
	taker1        = "party-taker-1"
	taker2        = "party-taker-2"
)

type testEngine struct {
	*premarket.Engine
	ctrl     *gomock.Controller
	store    *store.Store
	vault    *mocks.MockVault
	registry *mocks.MockRegistry
	tsvc     *mocks.MockTimeService
	pauser   *mocks.MockPauser
	broker   *mocks.MockBroker
	now      time.Time
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := store.New()
	vault := mocks.NewMockVault(ctrl)
	registry := mocks.NewMockRegistry(ctrl)
	tsvc := mocks.NewMockTimeService(ctrl)
	pauser := mocks.NewMockPauser(ctrl)
	broker := mocks.NewMockBroker(ctrl)

	pauser.EXPECT().Paused().Return(false).AnyTimes()
	broker.EXPECT().Send(gomock.Any()).AnyTimes()
	broker.EXPECT().SendBatch(gomock.Any()).AnyTimes()

	eng, err := premarket.New(logging.NewTestLogger(), premarket.NewDefaultConfig(), st, vault, registry, tsvc, pauser, broker)
	require.NoError(t, err)

	te := &testEngine{
		Engine:   eng,
		ctrl:     ctrl,
		store:    st,
		vault:    vault,
		registry: registry,
		tsvc:     tsvc,
		pauser:   pauser,
		broker:   broker,
		now:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	tsvc.EXPECT().GetTimeNow().DoAndReturn(func() time.Time { return te.now }).AnyTimes()
	return te
}

// expectOnlineMarketplace registers a marketplace whose TGE sits well
// past the test clock, so every call sees it online.
func (te *testEngine) expectOnlineMarketplace() {
	mkt := &types.Marketplace{
		ID:               marketplaceID,
		Status:           types.MarketplaceStatusOnline,
		PointToken:       "PTS",
		TokenPerPoint:    num.NewUint(100),
		TGE:              te.now.Add(30 * 24 * time.Hour),
		SettlementPeriod: 24 * time.Hour,
	}
	te.registry.EXPECT().MarketplaceInfo(marketplaceID).Return(mkt, nil).AnyTimes()
}

func (te *testEngine) expectDefaultFees() {
	te.registry.EXPECT().FeeRate(gomock.Any()).Return(num.NewUint(accounting.DefaultPlatformFeeBps)).AnyTimes()
	te.registry.EXPECT().ReferralInfo(gomock.Any()).Return(nil).AnyTimes()
}

func askSubmission() premarket.OfferSubmission {
	return premarket.OfferSubmission{
		Marketplace:      marketplaceID,
		CollateralToken:  collateral,
		Points:           num.NewUint(1000),
		QuoteTokenAmount: num.NewUint(10000),
		CollateralRate:   num.NewUint(12000), // 120%
		EachTradeTax:     num.NewUint(300),   // 3%
		Side:             types.SideAsk,
		SettleType:       types.SettleTypeTurbo,
	}
}

func TestCreateOffer(t *testing.T) {
	t.Run("Ask offer books a leveraged deposit and three records", testCreateAskOffer)
	t.Run("Bid offer deposits its budget one to one", testCreateBidOffer)
	t.Run("Submission validation rejects bad parameters", testCreateOfferValidation)
	t.Run("Offline marketplaces reject new offers", testCreateOfferMarketNotOnline)
	t.Run("Paused engine rejects every entry point", testCreateOfferPaused)
}

func TestCreateHolding(t *testing.T) {
	t.Run("Taking part of an ask offer routes quote, fee and tax", testCreateHoldingAsk)
	t.Run("Taking a bid offer credits the sales revenue to the taker", testCreateHoldingBid)
	t.Run("An offer can be taken to exactly its last point", testCreateHoldingExactFill)
	t.Run("Referral bindings split the platform fee", testCreateHoldingReferral)
}

func TestCloseAndRelist(t *testing.T) {
	t.Run("Closing a partially used ask offer refunds the unused collateral", testCloseOfferRefund)
	t.Run("Relisting re-deposits exactly the close refund", testRelistRedeposit)
	t.Run("Only the offer authority may close", testCloseOfferAuthority)
}

func TestListHolding(t *testing.T) {
	t.Run("Protected listings are collateralised on their own", testListHoldingProtected)
	t.Run("Turbo listings must match the chain rate and mark the root", testListHoldingTurbo)
	t.Run("A holding cannot be listed twice", testListHoldingTwice)
}

func TestAbort(t *testing.T) {
	t.Run("Aborting a virgin ask offer refunds the unclaimed collateral", testAbortAskOffer)
	t.Run("Holders of an aborted offer recover their stake", testAbortBidHolding)
	t.Run("A propagated turbo root can no longer abort", testAbortAfterPropagation)
}

func TestRollin(t *testing.T) {
	t.Run("Repeat rollins inside the cooldown are rejected", testRollinCooldown)
}

func testCreateAskOffer(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()

	// 10000 quote at 120% collateral rate
	te.vault.EXPECT().Deposit(gomock.Any(), maker1, collateral, num.NewUint(12000), false).Return(nil)

	offerID, err := te.CreateOffer(context.Background(), maker1, askSubmission())
	require.NoError(t, err)
	require.False(t, offerID.IsZero())

	offer, err := te.store.Offer(offerID)
	require.NoError(t, err)
	assert.Equal(t, types.OfferStatusVirgin, offer.Status)
	assert.Equal(t, types.SideAsk, offer.Side)
	assert.True(t, offer.UsedPoints.IsZero())

	maker, err := te.store.Maker(offer.Maker)
	require.NoError(t, err)
	assert.Equal(t, offerID, maker.OriginOffer)
	assert.True(t, offer.IsChainRoot(maker))

	// the maker's own holding sits on the opposite side with no parent
	holdings := te.store.Holdings()
	require.Len(t, holdings, 1)
	assert.Equal(t, types.SideBid, holdings[0].Side)
	assert.True(t, holdings[0].PreOffer.IsZero())
	assert.Equal(t, offerID, holdings[0].Offer)
}

func testCreateBidOffer(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()

	sub := askSubmission()
	sub.Side = types.SideBid
	// a bid maker's budget is not leveraged
	te.vault.EXPECT().Deposit(gomock.Any(), maker1, collateral, num.NewUint(10000), false).Return(nil)

	offerID, err := te.CreateOffer(context.Background(), maker1, sub)
	require.NoError(t, err)

	offer, err := te.store.Offer(offerID)
	require.NoError(t, err)
	assert.Equal(t, types.SideBid, offer.Side)
	holdings := te.store.Holdings()
	require.Len(t, holdings, 1)
	assert.Equal(t, types.SideAsk, holdings[0].Side)
}

func testCreateOfferValidation(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()

	cases := []struct {
		name   string
		mangle func(*premarket.OfferSubmission)
		want   error
	}{
		{"zero points", func(s *premarket.OfferSubmission) { s.Points = num.UintZero() }, premarket.ErrPointsMustBePositive},
		{"zero amount", func(s *premarket.OfferSubmission) { s.QuoteTokenAmount = num.UintZero() }, premarket.ErrAmountMustBePositive},
		{"tax above cap", func(s *premarket.OfferSubmission) { s.EachTradeTax = num.NewUint(2001) }, premarket.ErrTradeTaxRateTooHigh},
		{"collateral rate below 100%", func(s *premarket.OfferSubmission) { s.CollateralRate = num.NewUint(9999) }, premarket.ErrCollateralRateTooLow},
		{"unspecified side", func(s *premarket.OfferSubmission) { s.Side = types.SideUnspecified }, premarket.ErrInvalidSide},
		{"unspecified settle type", func(s *premarket.OfferSubmission) { s.SettleType = types.SettleTypeUnspecified }, premarket.ErrInvalidSettleType},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sub := askSubmission()
			c.mangle(&sub)
			_, err := te.CreateOffer(ctx, maker1, sub)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func testCreateOfferMarketNotOnline(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()

	mkt := &types.Marketplace{
		ID:            marketplaceID,
		Status:        types.MarketplaceStatusOnline,
		TokenPerPoint: num.NewUint(100),
		// TGE already in the past, the projected phase is settling
		TGE:              te.now.Add(-time.Hour),
		SettlementPeriod: 24 * time.Hour,
	}
	te.registry.EXPECT().MarketplaceInfo(marketplaceID).Return(mkt, nil)

	_, err := te.CreateOffer(context.Background(), maker1, askSubmission())
	assert.ErrorIs(t, err, premarket.ErrMarketplaceNotOnline)
}

func testCreateOfferPaused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	pauser := mocks.NewMockPauser(ctrl)
	pauser.EXPECT().Paused().Return(true).AnyTimes()

	eng, err := premarket.New(
		logging.NewTestLogger(), premarket.NewDefaultConfig(), store.New(),
		mocks.NewMockVault(ctrl), mocks.NewMockRegistry(ctrl), mocks.NewMockTimeService(ctrl),
		pauser, mocks.NewMockBroker(ctrl),
	)
	require.NoError(t, err)

	_, err = eng.CreateOffer(context.Background(), maker1, askSubmission())
	assert.ErrorIs(t, err, premarket.ErrEnginePaused)
	assert.ErrorIs(t, eng.Rollin(context.Background(), maker1), premarket.ErrEnginePaused)
}

// createAskOffer books the standard ask offer and returns its id along
// with the maker-side holding id.
func (te *testEngine) createAskOffer(t *testing.T, settleType types.SettleType) (types.AccountID, types.AccountID) {
	t.Helper()
	sub := askSubmission()
	sub.SettleType = settleType
	te.vault.EXPECT().Deposit(gomock.Any(), maker1, collateral, num.NewUint(12000), false).Return(nil)
	offerID, err := te.CreateOffer(context.Background(), maker1, sub)
	require.NoError(t, err)
	holdings := te.store.Holdings()
	require.Len(t, holdings, 1)
	return offerID, holdings[0].ID
}

func testCreateHoldingAsk(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.expectDefaultFees()
	ctx := context.Background()

	offerID, _ := te.createAskOffer(t, types.SettleTypeTurbo)

	// 500 of 1000 points: quote 5000, fee 25 (0.5%), tax 150 (3%)
	te.vault.EXPECT().Deposit(gomock.Any(), taker1, collateral, num.NewUint(5175), false).Return(nil)
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceTaxIncome, maker1, collateral, num.NewUint(150))
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceSalesRevenue, maker1, collateral, num.NewUint(5000))
	te.vault.EXPECT().AccrueFee(gomock.Any(), collateral, num.NewUint(25))

	holdingID, err := te.CreateHolding(ctx, taker1, offerID, num.NewUint(500))
	require.NoError(t, err)

	offer, err := te.store.Offer(offerID)
	require.NoError(t, err)
	assert.True(t, offer.UsedPoints.EQUint64(500))
	assert.True(t, offer.TradeTax.EQUint64(150))

	holding, err := te.store.Holding(holdingID)
	require.NoError(t, err)
	assert.Equal(t, types.SideBid, holding.Side)
	assert.Equal(t, offerID, holding.PreOffer)
	assert.True(t, holding.Offer.IsZero())
	assert.True(t, holding.QuoteTokenAmount.EQUint64(5000))
}

func testCreateHoldingBid(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.expectDefaultFees()
	ctx := context.Background()

	sub := askSubmission()
	sub.Side = types.SideBid
	te.vault.EXPECT().Deposit(gomock.Any(), maker1, collateral, num.NewUint(10000), false).Return(nil)
	offerID, err := te.CreateOffer(ctx, maker1, sub)
	require.NoError(t, err)

	// a bid taker is selling points: collateral is leveraged, revenue is theirs
	// quote 5000, collateral 6000 (120%), fee 25, tax 150
	te.vault.EXPECT().Deposit(gomock.Any(), taker1, collateral, num.NewUint(6175), false).Return(nil)
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceTaxIncome, maker1, collateral, num.NewUint(150))
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceSalesRevenue, taker1, collateral, num.NewUint(5000))
	te.vault.EXPECT().AccrueFee(gomock.Any(), collateral, num.NewUint(25))

	holdingID, err := te.CreateHolding(ctx, taker1, offerID, num.NewUint(500))
	require.NoError(t, err)

	holding, err := te.store.Holding(holdingID)
	require.NoError(t, err)
	assert.Equal(t, types.SideAsk, holding.Side)
}

func testCreateHoldingExactFill(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.expectDefaultFees()
	ctx := context.Background()

	offerID, _ := te.createAskOffer(t, types.SettleTypeTurbo)

	te.vault.EXPECT().Deposit(gomock.Any(), taker1, collateral, gomock.Any(), false).Return(nil)
	te.vault.EXPECT().AddBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	te.vault.EXPECT().AccrueFee(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	_, err := te.CreateHolding(ctx, taker1, offerID, num.NewUint(1000))
	require.NoError(t, err)

	// the offer is exactly full, one more point must be rejected
	_, err = te.CreateHolding(ctx, taker2, offerID, num.NewUint(1))
	assert.ErrorIs(t, err, premarket.ErrNotEnoughPoints)
}

func testCreateHoldingReferral(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.registry.EXPECT().FeeRate(gomock.Any()).Return(num.NewUint(accounting.DefaultPlatformFeeBps)).AnyTimes()
	te.registry.EXPECT().ReferralInfo(taker1).Return(&types.ReferralInfo{
		Referrer:     "party-referrer",
		ReferrerRate: num.NewUint(3000), // 30% of the fee
		RefereeRate:  num.NewUint(1000), // 10% of the fee
	})
	ctx := context.Background()

	offerID, _ := te.createAskOffer(t, types.SettleTypeTurbo)

	// fee 25: referrer 7, referee 2, pool 16
	te.vault.EXPECT().Deposit(gomock.Any(), taker1, collateral, num.NewUint(5175), false).Return(nil)
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceReferralBonus, "party-referrer", collateral, num.NewUint(7))
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceReferralBonus, taker1, collateral, num.NewUint(2))
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceTaxIncome, maker1, collateral, num.NewUint(150))
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceSalesRevenue, maker1, collateral, num.NewUint(5000))
	te.vault.EXPECT().AccrueFee(gomock.Any(), collateral, num.NewUint(16))

	_, err := te.CreateHolding(ctx, taker1, offerID, num.NewUint(500))
	require.NoError(t, err)
}

func testCloseOfferRefund(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.expectDefaultFees()
	ctx := context.Background()

	offerID, makerHolding := te.createAskOffer(t, types.SettleTypeProtected)

	te.vault.EXPECT().Deposit(gomock.Any(), taker1, collateral, gomock.Any(), false).Return(nil)
	// unused half: 5000 quote at 120% = 6000 back
	// declared before the catch-all: gomock matches in declaration order
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceMakerRefund, maker1, collateral, num.NewUint(6000))
	te.vault.EXPECT().AddBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	te.vault.EXPECT().AccrueFee(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	_, err := te.CreateHolding(ctx, taker1, offerID, num.NewUint(500))
	require.NoError(t, err)

	require.NoError(t, te.CloseOffer(ctx, maker1, makerHolding, offerID))

	offer, err := te.store.Offer(offerID)
	require.NoError(t, err)
	assert.Equal(t, types.OfferStatusCanceled, offer.Status)

	// a canceled offer cannot be taken or closed again
	_, err = te.CreateHolding(ctx, taker2, offerID, num.NewUint(1))
	assert.ErrorIs(t, err, premarket.ErrInvalidOfferStatus)
	assert.ErrorIs(t, te.CloseOffer(ctx, maker1, makerHolding, offerID), premarket.ErrInvalidOfferStatus)
}

func testRelistRedeposit(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.expectDefaultFees()
	ctx := context.Background()

	offerID, makerHolding := te.createAskOffer(t, types.SettleTypeProtected)

	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceMakerRefund, maker1, collateral, num.NewUint(12000))
	require.NoError(t, te.CloseOffer(ctx, maker1, makerHolding, offerID))

	// what the close released, the relist re-deposits
	te.vault.EXPECT().Deposit(gomock.Any(), maker1, collateral, num.NewUint(12000), false).Return(nil)
	require.NoError(t, te.RelistHolding(ctx, maker1, makerHolding, offerID))

	offer, err := te.store.Offer(offerID)
	require.NoError(t, err)
	assert.Equal(t, types.OfferStatusVirgin, offer.Status)
}

func testCloseOfferAuthority(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()

	offerID, makerHolding := te.createAskOffer(t, types.SettleTypeProtected)

	err := te.CloseOffer(context.Background(), taker1, makerHolding, offerID)
	assert.ErrorIs(t, err, premarket.ErrNotOfferAuthority)
	err = te.RelistHolding(context.Background(), taker1, makerHolding, offerID)
	assert.ErrorIs(t, err, premarket.ErrNotOfferAuthority)
}

// takeHalf takes 500 points of the given ask offer for taker1 with all
// accounting expectations relaxed.
func (te *testEngine) takeHalf(t *testing.T, offerID types.AccountID) types.AccountID {
	t.Helper()
	te.vault.EXPECT().Deposit(gomock.Any(), taker1, collateral, gomock.Any(), false).Return(nil)
	te.vault.EXPECT().AddBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	te.vault.EXPECT().AccrueFee(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	holdingID, err := te.CreateHolding(context.Background(), taker1, offerID, num.NewUint(500))
	require.NoError(t, err)
	return holdingID
}

func testListHoldingProtected(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.expectDefaultFees()
	ctx := context.Background()

	offerID, _ := te.createAskOffer(t, types.SettleTypeProtected)
	holdingID := te.takeHalf(t, offerID)

	// 4000 at 150%, a protected listing posts its own collateral
	te.vault.EXPECT().Deposit(gomock.Any(), taker1, collateral, num.NewUint(6000), false).Return(nil)
	subOfferID, err := te.ListHolding(ctx, taker1, holdingID, num.NewUint(4000), num.NewUint(15000))
	require.NoError(t, err)

	sub, err := te.store.Offer(subOfferID)
	require.NoError(t, err)
	assert.Equal(t, types.SideAsk, sub.Side)
	assert.Equal(t, taker1, sub.Authority)
	assert.True(t, sub.Points.EQUint64(500))

	holding, err := te.store.Holding(holdingID)
	require.NoError(t, err)
	assert.Equal(t, subOfferID, holding.Offer)
}

func testListHoldingTurbo(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.expectDefaultFees()
	ctx := context.Background()

	offerID, _ := te.createAskOffer(t, types.SettleTypeTurbo)
	holdingID := te.takeHalf(t, offerID)

	// a turbo chain has a single collateral rate
	_, err := te.ListHolding(ctx, taker1, holdingID, num.NewUint(4000), num.NewUint(15000))
	assert.ErrorIs(t, err, premarket.ErrCollateralRateMismatch)

	// at the chain rate no deposit is taken, the root's collateral backs it
	subOfferID, err := te.ListHolding(ctx, taker1, holdingID, num.NewUint(4000), num.NewUint(12000))
	require.NoError(t, err)
	require.False(t, subOfferID.IsZero())

	root, err := te.store.Offer(offerID)
	require.NoError(t, err)
	assert.Equal(t, types.AbortStatusAllocationPropagated, root.AbortStatus)
}

func testListHoldingTwice(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.expectDefaultFees()
	ctx := context.Background()

	offerID, makerHolding := te.createAskOffer(t, types.SettleTypeTurbo)
	holdingID := te.takeHalf(t, offerID)

	_, err := te.ListHolding(ctx, taker1, holdingID, num.NewUint(4000), num.NewUint(12000))
	require.NoError(t, err)
	_, err = te.ListHolding(ctx, taker1, holdingID, num.NewUint(4000), num.NewUint(12000))
	assert.ErrorIs(t, err, premarket.ErrHoldingAlreadyListed)

	// the maker's own holding is bound to the origin offer from creation
	_, err = te.ListHolding(ctx, maker1, makerHolding, num.NewUint(4000), num.NewUint(12000))
	assert.ErrorIs(t, err, premarket.ErrHoldingAlreadyListed)
}

func testAbortAskOffer(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.expectDefaultFees()
	ctx := context.Background()

	offerID, makerHolding := te.createAskOffer(t, types.SettleTypeTurbo)

	// take 300 of 1000
	te.vault.EXPECT().Deposit(gomock.Any(), taker1, collateral, gomock.Any(), false).Return(nil)
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceTaxIncome, gomock.Any(), gomock.Any(), gomock.Any())
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceSalesRevenue, gomock.Any(), gomock.Any(), gomock.Any())
	te.vault.EXPECT().AccrueFee(gomock.Any(), gomock.Any(), gomock.Any())
	takerHolding, err := te.CreateHolding(ctx, taker1, offerID, num.NewUint(300))
	require.NoError(t, err)

	// full liability 12000, claimed portion 3600, refund 8400
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceMakerRefund, maker1, collateral, num.NewUint(8400))
	require.NoError(t, te.AbortAskOffer(ctx, maker1, makerHolding, offerID))

	offer, err := te.store.Offer(offerID)
	require.NoError(t, err)
	assert.Equal(t, types.AbortStatusAborted, offer.AbortStatus)
	assert.Equal(t, types.OfferStatusSettled, offer.Status)

	// a second abort is rejected
	err = te.AbortAskOffer(ctx, maker1, makerHolding, offerID)
	assert.ErrorIs(t, err, premarket.ErrInvalidAbortStatus)

	// the taker recovers its 3000 stake
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceRemainingCash, taker1, collateral, num.NewUint(3000))
	require.NoError(t, te.AbortBidHolding(ctx, taker1, takerHolding, offerID))
}

func testAbortBidHolding(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.expectDefaultFees()
	ctx := context.Background()

	offerID, makerHolding := te.createAskOffer(t, types.SettleTypeTurbo)
	// declared before takeHalf's catch-all: gomock matches in declaration order
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceMakerRefund, maker1, collateral, gomock.Any())
	te.vault.EXPECT().AddBalance(gomock.Any(), types.BalanceRemainingCash, taker1, collateral, num.NewUint(5000))
	takerHolding := te.takeHalf(t, offerID)

	// not aborted yet, the holder cannot cash out
	err := te.AbortBidHolding(ctx, taker1, takerHolding, offerID)
	assert.ErrorIs(t, err, premarket.ErrOfferNotAborted)

	require.NoError(t, te.AbortAskOffer(ctx, maker1, makerHolding, offerID))

	require.NoError(t, te.AbortBidHolding(ctx, taker1, takerHolding, offerID))

	// and only once
	err = te.AbortBidHolding(ctx, taker1, takerHolding, offerID)
	assert.ErrorIs(t, err, premarket.ErrInvalidHoldingStatus)
}

func testAbortAfterPropagation(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	te.expectOnlineMarketplace()
	te.expectDefaultFees()
	ctx := context.Background()

	offerID, makerHolding := te.createAskOffer(t, types.SettleTypeTurbo)
	holdingID := te.takeHalf(t, offerID)

	_, err := te.ListHolding(ctx, taker1, holdingID, num.NewUint(4000), num.NewUint(12000))
	require.NoError(t, err)

	// liability moved down the chain, the root cannot walk away
	err = te.AbortAskOffer(ctx, maker1, makerHolding, offerID)
	assert.ErrorIs(t, err, premarket.ErrInvalidAbortStatus)
}

func testRollinCooldown(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()

	require.NoError(t, te.Rollin(ctx, taker1))
	assert.ErrorIs(t, te.Rollin(ctx, taker1), premarket.ErrRollinTooSoon)

	// another party is unaffected
	require.NoError(t, te.Rollin(ctx, taker2))

	// past the cooldown the same party may roll in again
	te.now = te.now.Add(time.Hour + time.Second)
	require.NoError(t, te.Rollin(ctx, taker1))
}
