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

	vgrand "code.zephyrlabs.dev/premarket/libs/rand"
)

type Type int

// Base is the common denominator all event-bus events share.
type Base struct {
	ctx     context.Context
	traceID string
	seq     uint64
	et      Type
}

// Event is the base event interface type.
type Event interface {
	Type() Type
	Context() context.Context
	TraceID() string
	Sequence() uint64
	SetSequenceID(s uint64)
}

const (
	// All is used by subscribers to receive every event, it has no
	// corresponding payload.
	All Type = iota
	OfferCreatedEvent
	HoldingCreatedEvent
	HoldingListedEvent
	OfferClosedEvent
	OfferRelistedEvent
	AskOfferAbortedEvent
	BidHoldingAbortedEvent
	RollinEvent
	BidOfferClosedEvent
	BidHoldingClosedEvent
	AskMakerSettledEvent
	AskHoldingSettledEvent
)

var eventStrings = map[Type]string{
	All:                    "ALL",
	OfferCreatedEvent:      "OfferCreated",
	HoldingCreatedEvent:    "HoldingCreated",
	HoldingListedEvent:     "HoldingListed",
	OfferClosedEvent:       "OfferClosed",
	OfferRelistedEvent:     "OfferRelisted",
	AskOfferAbortedEvent:   "AskOfferAborted",
	BidHoldingAbortedEvent: "BidHoldingAborted",
	RollinEvent:            "Rollin",
	BidOfferClosedEvent:    "BidOfferClosed",
	BidHoldingClosedEvent:  "BidHoldingClosed",
	AskMakerSettledEvent:   "AskMakerSettled",
	AskHoldingSettledEvent: "AskHoldingSettled",
}

func (t Type) String() string {
	s, ok := eventStrings[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}

type traceIDKey int

const traceIDCtxKey traceIDKey = 0

// WithTraceID attaches a trace ID to the given context, so all events
// raised while processing one external call share it.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDCtxKey, traceID)
}

func traceIDFromContext(ctx context.Context) string {
	if tID, ok := ctx.Value(traceIDCtxKey).(string); ok {
		return tID
	}
	return vgrand.RandomStr(16)
}

func newBase(ctx context.Context, t Type) *Base {
	return &Base{
		ctx:     ctx,
		traceID: traceIDFromContext(ctx),
		et:      t,
	}
}

func (b Base) Type() Type {
	return b.et
}

func (b Base) Context() context.Context {
	return b.ctx
}

func (b Base) TraceID() string {
	return b.traceID
}

func (b Base) Sequence() uint64 {
	return b.seq
}

func (b *Base) SetSequenceID(s uint64) {
	// sequence ID can only be set once
	if b.seq != 0 {
		return
	}
	b.seq = s
}
