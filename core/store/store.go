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

package store

import (
	"errors"
	"sort"
	"sync"

	"code.zephyrlabs.dev/premarket/core/types"
)

var (
	ErrMakerAlreadyExists   = errors.New("maker already exists")
	ErrOfferAlreadyExists   = errors.New("offer already exists")
	ErrHoldingAlreadyExists = errors.New("holding already exists")
	ErrMakerDoesNotExist    = errors.New("maker does not exist")
	ErrOfferDoesNotExist    = errors.New("offer does not exist")
	ErrHoldingDoesNotExist  = errors.New("holding does not exist")
)

// Store is the single source of truth for maker, offer and holding
// records. Accessors hand out deep clones so callers can never mutate a
// record without going back through a write method; records are never
// deleted.
type Store struct {
	mu       sync.RWMutex
	makers   map[types.AccountID]*types.Maker
	offers   map[types.AccountID]*types.Offer
	holdings map[types.AccountID]*types.Holding
}

func New() *Store {
	return &Store{
		makers:   map[types.AccountID]*types.Maker{},
		offers:   map[types.AccountID]*types.Offer{},
		holdings: map[types.AccountID]*types.Holding{},
	}
}

func (s *Store) HasMaker(id types.AccountID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.makers[id]
	return ok
}

func (s *Store) HasOffer(id types.AccountID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.offers[id]
	return ok
}

func (s *Store) HasHolding(id types.AccountID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.holdings[id]
	return ok
}

func (s *Store) Maker(id types.AccountID) (*types.Maker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.makers[id]
	if !ok {
		return nil, ErrMakerDoesNotExist
	}
	return m.Clone(), nil
}

func (s *Store) Offer(id types.AccountID) (*types.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.offers[id]
	if !ok {
		return nil, ErrOfferDoesNotExist
	}
	return o.Clone(), nil
}

func (s *Store) Holding(id types.AccountID) (*types.Holding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.holdings[id]
	if !ok {
		return nil, ErrHoldingDoesNotExist
	}
	return h.Clone(), nil
}

func (s *Store) AddMaker(m *types.Maker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.makers[m.ID]; ok {
		return ErrMakerAlreadyExists
	}
	s.makers[m.ID] = m.Clone()
	return nil
}

func (s *Store) AddOffer(o *types.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offers[o.ID]; ok {
		return ErrOfferAlreadyExists
	}
	s.offers[o.ID] = o.Clone()
	return nil
}

func (s *Store) AddHolding(h *types.Holding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.holdings[h.ID]; ok {
		return ErrHoldingAlreadyExists
	}
	s.holdings[h.ID] = h.Clone()
	return nil
}

// UpdateOffer replaces an existing offer record.
func (s *Store) UpdateOffer(o *types.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offers[o.ID]; !ok {
		return ErrOfferDoesNotExist
	}
	s.offers[o.ID] = o.Clone()
	return nil
}

// UpdateHolding replaces an existing holding record.
func (s *Store) UpdateHolding(h *types.Holding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.holdings[h.ID]; !ok {
		return ErrHoldingDoesNotExist
	}
	s.holdings[h.ID] = h.Clone()
	return nil
}

// Offers returns clones of every offer record, ordered by sequence
// number so enumeration is deterministic.
func (s *Store) Offers() []*types.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*types.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		out = append(out, o.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// Holdings returns clones of every holding record, ordered by sequence
// number.
func (s *Store) Holdings() []*types.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*types.Holding, 0, len(s.holdings))
	for _, h := range s.holdings {
		out = append(out, h.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// Makers returns clones of every maker record, ordered by ID.
func (s *Store) Makers() []*types.Maker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*types.Maker, 0, len(s.makers))
	for _, m := range s.makers {
		out = append(out, m.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
