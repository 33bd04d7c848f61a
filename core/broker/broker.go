// Copyright (C) 2023 Gobalsky Labs Limited
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

package broker

import (
	"sync"

	"code.lyraprotocol.io/lyra/core/events"
	"code.lyraprotocol.io/lyra/logging"
)

// Interface is the event bus as seen by the engines, send events here.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks code.lyraprotocol.io/lyra/core/broker Interface
type Interface interface {
	Send(event events.Event)
	SendBatch(events []events.Event)
}

// Subscriber receives events pushed through the broker.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/subscriber_mock.go -package mocks code.lyraprotocol.io/lyra/core/broker Subscriber
type Subscriber interface {
	Push(evts ...events.Event)
	Types() []events.Type
}

type subscription struct {
	Subscriber
	id int
}

// Broker - the base broker type, fans events out to subscribers by type.
type Broker struct {
	log *logging.Logger

	mu    sync.Mutex
	tSubs map[events.Type]map[int]*subscription
	subs  map[int]*subscription
	// a unique ID for all subscribers, regardless of what event
	// types they subscribe to
	lastID int
}

// New creates a new base broker.
func New(log *logging.Logger, config Config) *Broker {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Broker{
		log:   log,
		tSubs: map[events.Type]map[int]*subscription{},
		subs:  map[int]*subscription{},
	}
}

// Subscribe registers a subscriber for the event types it declares,
// returns the key to use for Unsubscribe.
func (b *Broker) Subscribe(s Subscriber) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastID++
	sub := &subscription{
		Subscriber: s,
		id:         b.lastID,
	}
	b.subs[sub.id] = sub
	for _, t := range s.Types() {
		if _, ok := b.tSubs[t]; !ok {
			b.tSubs[t] = map[int]*subscription{}
		}
		b.tSubs[t][sub.id] = sub
	}
	return sub.id
}

// Unsubscribe removes the subscriber with the given key, no-op on
// unknown keys.
func (b *Broker) Unsubscribe(k int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub, ok := b.subs[k]
	if !ok {
		return
	}
	for _, t := range sub.Types() {
		delete(b.tSubs[t], k)
	}
	delete(b.subs, k)
}

// Send pushes a single event to all interested subscribers.
func (b *Broker) Send(event events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.push(event)
}

// SendBatch pushes a batch of events to all interested subscribers,
// preserving emission order.
func (b *Broker) SendBatch(evts []events.Event) {
	if len(evts) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range evts {
		b.push(e)
	}
}

func (b *Broker) push(event events.Event) {
	if b.log.GetLevel() == logging.DebugLevel {
		b.log.Debug("sending event",
			logging.String("type", event.Type().String()),
			logging.Uint64("sequence", event.Sequence()),
		)
	}
	for _, sub := range b.tSubs[event.Type()] {
		sub.Push(event)
	}
	for _, sub := range b.tSubs[events.All] {
		sub.Push(event)
	}
}
