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

package metrics

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Gauge instrument = iota
	Counter
)

var (
	ErrInstrumentNotSupported = errors.New("instrument type unsupported")
	ErrInstrumentTypeMismatch = errors.New("instrument is not of the expected type")
)

var (
	engineTime         *prometheus.CounterVec
	operationCounter   *prometheus.CounterVec
	liquidationCounter prometheus.Counter
)

// abstract prometheus types.
type instrument int

// combine the prometheus options and a way to differentiate between
// plain and vector instruments.
type instrumentOpts struct {
	opts    prometheus.Opts
	vectors []string
}

type mi struct {
	gaugeV   *prometheus.GaugeVec
	gauge    prometheus.Gauge
	counterV *prometheus.CounterVec
	counter  prometheus.Counter
}

// InstrumentOption - vararg for instrument options setting.
type InstrumentOption func(o *instrumentOpts)

// Vectors - configuration used to create a vector of a given interface,
// slice of label names.
func Vectors(labels ...string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.vectors = labels
	}
}

// Help - set the help field on instrument.
func Help(help string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Help = help
	}
}

// Namespace - set namespace.
func Namespace(ns string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Namespace = ns
	}
}

// AddInstrument configures and registers a new metrics instrument.
func AddInstrument(t instrument, name string, opts ...InstrumentOption) (*mi, error) {
	var col prometheus.Collector
	ret := mi{}
	opt := instrumentOpts{
		opts: prometheus.Opts{
			Name: name,
		},
	}
	for _, o := range opts {
		o(&opt)
	}
	switch t {
	case Gauge:
		o := opt.gauge()
		if len(opt.vectors) == 0 {
			ret.gauge = prometheus.NewGauge(o)
			col = ret.gauge
		} else {
			ret.gaugeV = prometheus.NewGaugeVec(o, opt.vectors)
			col = ret.gaugeV
		}
	case Counter:
		o := opt.counter()
		if len(opt.vectors) == 0 {
			ret.counter = prometheus.NewCounter(o)
			col = ret.counter
		} else {
			ret.counterV = prometheus.NewCounterVec(o, opt.vectors)
			col = ret.counterV
		}
	default:
		return nil, ErrInstrumentNotSupported
	}
	if err := prometheus.Register(col); err != nil {
		return nil, err
	}
	return &ret, nil
}

// Start enables metrics given the config.
func Start(conf Config) {
	if !conf.Enabled {
		return
	}
	if err := setupMetrics(); err != nil {
		panic("could not set up metrics")
	}
	http.Handle(conf.Path, promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", conf.Port), nil))
	}()
}

func (i instrumentOpts) gauge() prometheus.GaugeOpts {
	return prometheus.GaugeOpts(i.opts)
}

func (i instrumentOpts) counter() prometheus.CounterOpts {
	return prometheus.CounterOpts(i.opts)
}

func (m mi) Gauge() (prometheus.Gauge, error) {
	if m.gauge == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.gauge, nil
}

func (m mi) GaugeVec() (*prometheus.GaugeVec, error) {
	if m.gaugeV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.gaugeV, nil
}

func (m mi) Counter() (prometheus.Counter, error) {
	if m.counter == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counter, nil
}

func (m mi) CounterVec() (*prometheus.CounterVec, error) {
	if m.counterV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counterV, nil
}

func setupMetrics() error {
	h, err := AddInstrument(
		Counter,
		"engine_seconds_total",
		Namespace("lyra"),
		Vectors("engine", "fn"),
	)
	if err != nil {
		return err
	}
	est, err := h.CounterVec()
	if err != nil {
		return err
	}
	engineTime = est

	h, err = AddInstrument(
		Counter,
		"operations_total",
		Namespace("lyra"),
		Vectors("operation", "outcome"),
		Help("Number of engine operations processed"),
	)
	if err != nil {
		return err
	}
	oc, err := h.CounterVec()
	if err != nil {
		return err
	}
	operationCounter = oc

	h, err = AddInstrument(
		Counter,
		"liquidations_total",
		Namespace("lyra"),
		Help("Number of successful liquidations"),
	)
	if err != nil {
		return err
	}
	lc, err := h.Counter()
	if err != nil {
		return err
	}
	liquidationCounter = lc

	return nil
}

// OperationCounterInc counts a processed operation by name and outcome.
func OperationCounterInc(labelValues ...string) {
	if operationCounter == nil {
		return
	}
	operationCounter.WithLabelValues(labelValues...).Inc()
}

// LiquidationCounterInc counts a successful liquidation.
func LiquidationCounterInc() {
	if liquidationCounter == nil {
		return
	}
	liquidationCounter.Inc()
}
