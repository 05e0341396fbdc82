// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// Outcome labels recorded for beverages that did not fail extraction.
const (
	outcomeDetailed = "detailed"
	outcomeSkipped  = "skipped"
)

// Metrics counts extraction outcomes per category. A nil *Metrics records
// nothing.
type Metrics struct {
	beverages     *prometheus.CounterVec
	buildDuration prometheus.Histogram
}

// NewMetrics creates the menu metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		beverages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menu_engine_beverages_total",
				Help: "Beverages processed, by category and extraction outcome",
			},
			[]string{"category", "outcome"},
		),
		buildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "menu_engine_build_duration_seconds",
				Help:    "Duration of menu assembly",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.beverages, m.buildDuration)
	return m
}

func (m *Metrics) recordBeverage(category types.Category, outcome string) {
	if m == nil {
		return
	}
	m.beverages.WithLabelValues(string(category), outcome).Inc()
}

func (m *Metrics) observeBuild(seconds float64) {
	if m == nil {
		return
	}
	m.buildDuration.Observe(seconds)
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format read by the node exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
