// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package menu assembles scraped (section, title) listings into a Menu and
// attaches extracted beverage details. It is the boundary around the pure
// detail package: extraction failures are logged, counted and absorbed here
// so that one bad title never affects its siblings.
package menu

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/menu-engine/internal/detail"
	"github.com/pdiddy/menu-engine/pkg/types"
)

// ErrNoSections is returned when there are no listings to build a menu from.
var ErrNoSections = errors.New("no menu sections found in listings")

// Summary holds counts from one menu build.
type Summary struct {
	Sections  int
	Beverages int
	Detailed  int
	Failed    int
	Skipped   int
}

// Total returns the number of listings processed.
func (s Summary) Total() int {
	return s.Detailed + s.Failed + s.Skipped
}

// HasFailures reports whether any beverage title failed extraction.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Builder assembles menus from listings.
type Builder struct {
	cfg     types.ParseConfig
	logger  *zap.Logger
	metrics *Metrics
	now     func() time.Time
}

// NewBuilder returns a Builder. A nil logger discards logs and nil metrics
// records nothing.
func NewBuilder(cfg types.ParseConfig, logger *zap.Logger, metrics *Metrics) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// job locates one beverage awaiting extraction.
type job struct {
	section int
	item    int
}

// Build groups listings into sections in first-seen order, deciding each
// section's category once, and extracts every non-empty title concurrently.
// Titles that cannot be parsed keep a nil Detail. Build fails only when
// there is nothing to build or ctx is cancelled.
func (b *Builder) Build(ctx context.Context, location string, listings []Listing) (*types.Menu, Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, Summary{}, err
	}
	if len(listings) == 0 {
		b.logger.Error("unable to build menu", zap.Error(ErrNoSections))
		return nil, Summary{}, ErrNoSections
	}

	start := time.Now()
	m := &types.Menu{Location: location, Parsed: b.now()}
	var summary Summary

	sectionIndex := make(map[string]int)
	itemCount := make(map[int]int)
	var jobs []job

	for _, l := range listings {
		name := strings.TrimSpace(l.Section)
		si, ok := sectionIndex[name]
		if !ok {
			si = len(m.Sections)
			sectionIndex[name] = si
			m.Sections = append(m.Sections, types.Section{
				Name:      name,
				Category:  detail.ClassifySection(name),
				Beverages: []types.Beverage{},
			})
			b.logger.Debug("parsing section",
				zap.Int("section", si+1),
				zap.String("name", name),
				zap.String("category", string(m.Sections[si].Category)))
		}
		itemCount[si]++

		title := strings.TrimSpace(l.Title)
		if title == "" {
			b.logger.Warn("empty beverage",
				zap.Int("section", si+1),
				zap.Int("item", itemCount[si]))
			b.metrics.recordBeverage(m.Sections[si].Category, outcomeSkipped)
			summary.Skipped++
			continue
		}

		m.Sections[si].Beverages = append(m.Sections[si].Beverages, types.Beverage{Title: title})
		jobs = append(jobs, job{section: si, item: len(m.Sections[si].Beverages) - 1})
	}

	errs, err := b.extractAll(ctx, m, jobs)
	if err != nil {
		return nil, summary, err
	}

	for i, j := range jobs {
		section := &m.Sections[j.section]
		bev := section.Beverages[j.item]
		if errs[i] != nil {
			reason := detail.FailureReason(errs[i])
			b.logger.Debug("no detail extracted",
				zap.String("section", section.Name),
				zap.String("title", bev.Title),
				zap.String("reason", reason),
				zap.Error(errs[i]))
			b.metrics.recordBeverage(section.Category, reason)
			summary.Failed++
			continue
		}
		b.metrics.recordBeverage(section.Category, outcomeDetailed)
		summary.Detailed++
	}

	summary.Sections = len(m.Sections)
	summary.Beverages = len(jobs)
	b.metrics.observeBuild(time.Since(start).Seconds())

	b.logger.Info("built menu",
		zap.String("location", location),
		zap.Int("sections", summary.Sections),
		zap.Int("beverages", summary.Beverages),
		zap.Int("detailed", summary.Detailed),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped))

	return m, summary, nil
}

// extractAll fills in Detail for every job, running up to the configured
// number of extractions at once. Each job writes only its own beverage, and
// its extraction error is returned at the job's index.
func (b *Builder) extractAll(ctx context.Context, m *types.Menu, jobs []job) ([]error, error) {
	errs := make([]error, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.WorkerLimit())

	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			section := &m.Sections[j.section]
			bev := &section.Beverages[j.item]
			d, err := detail.Extract(bev.Title, section.Category)
			if err != nil {
				errs[i] = err
				return nil
			}
			bev.Detail = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return errs, nil
}
