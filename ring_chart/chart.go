/*
	Copyright 2026 The ringchart Authors
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package ringchart renders ring charts.
//
// A Chart lays out ordered rows of data as a ring chart: each row is a tick
// placed around the circle, and each of its series keys is placed on a
// concentric ring, either by its rank within the tick (a rank map) or colored
// by its value (a heat map).  The laid-out Scene is drawn by a
// render.Backend, and hover and click events on its drawables drive
// animated highlights, which are sent to the Backend as attribute changes.
//
// For example, to render a chart as SVG:
//
//	backend := svgbackend.New()
//	chart := ringchart.New(backend,
//	  ringchart.WithSize(800, 600),
//	  ringchart.WithOverrides(options.Override{
//	    ChartType: options.Ptr(options.HeatMap),
//	  }),
//	)
//	if _, err := chart.Render(rows); err != nil {
//	  return err
//	}
//	_, err := backend.WriteTo(w)
//	return err
//
// A Chart is not safe for concurrent use.
package ringchart

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/analyzer2004/ringchart/dataset"
	"github.com/analyzer2004/ringchart/highlight"
	"github.com/analyzer2004/ringchart/legend"
	"github.com/analyzer2004/ringchart/options"
	"github.com/analyzer2004/ringchart/rank"
	"github.com/analyzer2004/ringchart/render"
	"github.com/analyzer2004/ringchart/sizing"
)

// Default chart dimensions, in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Option configures a Chart.
type Option func(c *Chart)

// WithSize sets the chart's dimensions.
func WithSize(width, height float64) Option {
	return func(c *Chart) {
		c.width, c.height = width, height
	}
}

// WithOptions replaces the chart's Options.
func WithOptions(opts options.Options) Option {
	return func(c *Chart) {
		c.opts = opts
	}
}

// WithOverrides merges overrides onto the chart's Options.
func WithOverrides(overrides ...options.Override) Option {
	return func(c *Chart) {
		c.opts = options.Merge(c.opts, overrides...)
	}
}

// WithLogger sets the chart's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chart) {
		c.logger = logger
	}
}

// WithClock sets the clock driving highlight transitions.
func WithClock(now func() time.Time) Option {
	return func(c *Chart) {
		c.now = now
	}
}

// WithID sets the chart's unique ID, which otherwise is random.
func WithID(id string) Option {
	return func(c *Chart) {
		c.id = id
	}
}

// OnHover sets the callback notified when an Entity is hovered.
func OnHover(cb highlight.Callback) Option {
	return func(c *Chart) {
		c.callbacks.OnHover = cb
	}
}

// OnClick sets the callback notified when an Entity is focused by a click.
func OnClick(cb highlight.Callback) Option {
	return func(c *Chart) {
		c.callbacks.OnClick = cb
	}
}

// OnCancel sets the callback notified when a focus is cleared.
func OnCancel(cb highlight.Callback) Option {
	return func(c *Chart) {
		c.callbacks.OnCancel = cb
	}
}

// Chart is a single ring chart instance.
type Chart struct {
	id            string
	width, height float64
	opts          options.Options
	backend       render.Backend
	logger        *slog.Logger
	now           func() time.Time
	callbacks     highlight.Callbacks

	// Set by Render.
	scene      *render.Scene
	mode       highlight.Mode
	controller *highlight.Controller
	scheduler  *highlight.Scheduler
	// applyErr holds the first error encountered while applying a highlight.
	applyErr error
}

// New returns a new Chart drawing to backend.
func New(backend render.Backend, opts ...Option) *Chart {
	c := &Chart{
		id:      newID(idLength),
		width:   DefaultWidth,
		height:  DefaultHeight,
		opts:    options.Default(),
		backend: backend,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the receiver's unique ID.
func (c *Chart) ID() string {
	return c.id
}

// Options returns the receiver's Options.
func (c *Chart) Options() options.Options {
	return c.opts
}

// Scene returns the most recently rendered Scene, or nil.
func (c *Chart) Scene() *render.Scene {
	return c.scene
}

// Render lays out rows, draws them to the receiver's Backend, and returns
// the drawn Scene.  Invalid options or data fail before anything is drawn.
// Any prior focus is discarded.
func (c *Chart) Render(rows []dataset.Row) (*render.Scene, error) {
	if err := c.opts.Validate(); err != nil {
		return nil, err
	}
	if !(c.width > 0 && c.height > 0) {
		return nil, dataset.NewConfigurationError("size", errors.New("width and height must be positive"))
	}
	res, err := rank.Transform(rows, rank.ConfigFrom(c.opts))
	if err != nil {
		return nil, err
	}
	radius, err := sizing.Compute(c.width, c.height, c.opts, len(res.Rows), len(res.Keys))
	if err != nil {
		return nil, dataset.NewConfigurationError("tick.fontSize", err)
	}
	geometry := render.NewGeometry(res, c.opts, radius)
	var leg *legend.Legend
	if c.opts.Legend.Enabled {
		if leg, err = legend.Build(res.Keys, geometry.Colors, c.opts.Legend, c.opts.IsSequential()); err != nil {
			return nil, dataset.NewConfigurationError("legend", err)
		}
	}
	scene, err := render.Build(render.Input{
		ID:       c.id,
		Width:    c.width,
		Height:   c.height,
		Options:  c.opts,
		Result:   res,
		Geometry: geometry,
		Legend:   leg,
	})
	if err != nil {
		return nil, err
	}
	if err := c.backend.Draw(scene); err != nil {
		return nil, err
	}
	c.scene = scene
	c.mode = highlight.ModeFrom(c.opts)
	c.controller = highlight.NewController((*applier)(c), c.opts.ClickAction, c.callbacks)
	c.scheduler = highlight.NewScheduler()
	c.applyErr = nil
	c.logger.Debug(
		"rendered ring chart",
		"id", c.id,
		"chartType", c.opts.ChartType,
		"ticks", len(res.Rows),
		"keys", len(res.Keys),
		"outerRadius", radius.Outer,
		"nodeRadius", radius.Node,
	)
	return scene, nil
}
