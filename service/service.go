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

// Package service serves ring charts of datasets over HTTP.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/analyzer2004/ringchart/dataset"
	"github.com/analyzer2004/ringchart/options"
	ringchart "github.com/analyzer2004/ringchart/ring_chart"
	svgbackend "github.com/analyzer2004/ringchart/svg_backend"
	"golang.org/x/sync/errgroup"
)

// ChartRequest requests a chart of a dataset.
type ChartRequest struct {
	Dataset string `json:"dataset"`
	// Sheet selects the worksheet of spreadsheet datasets.
	Sheet string `json:"sheet,omitempty"`
	// Width and Height default to the chart defaults if zero.
	Width   float64          `json:"width,omitempty"`
	Height  float64          `json:"height,omitempty"`
	Options options.Override `json:"options"`
}

// ChartResponse holds a rendered chart.
type ChartResponse struct {
	Dataset string `json:"dataset"`
	SVG     string `json:"svg"`
}

// Service renders charts of datasets provided by a Fetcher.
type Service struct {
	fetcher  Fetcher
	logger   *slog.Logger
	wrappers []WrapFunc
}

// New returns a new Service rendering datasets from fetcher.  If logger is
// nil, nothing is logged.
func New(fetcher Fetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		fetcher: fetcher,
		logger:  logger,
	}
}

// RenderSVG renders the requested chart as an SVG document.
func (s *Service) RenderSVG(ctx context.Context, req ChartRequest) ([]byte, error) {
	if req.Dataset == "" {
		return nil, dataset.NewConfigurationError("dataset", errors.New("no dataset specified"))
	}
	rows, err := s.fetcher.Fetch(ctx, req.Dataset, req.Sheet)
	if err != nil {
		return nil, err
	}
	width, height := req.Width, req.Height
	if width == 0 {
		width = ringchart.DefaultWidth
	}
	if height == 0 {
		height = ringchart.DefaultHeight
	}
	backend := svgbackend.New()
	chart := ringchart.New(backend,
		ringchart.WithSize(width, height),
		ringchart.WithOverrides(req.Options),
		ringchart.WithLogger(s.logger.With("dataset", req.Dataset)),
	)
	if _, err := chart.Render(rows); err != nil {
		return nil, fmt.Errorf("failed to render dataset '%s': %w", req.Dataset, err)
	}
	var buf bytes.Buffer
	if _, err := backend.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HandleRequests renders each of reqs concurrently, returning their
// responses in request order.  If any request fails, the first error is
// returned.
func (s *Service) HandleRequests(ctx context.Context, reqs []ChartRequest) ([]ChartResponse, error) {
	start := time.Now()
	ret := make([]ChartResponse, len(reqs))
	errg, ctx := errgroup.WithContext(ctx)
	for idx, req := range reqs {
		idx, req := idx, req
		errg.Go(func() error {
			svg, err := s.RenderSVG(ctx, req)
			if err != nil {
				return err
			}
			ret[idx] = ChartResponse{
				Dataset: req.Dataset,
				SVG:     string(svg),
			}
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		s.logger.Error("chart requests failed", "requests", len(reqs), "error", err)
		return nil, err
	}
	s.logger.Info("handled chart requests", "requests", len(reqs), "elapsed", time.Since(start))
	return ret, nil
}
