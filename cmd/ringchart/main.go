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

// Package main provides the ringchart CLI, which renders datasets as SVG
// ring charts or serves them over HTTP.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/analyzer2004/ringchart/dataset"
	"github.com/analyzer2004/ringchart/options"
	ringchart "github.com/analyzer2004/ringchart/ring_chart"
	"github.com/analyzer2004/ringchart/service"
	svgbackend "github.com/analyzer2004/ringchart/svg_backend"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	optionsPath string
	outputPath  string
	width       float64
	height      float64
	sheet       string
	tickField   string
	chartType   string
	order       string
	nodeStyle   string

	port     int
	dataRoot string
	cacheCap int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "ringchart",
		Short:         "Render datasets as radial ring charts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debugging output")

	renderCmd := &cobra.Command{
		Use:   "render [data file]",
		Short: "Render a CSV, JSON or XLSX dataset as an SVG ring chart",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&optionsPath, "options", "", "YAML chart options file")
	renderCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().Float64Var(&width, "width", ringchart.DefaultWidth, "Chart width in pixels")
	renderCmd.Flags().Float64Var(&height, "height", ringchart.DefaultHeight, "Chart height in pixels")
	renderCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet of an XLSX dataset (default: the first)")
	renderCmd.Flags().StringVar(&tickField, "tick", "", "Tick field (default: the first field)")
	renderCmd.Flags().StringVar(&chartType, "type", "", "Chart type: rankmap or heatmap")
	renderCmd.Flags().StringVar(&order, "order", "", "Rank order: asc or desc")
	renderCmd.Flags().StringVar(&nodeStyle, "node-style", "", "Node style: arc, circle or rect")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ring charts of the datasets under a directory",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().IntVar(&port, "port", 7410, "Port to serve on")
	serveCmd.Flags().StringVar(&dataRoot, "data-root", ".", "The root path for chartable datasets")
	serveCmd.Flags().IntVar(&cacheCap, "cache", 10, "Number of datasets to keep loaded")

	rootCmd.AddCommand(renderCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// flagOverrides returns an Override holding the explicitly set option
// flags of cmd.
func flagOverrides(cmd *cobra.Command) options.Override {
	var ov options.Override
	flags := cmd.Flags()
	if flags.Changed("tick") {
		ov.Tick = &options.TickOverride{Name: options.Ptr(tickField)}
	}
	if flags.Changed("type") {
		ov.ChartType = options.Ptr(options.ChartType(chartType))
	}
	if flags.Changed("order") {
		ov.Order = options.Ptr(options.Order(order))
	}
	if flags.Changed("node-style") {
		ov.NodeStyle = options.Ptr(options.NodeStyle(nodeStyle))
	}
	return ov
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	var overrides []options.Override
	if optionsPath != "" {
		f, err := os.Open(optionsPath)
		if err != nil {
			return fmt.Errorf("failed to open options: %w", err)
		}
		ov, err := options.Load(f)
		f.Close()
		if err != nil {
			return err
		}
		overrides = append(overrides, ov)
	}
	overrides = append(overrides, flagOverrides(cmd))

	rows, err := dataset.Load(args[0], sheet)
	if err != nil {
		return fmt.Errorf("failed to load '%s': %w", args[0], err)
	}
	backend := svgbackend.New()
	chart := ringchart.New(backend,
		ringchart.WithSize(width, height),
		ringchart.WithOverrides(overrides...),
		ringchart.WithLogger(logger),
	)
	if _, err := chart.Render(rows); err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := backend.WriteTo(&buf); err != nil {
		return err
	}
	if outputPath == "" {
		_, err := buf.WriteTo(os.Stdout)
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("wrote ring chart", "path", outputPath, "rows", len(rows))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	fetcher, err := service.NewDirFetcher(dataRoot, cacheCap)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	service.New(fetcher, logger).RegisterHandlers(mux)
	addr := fmt.Sprintf(":%d", port)
	logger.Info("serving ring charts", "addr", addr, "dataRoot", dataRoot)
	return http.ListenAndServe(addr, mux)
}
