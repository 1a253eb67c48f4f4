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

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/analyzer2004/ringchart/dataset"
	"github.com/analyzer2004/ringchart/options"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
)

// HandlerFunc is a HTTP handler function.
type HandlerFunc func(http.ResponseWriter, *http.Request)

// WrapFunc is a function that rewrites a HandlerFunc.
type WrapFunc func(HandlerFunc) HandlerFunc

const (
	chartMethod  = "/GetChart"
	chartsMethod = "/GetCharts"
	chartPage    = "/chart.html"

	svgContentType = "image/svg+xml"
)

var pageTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
{{.Chart}}
</body>
</html>
`))

type page struct {
	Title string
	Chart safehtml.HTML
}

// Wrap adds wrappers to every handler the receiver registers.
func (s *Service) Wrap(wrappers ...WrapFunc) *Service {
	s.wrappers = append(s.wrappers, wrappers...)
	return s
}

// HandlersByPath returns a mapping of HTTP request path to HTTP handler for
// the receiver.
func (s *Service) HandlersByPath() map[string]func(http.ResponseWriter, *http.Request) {
	ret := map[string]func(http.ResponseWriter, *http.Request){}
	for path, h := range map[string]HandlerFunc{
		chartMethod:  s.getChartHandler,
		chartsMethod: s.getChartsHandler,
		chartPage:    s.chartPageHandler,
	} {
		h = s.timed(path, h)
		for _, wrapper := range s.wrappers {
			h = wrapper(h)
		}
		ret[path] = h
	}
	return ret
}

// RegisterHandlers registers the receiver's handlers on mux.
func (s *Service) RegisterHandlers(mux *http.ServeMux) {
	for path, handler := range s.HandlersByPath() {
		mux.HandleFunc(path, handler)
	}
}

func (s *Service) timed(path string, h HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		defer func() {
			s.logger.Debug("handled request", "path", path, "query", req.URL.RawQuery, "elapsed", time.Since(start))
		}()
		h(w, req)
	}
}

// statusOf returns the HTTP status reporting err.
func statusOf(err error) int {
	var cfgErr *dataset.ConfigurationError
	var dataErr *dataset.DataError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.As(err, &cfgErr), errors.As(err, &dataErr), errors.Is(err, dataset.ErrUnsupportedFormat):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// requestFromForm builds a ChartRequest from the 'dataset', 'sheet',
// 'width', 'height' and 'options' (a JSON options.Override) parameters of
// req.
func requestFromForm(req *http.Request) (ChartRequest, error) {
	if err := req.ParseForm(); err != nil {
		return ChartRequest{}, fmt.Errorf("failed to parse form: %w", err)
	}
	ret := ChartRequest{
		Dataset: req.Form.Get("dataset"),
		Sheet:   req.Form.Get("sheet"),
	}
	for name, dst := range map[string]*float64{
		"width":  &ret.Width,
		"height": &ret.Height,
	} {
		str := req.Form.Get(name)
		if str == "" {
			continue
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return ChartRequest{}, fmt.Errorf("invalid %s '%s'", name, str)
		}
		*dst = v
	}
	if str := req.Form.Get("options"); str != "" {
		dec := json.NewDecoder(strings.NewReader(str))
		dec.DisallowUnknownFields()
		var ov options.Override
		if err := dec.Decode(&ov); err != nil {
			return ChartRequest{}, fmt.Errorf("failed to parse options: %w", err)
		}
		ret.Options = ov
	}
	return ret, nil
}

func (s *Service) getChartHandler(w http.ResponseWriter, req *http.Request) {
	chartReq, err := requestFromForm(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	svg, err := s.RenderSVG(req.Context(), chartReq)
	if err != nil {
		http.Error(w, "Chart request failed: "+err.Error(), statusOf(err))
		return
	}
	w.Header().Add("Content-Type", svgContentType)
	w.Write(svg)
}

func (s *Service) getChartsHandler(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "Chart requests must be POSTed", http.StatusMethodNotAllowed)
		return
	}
	var chartReqs []ChartRequest
	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&chartReqs); err != nil {
		http.Error(w, "Failed to parse chart requests: "+err.Error(), http.StatusBadRequest)
		return
	}
	resps, err := s.HandleRequests(req.Context(), chartReqs)
	if err != nil {
		http.Error(w, "Chart requests failed: "+err.Error(), statusOf(err))
		return
	}
	respStr, err := json.Marshal(resps)
	if err != nil {
		http.Error(w, "Failed to marshal response: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.Write(respStr)
}

func (s *Service) chartPageHandler(w http.ResponseWriter, req *http.Request) {
	chartReq, err := requestFromForm(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	svg, err := s.RenderSVG(req.Context(), chartReq)
	if err != nil {
		http.Error(w, "Chart request failed: "+err.Error(), statusOf(err))
		return
	}
	doc := string(svg)
	// Drop the XML prolog; the SVG is inlined into the page.
	if idx := strings.Index(doc, "<svg"); idx > 0 {
		doc = doc[idx:]
	}
	w.Header().Add("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, page{
		Title: chartReq.Dataset,
		// The document is produced by svgbackend, which escapes all text
		// and attribute values.
		Chart: uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(doc),
	}); err != nil {
		s.logger.Error("failed to write chart page", "error", err)
	}
}
