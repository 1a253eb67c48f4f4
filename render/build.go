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

package render

import (
	"errors"
	"fmt"

	"github.com/analyzer2004/ringchart/highlight"
	"github.com/analyzer2004/ringchart/legend"
	"github.com/analyzer2004/ringchart/options"
	"github.com/analyzer2004/ringchart/rank"
	"github.com/analyzer2004/ringchart/scale"
	"github.com/analyzer2004/ringchart/style"
)

const (
	// tickOverhang is how far axis lines extend past the outermost ring.
	tickOverhang = 10
	lineWidth    = 2
	tickDash     = "1,2"
)

// Input is everything Build lays out.
type Input struct {
	// ID is the chart's unique identifier.
	ID            string
	Width, Height float64
	Options       options.Options
	Result        *rank.Result
	Geometry      *Geometry
	// Legend is nil if the legend is disabled.
	Legend *legend.Legend
}

// Drawable IDs.

// AxisID returns the ID of the hidden circle that tick labels follow.
func AxisID(chartID string) string {
	return "axis_" + chartID
}

// AxisYID returns the ID of the hidden circle that key idx's label follows.
func AxisYID(chartID string, idx int) string {
	return fmt.Sprintf("axisY%d_%s", idx, chartID)
}

// DotID returns the ID of the marker of the record at position pos of row.
func DotID(chartID string, row, pos int) string {
	return fmt.Sprintf("dot_%s_%d_%d", chartID, row, pos)
}

// LineID returns the ID of the connecting line of the series at idx.
func LineID(chartID string, idx int) string {
	return fmt.Sprintf("line_%s_%d", chartID, idx)
}

// YLabelID returns the ID of the ring label of key idx.
func YLabelID(chartID string, idx int) string {
	return fmt.Sprintf("ylabel_%s_%d", chartID, idx)
}

// LegendID returns the ID of the legend.
func LegendID(chartID string) string {
	return "legend_" + chartID
}

// LegendItemID returns the ID of the legend item at idx.
func LegendItemID(chartID string, idx int) string {
	return fmt.Sprintf("legend_%s_%d", chartID, idx)
}

// Build lays out in as a Scene.
func Build(in Input) (*Scene, error) {
	if in.Result == nil || in.Geometry == nil {
		return nil, errors.New("nothing to render")
	}
	b := &builder{in: in}
	chart := newDrawable(GroupKind, "").
		With(style.Class, ChartClass).
		With(style.Transform, fmt.Sprintf("translate(%s,%s)", style.Num(in.Width/2), style.Num(in.Height/2)))
	if !in.Options.IsSequential() {
		chart.Append(b.lines())
	}
	chart.Append(b.dots())
	chart.Append(b.axis()...)
	if in.Options.IsSequential() {
		chart.Append(b.axisY()...)
	}
	root := newDrawable(GroupKind, "ringchart_"+in.ID).Append(chart)
	if in.Legend != nil {
		root.Append(b.legend())
	}
	return NewScene(in.ID, in.Width, in.Height, root)
}

type builder struct {
	in Input
}

func (b *builder) lines() *Drawable {
	g, opts := b.in.Geometry, b.in.Options
	opacity := highlight.Mode{AlwaysShowLines: opts.AlwaysShowLines}.LineOpacity(nil, "")
	ret := newDrawable(GroupKind, "").With(style.Class, LinesClass)
	for idx, series := range b.in.Result.Series {
		line := newDrawable(PathKind, LineID(b.in.ID, idx)).
			With(style.Class, LineClass).
			With(style.Fill, "none").
			WithNum(style.Opacity, opacity).
			With(style.Stroke, g.KeyColor(series.Key)).
			WithNum(style.StrokeWidth, lineWidth).
			With(style.D, RadialLinePath(g.SeriesPoints(series, opts.IsArc())))
		line.Key = series.Key
		ret.Append(line)
	}
	return ret
}

func (b *builder) dots() *Drawable {
	g, opts := b.in.Geometry, b.in.Options
	ret := newDrawable(GroupKind, "").With(style.Class, DotsClass)
	for rowIdx, row := range b.in.Result.Rows {
		rowGroup := newDrawable(GroupKind, "")
		if !opts.IsArc() {
			rowGroup.With(style.Transform, fmt.Sprintf("rotate(%s)", style.Num(g.Degrees.Map(float64(rowIdx))-90)))
		}
		for pos, vr := range row.Values {
			dot := b.marker(rowIdx, pos).
				With(style.Class, DotClass).
				With(style.Fill, g.Fill(vr)).
				WithNum(style.Opacity, highlight.Full)
			dot.Title = fmt.Sprintf("%s - %s\nRank: %d\nValue: %s", vr.Tick, vr.Key, vr.Rank, formatValue(vr.Value))
			dot.Record = vr
			dot.Entity = highlight.KeyEntity(vr.Key)
			rowGroup.Append(dot)
		}
		ret.Append(rowGroup)
	}
	return ret
}

// marker returns the unstyled marker of the record at position pos of the
// row at rowIdx.
func (b *builder) marker(rowIdx, pos int) *Drawable {
	g, opts := b.in.Geometry, b.in.Options
	id := DotID(b.in.ID, rowIdx, pos)
	node := g.Radius.Node
	switch opts.NodeStyle {
	case options.Circle:
		return newDrawable(CircleKind, id).
			WithNum("cx", g.MarkerOffset(pos, opts.StickyNodes)).
			WithNum("r", node)
	case options.Rect:
		half := g.Ring.Bandwidth() / 2
		y := -half
		if opts.StickyNodes {
			y = -node
		}
		return newDrawable(RectKind, id).
			WithNum("x", g.MarkerOffset(pos, opts.StickyNodes)-half).
			WithNum("y", y).
			WithNum("width", 2*node).
			WithNum("height", 2*node)
	}
	inner := g.Ring.At(pos)
	start := g.Angle.At(rowIdx)
	return newDrawable(PathKind, id).
		With(style.D, ArcPath(inner, inner+g.Ring.Bandwidth(), start, start+g.Angle.Bandwidth()))
}

func (b *builder) axis() []*Drawable {
	g, tick := b.in.Geometry, b.in.Options.Tick
	_, ringMax := g.RingRange()
	rows := b.in.Result.Rows
	axisID := AxisID(b.in.ID)
	ret := []*Drawable{hiddenCircle(axisID, ringMax)}
	percent := scale.AxisPercent(len(rows))
	for _, t := range axisTicks(len(rows)) {
		p := percent.Map(t)
		tickGroup := newDrawable(GroupKind, "").
			With(style.Class, TickClass).
			With(style.FontSize, tick.FontSize).
			With(style.Transform, "rotate(90)")
		tickGroup.Append(newDrawable(LineKind, "").
			With(style.Stroke, tick.Color).
			With(style.StrokeDasharray, tickDash).
			WithNum("x1", -g.Radius.Inner).
			WithNum("x2", -ringMax-tickOverhang).
			With(style.Transform, fmt.Sprintf("rotate(%s)", style.Num(360*p/100))))
		if isInteger(t) && int(t) < len(rows) {
			label := newDrawable(TextPathKind, "").
				With("xlink:href", "#"+axisID).
				With("startOffset", style.Num(p)+"%")
			label.Text = FormatTick(rows[int(t)].Tick, tick)
			tickGroup.Append(newDrawable(TextKind, "").
				With("dx", "3").
				With("dy", "-5").
				With(style.Fill, tick.Color).
				Append(label))
		}
		ret = append(ret, tickGroup)
	}
	return ret
}

func (b *builder) axisY() []*Drawable {
	g, tick := b.in.Geometry, b.in.Options.Tick
	var ret []*Drawable
	for idx := range b.in.Result.Keys {
		ret = append(ret, hiddenCircle(AxisYID(b.in.ID, idx), g.Ring.At(idx)))
	}
	labels := newDrawable(GroupKind, "").
		With(style.Class, YLabelsClass).
		With(style.FontSize, tick.FontSize).
		With(style.Transform, "rotate(90)")
	for idx, key := range b.in.Result.Keys {
		href := "#" + AxisYID(b.in.ID, idx)
		text := func() *Drawable {
			tp := newDrawable(TextPathKind, "").With("xlink:href", href)
			tp.Text = key
			return newDrawable(TextKind, "").With("dx", "0.5em").Append(tp)
		}
		halo := text().
			With(style.Stroke, "white").
			WithNum(style.StrokeWidth, 2).
			With(style.Fill, "none")
		label := text().
			With(style.Stroke, "none").
			With(style.Fill, tick.Color)
		item := newDrawable(GroupKind, YLabelID(b.in.ID, idx)).
			With(style.Class, YLabelClass).
			With(style.Visibility, "hidden").
			Append(halo, label)
		item.Key = key
		labels.Append(item)
	}
	return append(ret, labels)
}

func (b *builder) legend() *Drawable {
	l, cfg := b.in.Legend, b.in.Options.Legend
	_, ringMax := b.in.Geometry.RingRange()
	x, y, _ := l.Place(b.in.Width, b.in.Height, b.in.Geometry.Radius, ringMax, cfg.Centered)
	ret := newDrawable(GroupKind, LegendID(b.in.ID)).
		With(style.Class, LegendClass).
		With(style.FontSize, l.FontSize).
		With(style.Transform, fmt.Sprintf("translate(%s,%s)", style.Num(x), style.Num(y)))
	for idx, item := range l.Items {
		swatch := newDrawable(RectKind, "").
			With(style.Fill, item.Color).
			WithNum("rx", legend.CornerRadius).
			WithNum("ry", legend.CornerRadius).
			WithNum("width", legend.SwatchWidth).
			WithNum("height", l.ItemHeight)
		label := newDrawable(TextKind, "").
			With("dy", "1em").
			With(style.Fill, cfg.LabelColor).
			With(style.Transform, fmt.Sprintf("translate(%s,0)", style.Num(legend.SwatchWidth+legend.Spacing)))
		label.Text = item.Label
		entry := newDrawable(GroupKind, LegendItemID(b.in.ID, idx)).
			With(style.Class, LegendItemClass).
			WithNum(style.Opacity, highlight.Full).
			With(style.Transform, fmt.Sprintf("translate(0,%s)", style.Num(l.ItemOffset(idx)))).
			Append(swatch, label)
		entry.Entity = item.Entity
		ret.Append(entry)
	}
	return ret
}

func hiddenCircle(id string, r float64) *Drawable {
	return newDrawable(PathKind, id).
		With(style.Fill, "none").
		With(style.Stroke, "none").
		With(style.D, CirclePath(r))
}
