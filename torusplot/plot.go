/*
 * plot.go, part of gotorus
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package torusplot renders point sets against the surface of a torus, using gonum/plot.
//Since gonum/plot is a 2D library, the 3D scene is drawn with an orthographic projection,
//and the surface as a wireframe.
package torusplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	torus "github.com/rmera/gotorus"
	"github.com/rmera/gotorus/histo"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//View is the direction from which the 3D scene is seen, in degrees.
type View struct {
	Azimuth   float64 //around the Z axis, from the X axis.
	Elevation float64 //over the XY plane.
}

//Project returns the screen coordinates of p under an orthographic
//projection along the view direction.
func (V View) Project(p torus.Point3D) (float64, float64) {
	az := V.Azimuth * math.Pi / 180
	el := V.Elevation * math.Pi / 180
	sinaz, cosaz := math.Sincos(az)
	sinel, cosel := math.Sincos(el)
	right := r3.Vec{X: -sinaz, Y: cosaz}
	up := r3.Vec{X: -sinel * cosaz, Y: -sinel * sinaz, Z: cosel}
	v := p.Vec()
	return r3.Dot(v, right), r3.Dot(v, up)
}

//Axes is a pair of cartesian axes for a 2D projection.
type Axes int

const (
	XY Axes = iota
	XZ
	YZ
)

func (A Axes) String() string {
	return [...]string{"XY", "XZ", "YZ"}[A]
}

func (A Axes) project(p torus.Point3D) (float64, float64) {
	switch A {
	case XZ:
		return p.X, p.Z
	case YZ:
		return p.Y, p.Z
	}
	return p.X, p.Y
}

//Options sets the appearance of the plots.
type Options struct {
	View         View
	Stride       int  //draw every Stride-th line of the mesh.
	Panels       bool //if true, Render draws the 3D view and the three projections.
	Width        vg.Length
	Height       vg.Length
	PointColor   color.Color
	PointRadius  vg.Length
	SurfaceColor color.Color
}

//DefaultOptions returns the options used by the torusviz command.
func DefaultOptions() Options {
	return Options{
		View:         View{Azimuth: -60, Elevation: 30},
		Stride:       1,
		Width:        10 * vg.Inch,
		Height:       8 * vg.Inch,
		PointColor:   color.NRGBA{R: 255, A: 153},
		PointRadius:  vg.Points(1.5),
		SurfaceColor: color.NRGBA{B: 255, A: 77},
	}
}

//Title returns the title of the 3D view for the torus c, or for its
//upper half if half is true.
func Title(c torus.Config, half bool) string {
	if half {
		return fmt.Sprintf("Points in the upper half of the torus (R=%g, r=%g)", c.Major, c.Minor)
	}
	return fmt.Sprintf("Points in the torus (R=%g, r=%g)", c.Major, c.Minor)
}

//projector goes from 3D to the 2D plane of the plot
type projector func(torus.Point3D) (float64, float64)

//bounds keeps track of the extent of the data, so the plots can
//have the same scale in both axes.
type bounds struct {
	minx, maxx, miny, maxy float64
}

func newBounds() *bounds {
	return &bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
}

func (b *bounds) add(x, y float64) {
	b.minx = math.Min(b.minx, x)
	b.maxx = math.Max(b.maxx, x)
	b.miny = math.Min(b.miny, y)
	b.maxy = math.Max(b.maxy, y)
}

//square sets the ranges of p so both axes span the same length, with
//a 5% margin.
func (b *bounds) square(p *plot.Plot) {
	if math.IsInf(b.minx, 0) {
		return
	}
	span := math.Max(b.maxx-b.minx, b.maxy-b.miny) * 1.05
	if span == 0 {
		span = 1
	}
	cx := (b.maxx + b.minx) / 2
	cy := (b.maxy + b.miny) / 2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2
}

//wireframe adds the lines of the mesh, projected with proj, to p. It returns
//one of the lines, to be used in the legend, or nil if no line was added.
func wireframe(p *plot.Plot, mesh *torus.Mesh, proj projector, b *bounds, opts Options) (*plotter.Line, error) {
	stride := opts.Stride
	if stride < 1 {
		stride = 1
	}
	rows, cols := mesh.Dims()
	var first *plotter.Line
	addLine := func(pts plotter.XYs) error {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Color = opts.SurfaceColor
		l.LineStyle.Width = vg.Points(0.5)
		p.Add(l)
		if first == nil {
			first = l
		}
		return nil
	}
	//one line per value of V (rings around the axis) and one per value of U (around the tube)
	for i := 0; i < rows; i += stride {
		pts := make(plotter.XYs, cols)
		for j := range pts {
			pts[j].X, pts[j].Y = proj(mesh.At(i, j))
			b.add(pts[j].X, pts[j].Y)
		}
		if err := addLine(pts); err != nil {
			return nil, err
		}
	}
	for j := 0; j < cols; j += stride {
		pts := make(plotter.XYs, rows)
		for i := range pts {
			pts[i].X, pts[i].Y = proj(mesh.At(i, j))
			b.add(pts[i].X, pts[i].Y)
		}
		if err := addLine(pts); err != nil {
			return nil, err
		}
	}
	return first, nil
}

//scatter adds the points in ps, projected, to p. Returns nil for an empty set.
func scatter(p *plot.Plot, ps torus.PointSet, proj projector, b *bounds, opts Options) (*plotter.Scatter, error) {
	if ps.Len() == 0 {
		return nil, nil
	}
	pts := make(plotter.XYs, ps.Len())
	for i, v := range ps {
		pts[i].X, pts[i].Y = proj(v)
		b.add(pts[i].X, pts[i].Y)
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = opts.PointColor
	s.GlyphStyle.Radius = opts.PointRadius
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return s, nil
}

func build(title, xlabel, ylabel string, ps torus.PointSet, mesh *torus.Mesh, proj projector, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	b := newBounds()
	if mesh != nil {
		l, err := wireframe(p, mesh, proj, b, opts)
		if err != nil {
			return nil, err
		}
		if l != nil {
			p.Legend.Add("Torus surface", l)
		}
	}
	s, err := scatter(p, ps, proj, b, opts)
	if err != nil {
		return nil, err
	}
	if s != nil {
		p.Legend.Add("Generated points", s)
	}
	p.Legend.Top = true
	b.square(p)
	return p, nil
}

//Scene returns the 3D view of the points in ps and the surface in mesh, which
//can be nil. c is used only for the title, which refers to the upper half
//of the torus unless mesh is a full torus.
func Scene(ps torus.PointSet, c torus.Config, mesh *torus.Mesh, opts Options) (*plot.Plot, error) {
	half := mesh == nil || mesh.Half
	p, err := build(Title(c, half), "", "", ps, mesh, opts.View.Project, opts)
	if err != nil {
		return nil, fmt.Errorf("torusplot.Scene: %w", err)
	}
	//the screen axes are not cartesian axes
	p.HideAxes()
	return p, nil
}

//Projection returns the projection of the points and the mesh (which can be nil)
//on the plane of the given axes.
func Projection(ps torus.PointSet, mesh *torus.Mesh, axes Axes, opts Options) (*plot.Plot, error) {
	name := axes.String()
	p, err := build(name+" projection", name[:1], name[1:], ps, mesh, axes.project, opts)
	if err != nil {
		return nil, fmt.Errorf("torusplot.Projection: %w", err)
	}
	p.Add(plotter.NewGrid())
	return p, nil
}

//Render draws the points and the surface to the file name. The format is given by
//the extension of the file (png, svg, pdf, etc). If opts.Panels is true, the
//3D view and the XY, XZ and YZ projections are drawn in a 2x2 grid.
func Render(ps torus.PointSet, c torus.Config, mesh *torus.Mesh, name string, opts Options) error {
	scene, err := Scene(ps, c, mesh, opts)
	if err != nil {
		return err
	}
	if !opts.Panels {
		if err := scene.Save(opts.Width, opts.Height, name); err != nil {
			return fmt.Errorf("torusplot.Render: %w", err)
		}
		return nil
	}
	plots := [][]*plot.Plot{{scene, nil}, {nil, nil}}
	for i, axes := range []Axes{XY, XZ, YZ} {
		pr, err := Projection(ps, mesh, axes, opts)
		if err != nil {
			return err
		}
		k := i + 1
		plots[k/2][k%2] = pr
	}
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	img, err := draw.NewFormattedCanvas(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("torusplot.Render: %w", err)
	}
	t := draw.Tiles{
		Rows:      2,
		Cols:      2,
		PadX:      vg.Millimeter * 2,
		PadY:      vg.Millimeter * 2,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, t, draw.New(img))
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}
	if err := writeFile(name, img); err != nil {
		return fmt.Errorf("torusplot.Render: %w", err)
	}
	return nil
}

//writeFile writes w to the file name. If writing fails, the file is removed
//instead of being left truncated.
func writeFile(name string, w io.WriterTo) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

//ZHistogram returns a bar chart of the histogram h, usually the
//distribution of Z in a torus.Summary.
func ZHistogram(h *histo.Data, title string) (*plot.Plot, error) {
	if h == nil {
		return nil, fmt.Errorf("torusplot.ZHistogram: Given nil data")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Z"
	p.Y.Label.Text = "Points"
	if h.Normalized() {
		p.Y.Label.Text = "Fraction of points"
	}
	bars, err := plotter.NewBarChart(plotter.Values(h.Copy()), vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("torusplot.ZHistogram: %w", err)
	}
	bars.Color = color.NRGBA{R: 255, A: 153}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	d := h.CopyDividers()
	labels := make([]string, len(d)-1)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.2f", (d[i]+d[i+1])/2)
	}
	p.NominalX(labels...)
	return p, nil
}
