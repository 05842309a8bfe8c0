// Package viz draws peptide distribution figures: a protein track with
// peptide occurrence bars stacked in rows above it.
package viz

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hlapepclust/peptigram/match"
)

// Params controls figure appearance. Width and Height are in inches.
// Budget is the mismatch budget used for the search, needed to scale the
// mutation color ramp.
type Params struct {
	Width            float64
	Height           float64
	Budget           int
	Title            bool
	ColorByMutations bool
	LabelPeptides    bool
	ShowLegend       bool
}

// DefaultParams matches the compact figure used for publication panels.
var DefaultParams = Params{Width: 12, Height: 6}

// Vertical geometry of the figure in data units.
const (
	trackHeight = 0.8
	rowBase     = 1.2
	rowSpacing  = 0.7
	barHeight   = 0.4
)

var (
	trackColor    = color.RGBA{R: 0xFF, G: 0xE6, B: 0xE6, A: 0xFF}
	trackEdge     = color.RGBA{R: 0xFF, G: 0xCC, B: 0xCC, A: 0xFF}
	exactColor    = color.RGBA{R: 0xDD, G: 0x22, B: 0x22, A: 0xFF}
	midRampColor  = color.RGBA{R: 0xFF, G: 0x77, B: 0x22, A: 0xFF}
	mutationColor = color.RGBA{R: 0xFF, G: 0xAA, B: 0x22, A: 0xFF}
	labelColor    = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
)

// Render builds the figure for one protein from the packed occurrence rows
// produced by layout.Pack.
func Render(name, protein string, rows [][]match.Occurrence, par Params) (*plot.Plot, error) {
	p := plot.New()

	pg := peptigram{proteinLen: len(protein), rows: rows, par: par}
	p.Add(pg)

	p.X.Label.Text = "Amino Acid Position"
	p.X.Label.TextStyle.Font.Size = vg.Points(10)
	p.X.Tick.Marker = positionTicks(len(protein))
	p.X.Tick.Label.Font.Size = vg.Points(9)
	p.HideY()
	p.X.Min, p.X.Max = 0, float64(len(protein))
	_, _, p.Y.Min, p.Y.Max = pg.DataRange()

	if par.Title {
		p.Title.Text = name
		p.Title.TextStyle.Font.Size = vg.Points(12)
	} else {
		// Protein name sits on the track itself.
		l, err := trackLabel(name, len(protein))
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}

	if par.LabelPeptides {
		l, err := peptideLabels(rows)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}

	if par.ShowLegend {
		addLegend(p, par)
	}

	return p, nil
}

// Save writes the figure to file, with the format chosen by the file
// extension (png, pdf, svg, jpg). Width and height are in inches.
func Save(p *plot.Plot, width, height float64, file string) error {
	return p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, file)
}

// peptigram draws the protein track and the per-row occurrence bars.
type peptigram struct {
	proteinLen int
	rows       [][]match.Occurrence
	par        Params
}

func (pg peptigram) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	fillRect(c, trX, trY, 0, 0, float64(pg.proteinLen), trackHeight, trackColor)
	c.StrokeLines(draw.LineStyle{Color: trackEdge, Width: vg.Points(0.5)}, []vg.Point{
		{X: trX(0), Y: trY(0)},
		{X: trX(float64(pg.proteinLen)), Y: trY(0)},
		{X: trX(float64(pg.proteinLen)), Y: trY(trackHeight)},
		{X: trX(0), Y: trY(trackHeight)},
		{X: trX(0), Y: trY(0)},
	})

	for r := range pg.rows {
		y := rowBase + float64(r)*rowSpacing
		for _, o := range pg.rows[r] {
			fillRect(c, trX, trY, float64(o.Start-1), y, float64(o.End-o.Start+1), barHeight,
				barColor(o.Mismatches, pg.par))
		}
	}
}

func (pg peptigram) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, float64(pg.proteinLen), -0.2, rowBase + float64(len(pg.rows))*rowSpacing + 0.2
}

func fillRect(c draw.Canvas, trX, trY func(float64) vg.Length, x, y, w, h float64, clr color.Color) {
	c.FillPolygon(clr, []vg.Point{
		{X: trX(x), Y: trY(y)},
		{X: trX(x + w), Y: trY(y)},
		{X: trX(x + w), Y: trY(y + h)},
		{X: trX(x), Y: trY(y + h)},
	})
}

// barColor picks the bar fill for an occurrence with mm mismatches. With
// ColorByMutations set and a positive budget the color interpolates from
// the exact-match red through orange, otherwise any mutated occurrence
// gets the flat mutation color.
func barColor(mm int, par Params) color.Color {
	if par.ColorByMutations && par.Budget > 0 {
		return rampColor(float64(mm) / float64(par.Budget))
	}
	if mm == 0 {
		return exactColor
	}
	return mutationColor
}

// rampColor interpolates exactColor -> midRampColor -> mutationColor for
// t in [0, 1].
func rampColor(t float64) color.Color {
	if t <= 0 {
		return exactColor
	}
	if t >= 1 {
		return mutationColor
	}
	if t < 0.5 {
		return lerp(exactColor, midRampColor, t*2)
	}
	return lerp(midRampColor, mutationColor, (t-0.5)*2)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xFF}
}

func trackLabel(name string, proteinLen int) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: float64(proteinLen) / 2, Y: trackHeight / 2}},
		Labels: []string{name},
	})
	if err != nil {
		return nil, err
	}
	l.TextStyle[0].Font.Size = vg.Points(10)
	l.TextStyle[0].Color = labelColor
	l.TextStyle[0].XAlign = text.XCenter
	l.TextStyle[0].YAlign = text.YCenter
	return l, nil
}

func peptideLabels(rows [][]match.Occurrence) (*plotter.Labels, error) {
	var xys []plotter.XY
	var labels []string
	for r := range rows {
		y := rowBase + float64(r)*rowSpacing + barHeight/2
		for _, o := range rows[r] {
			xys = append(xys, plotter.XY{X: float64(o.End) + 5, Y: y})
			labels = append(labels, occurrenceLabel(o))
		}
	}

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = vg.Points(8)
		l.TextStyle[i].Color = labelColor
		l.TextStyle[i].YAlign = text.YCenter
	}
	return l, nil
}

func occurrenceLabel(o match.Occurrence) string {
	ans := o.Peptide
	if o.Mismatches > 0 {
		ans += fmt.Sprintf(" (%d mut)", o.Mismatches)
	}
	return ans + fmt.Sprintf(" [%d-%d]", o.Start, o.End)
}

func addLegend(p *plot.Plot, par Params) {
	p.Legend.Add("Exact Match", swatch{exactColor})
	if par.Budget > 0 {
		if par.ColorByMutations {
			for i := 1; i <= par.Budget; i++ {
				label := fmt.Sprintf("%d Mutation", i)
				if i > 1 {
					label += "s"
				}
				p.Legend.Add(label, swatch{rampColor(float64(i) / float64(par.Budget))})
			}
		} else {
			p.Legend.Add("With Mutations", swatch{mutationColor})
		}
	}
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(9)
}

// swatch is a solid color legend thumbnail.
type swatch struct {
	c color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(s.c, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	})
}

// positionTicks marks residue positions at roughly ten evenly spaced
// intervals along the protein.
type positionTicks int

func (p positionTicks) Ticks(min, max float64) []plot.Tick {
	step := int(p) / 10
	if step < 1 {
		step = 1
	}
	var ans []plot.Tick
	for pos := 0; pos <= int(p); pos += step {
		if float64(pos) >= min && float64(pos) <= max {
			ans = append(ans, plot.Tick{Value: float64(pos), Label: strconv.Itoa(pos)})
		}
	}
	return ans
}
