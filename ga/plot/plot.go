// Package plot draws the fitness trajectory of a run.
package plot

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/baldhumanity/strmatch-go/ga"
)

// SaveFitnessPlot draws best and mean fitness against the generation index.
// The image format follows the extension of outPath (.png, .svg, .pdf, ...).
func SaveFitnessPlot(stats []ga.GenerationStats, title, outPath string) error {
	if len(stats) == 0 {
		return errors.New("no generations to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness (distance to target)"
	p.Y.Min = 0

	bestPts := make(plotter.XYs, len(stats))
	meanPts := make(plotter.XYs, len(stats))
	for i, s := range stats {
		bestPts[i].X = float64(s.Generation)
		bestPts[i].Y = float64(s.BestFitness)
		meanPts[i].X = float64(s.Generation)
		meanPts[i].Y = s.Mean
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return err
	}
	meanLine, err := plotter.NewLine(meanPts)
	if err != nil {
		return err
	}
	meanLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(plotter.NewGrid(), bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, outPath)
}
