package experiment

import (
	"bufio"
	"io"
	"math"
	"path/filepath"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	plotWidth  = 640
	plotHeight = 480
	plotMargin = 50
	pointSize  = 3
)

type series struct {
	label  string
	color  string
	points [][2]float64
}

func plotSeries(result *Result) []series {
	oa := series{label: LinearProbing.String(), color: "#d62728"}
	sc := series{label: SeparateChaining.String(), color: "#1f77b4"}
	for _, sample := range result.Samples {
		oa.points = append(oa.points, [2]float64{sample.OALoad, float64(sample.OACollisions)})
		sc.points = append(sc.points, [2]float64{sample.SCLoad, float64(sample.SCCollisions)})
	}
	return []series{oa, sc}
}

/*
RenderPlot draws collisions against load factor for both strategies.
The x axis always spans [0, 1]; the y axis ends at the largest collision
count seen.
*/
func RenderPlot(w io.Writer, result *Result) error {
	all := plotSeries(result)

	maxY := 1.0
	for _, s := range all {
		for _, p := range s.points {
			if p[1] > maxY {
				maxY = p[1]
			}
		}
	}

	innerW := float64(plotWidth - 2*plotMargin)
	innerH := float64(plotHeight - 2*plotMargin)
	x := func(v float64) int { return plotMargin + int(math.Round(v*innerW)) }
	y := func(v float64) int { return plotHeight - plotMargin - int(math.Round(v/maxY*innerH)) }

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(plotWidth, plotHeight)
	canvas.Rect(0, 0, plotWidth, plotHeight, "fill:white")
	canvas.Text(plotWidth/2, plotMargin/2, result.Name(), "font-family:sans-serif;font-size:16px;text-anchor:middle")

	// axes
	canvas.Line(x(0), y(0), x(1), y(0), "stroke:black")
	canvas.Line(x(0), y(0), x(0), y(maxY), "stroke:black")
	canvas.Gstyle("font-family:sans-serif;font-size:12px")
	canvas.Text(x(0.5), plotHeight-plotMargin/4, "load factor", "text-anchor:middle")
	canvas.Text(x(0)-4, y(maxY), strconv.FormatFloat(maxY, 'g', -1, 64), "text-anchor:end")
	canvas.Text(x(0)-4, y(0), "0", "text-anchor:end")
	canvas.Text(x(1), y(0)+16, "1", "text-anchor:middle")
	canvas.Gend()

	for i, s := range all {
		canvas.Gstyle("fill:" + s.color)
		canvas.Title(s.label)
		for _, p := range s.points {
			canvas.Circle(x(p[0]), y(p[1]), pointSize)
		}
		canvas.Gend()
		canvas.Text(plotWidth-plotMargin-140, plotMargin+16*(i+1), s.label,
			"font-family:sans-serif;font-size:12px;fill:"+s.color)
	}
	canvas.End()

	return errors.Wrap(bw.Flush(), "RenderPlot.Flush")
}

// WritePlot renders result to <dir>/<name>.svg.
func WritePlot(fs afero.Fs, dir string, result *Result) (string, error) {
	path := filepath.Join(dir, result.Name()+".svg")
	file, err := fs.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "WritePlot.Create")
	}
	defer func(file afero.File) {
		_ = file.Close()
	}(file)

	if err := RenderPlot(file, result); err != nil {
		return "", err
	}
	return path, file.Close()
}
