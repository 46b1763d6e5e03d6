package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/plan-systems/klog"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/hbook/rootcnv"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/pi0eta"
)

var (
	histName = flag.String("hist", "MissingMassSquared", "name of the histogram to draw")
	title    = flag.String("title", "", "plot title")
	xLabel   = flag.String("xlabel", "", "x axis label")
	yLabel   = flag.String("ylabel", "", "y axis label")
	output   = flag.String("output", "out.png", "output file")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <pi0etasel-output-file>

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = printUsage
	flag.Parse()
	defer klog.Flush()
	if flag.NArg() != 1 {
		printUsage()
		klog.Fatal("Invalid arguments")
	}

	f, err := groot.Open(flag.Arg(0))
	if err != nil {
		klog.Fatal(err)
	}
	defer f.Close()

	obj, err := f.Get(*histName)
	if err != nil {
		klog.Fatal(err)
	}

	p := hplot.New()
	p.Title.Text = *title
	p.X.Label.Text = *xLabel
	p.Y.Label.Text = *yLabel
	p.X.Tick.Marker = pi0eta.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = pi0eta.PreciseTicks{NSuggestedTicks: 5}

	switch h := obj.(type) {
	case rhist.H2:
		hist := rootcnv.H2D(h)

		colorMap := moreland.ExtendedBlackBody()
		colorMap.SetMin(0)
		colorMap.SetMax(1)
		p.Add(hplot.NewH2D(hist, colorMap.Palette(255)))
	case rhist.H1:
		hist := rootcnv.H1D(h)

		hp := hplot.NewH1D(hist)
		hp.FillColor = nil
		hp.LineStyle.Color = color.RGBA{B: 255, A: 255}
		hp.Infos.Style = hplot.HInfoSummary
		p.Add(hp)
	default:
		klog.Fatalf("%q is a %T, not a histogram", *histName, obj)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *output); err != nil {
		klog.Fatal(err)
	}
}
