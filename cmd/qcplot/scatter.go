package main

import (
	"gonum.org/v1/plot"
	"gopkg.in/alecthomas/kingpin.v2"

	vt "github.com/hawkjo/visualizationtools"
	"github.com/hawkjo/visualizationtools/scatter"
)

// Command to draw an annotated scatter plot of two columns.
type cmdScatter struct {
	*cmdConfig // embed config parser.

	pairFile    *string
	outFile     *string
	xlabel      *string
	ylabel      *string
	noDensity   *bool
	noFit       *bool
	noPValue    *bool
	diagonal    *bool
	commas      *bool
	histsHeight *float64
	seed        *int64
}

func (cmd *cmdScatter) Flags(c *kingpin.CmdClause) {
	cmd.pairFile = c.Arg("pairs", "file with two whitespace separated numbers per line").Required().ExistingFile()
	cmd.outFile = c.Arg("out", "output figure").Required().String()
	cmd.xlabel = c.Flag("xlabel", "x axis label").Default("").String()
	cmd.ylabel = c.Flag("ylabel", "y axis label").Default("").String()
	cmd.noDensity = c.Flag("no-density", "do not colour points by density").Default("false").Bool()
	cmd.noFit = c.Flag("no-fit", "do not fit a line").Default("false").Bool()
	cmd.noPValue = c.Flag("no-p-value", "do not show the p-value").Default("false").Bool()
	cmd.diagonal = c.Flag("diagonal", "draw the diagonal").Default("false").Bool()
	cmd.commas = c.Flag("commas", "thousands separators on the y axis").Default("false").Bool()
	cmd.histsHeight = c.Flag("hists-height", "height fraction of marginal histograms, 0 for none").Default("0").Float64()
	cmd.seed = c.Flag("seed", "seed of the density sample").Default("1").Int64()
}

func (cmd *cmdScatter) Run() error {
	xs, ys, err := readPairs(*cmd.pairFile)
	if err != nil {
		return err
	}

	opts := scatter.Options{
		ColorByDensity: !*cmd.noDensity,
		DoFit:          !*cmd.noFit,
		ShowPValue:     !*cmd.noPValue,
		HistsHeight:    *cmd.histsHeight,
		SampleSize:     cmd.sampleSize,
		Rand:           newRand(*cmd.seed),
		Style:          cmd.style,
	}
	_, err = vt.WithCanvas(nil, *cmd.outFile, cmd.style, func(p *plot.Plot) error {
		p.X.Label.Text = *cmd.xlabel
		p.Y.Label.Text = *cmd.ylabel
		st, err := scatter.Enhanced(p, xs, ys, opts)
		if err != nil {
			return err
		}
		INFO.Printf("n = %d, r = %.4f, p = %.4g\n", len(xs), st.R, st.P)
		if st.Fitted {
			INFO.Printf("slope = %.4f, intercept = %.4f\n", st.Slope, st.Intercept)
		}
		if *cmd.diagonal {
			if err := scatter.Diagonal(p); err != nil {
				return err
			}
		}
		if *cmd.commas {
			vt.AddCommas(&p.Y)
		}
		return nil
	})
	return err
}

// Command to draw a Spearman rank plot of two columns.
type cmdSpearman struct {
	*cmdConfig // embed config parser.

	pairFile *string
	outFile  *string
	xlabel   *string
	ylabel   *string
	title    *string
}

func (cmd *cmdSpearman) Flags(c *kingpin.CmdClause) {
	cmd.pairFile = c.Arg("pairs", "file with two whitespace separated numbers per line").Required().ExistingFile()
	cmd.outFile = c.Arg("out", "output figure").Required().String()
	cmd.xlabel = c.Flag("xlabel", "x axis label").Default("").String()
	cmd.ylabel = c.Flag("ylabel", "y axis label").Default("").String()
	cmd.title = c.Flag("title", "plot title, default shows the Spearman r and p-value").Default("").String()
}

func (cmd *cmdSpearman) Run() error {
	xs, ys, err := readPairs(*cmd.pairFile)
	if err != nil {
		return err
	}
	style := cmd.style
	style.Height = style.Width
	_, err = scatter.SpearmanPlot(xs, ys, scatter.SpearmanOptions{
		XLabel:  *cmd.xlabel,
		YLabel:  *cmd.ylabel,
		Title:   *cmd.title,
		FigPath: *cmd.outFile,
		Style:   style,
	})
	return err
}
