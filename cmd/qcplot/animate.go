package main

import (
	"gonum.org/v1/plot/vg"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hawkjo/visualizationtools/animate"
)

// Command to animate a stack of PNG frames.
type cmdAnimate struct {
	*cmdConfig // embed config parser.

	frameFiles *[]string
	outFile    *string
	size       *float64
}

func (cmd *cmdAnimate) Flags(c *kingpin.CmdClause) {
	cmd.outFile = c.Flag("out", "output GIF").Short('o').Required().String()
	cmd.size = c.Flag("size", "frame width and height in inches").Default("10").Float64()
	cmd.frameFiles = c.Arg("frames", "PNG frames in playback order, all of one size").Required().ExistingFiles()
}

func (cmd *cmdAnimate) Run() error {
	stack, err := readFrames(*cmd.frameFiles)
	if err != nil {
		return err
	}
	a, err := animate.New(stack, animate.Options{
		Width:    vg.Length(*cmd.size) * vg.Inch,
		Height:   vg.Length(*cmd.size) * vg.Inch,
		Interval: cmd.interval,
	})
	if err != nil {
		return err
	}
	return a.Save(*cmd.outFile)
}
