package main

import (
	"fmt"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hawkjo/visualizationtools/ecdf"
)

// Command to plot the empirical CDF of a column of numbers.
type cmdCdf struct {
	*cmdConfig // embed config parser.

	valueFile *string
	outFile   *string
	title     *string
	summary   *bool
}

func (cmd *cmdCdf) Flags(c *kingpin.CmdClause) {
	cmd.valueFile = c.Arg("values", "file with one number per line").Required().ExistingFile()
	cmd.outFile = c.Arg("out", "output figure").Required().String()
	cmd.title = c.Flag("title", "plot title").Default("").String()
	cmd.summary = c.Flag("summary", "print summary statistics").Default("false").Bool()
}

func (cmd *cmdCdf) Run() error {
	values, err := readValues(*cmd.valueFile)
	if err != nil {
		return err
	}
	if *cmd.summary {
		s, err := ecdf.Summary(values)
		if err != nil {
			return err
		}
		fmt.Print(s)
	}
	return ecdf.PlotFile(values, *cmd.outFile, *cmd.title, cmd.style)
}
