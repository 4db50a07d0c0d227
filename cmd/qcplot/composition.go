package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/hawkjo/visualizationtools/composition"
	"github.com/hawkjo/visualizationtools/reads"
)

// Command to plot base composition and quality of a read file.
type cmdComposition struct {
	*cmdConfig // embed config parser.

	readFile *string
	outFile  *string
	intended *string
	runName  *string
	progress *bool
}

func (cmd *cmdComposition) Flags(c *kingpin.CmdClause) {
	cmd.readFile = c.Arg("reads", "FASTQ (optionally gzipped), SAM or BAM file").Required().ExistingFile()
	cmd.outFile = c.Arg("out", "output figure, format from extension (png, svg, pdf)").Required().String()
	cmd.intended = c.Flag("intended", "intended sequence to compare the consensus with").Default("").String()
	cmd.runName = c.Flag("run-name", "run name shown in the title").Default("").String()
	cmd.progress = c.Flag("progress", "show progress").Default("false").Bool()
}

func (cmd *cmdComposition) Run() error {
	var res *composition.Result
	var err error
	if *cmd.progress {
		res, err = cmd.aggregateWithProgress()
	} else {
		res, err = composition.FromFile(*cmd.readFile)
	}
	if err != nil {
		return err
	}
	INFO.Printf("Reads: %d, length: %d\n", res.NumReads, res.Length)
	fmt.Println(res.Consensus)
	if *cmd.intended != "" && !res.MatchesIntended(*cmd.intended) {
		WARN.Printf("Consensus does NOT match intended sequence %s\n", *cmd.intended)
	}

	opts := composition.PlotOptions{
		Result:   res,
		Intended: *cmd.intended,
		RunName:  *cmd.runName,
		XMax:     cmd.xmax,
		Style:    cmd.style,
	}
	return composition.PlotFile(opts, *cmd.outFile)
}

// aggregateWithProgress reads the file once, showing the bytes consumed.
func (cmd *cmdComposition) aggregateWithProgress() (*composition.Result, error) {
	f, err := os.Open(*cmd.readFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := pb.New64(info.Size()).SetUnits(pb.U_BYTES)
	bar.Start()
	defer bar.Finish()

	src, err := reads.NewSource(reads.FormatOf(*cmd.readFile), bar.NewProxyReader(f))
	if err != nil {
		return nil, err
	}
	return composition.FromSource(src)
}
