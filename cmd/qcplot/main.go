package main

import (
	"log"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	vt "github.com/hawkjo/visualizationtools"
)

var (
	INFO  *log.Logger
	WARN  *log.Logger
	ERROR *log.Logger
)

type command interface {
	Run() error
}

func main() {
	// Register loggers.
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WARN = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ERROR = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	app := kingpin.New("qcplot", "Plots for sequencing quality control data")
	app.Version("v0.1")
	cfg := &cmdConfig{}
	cfg.Flags(app)

	// Register commands.
	commands := map[string]command{}
	register := func(name, help string, cmd interface {
		command
		Flags(*kingpin.CmdClause)
	}) {
		cmd.Flags(app.Command(name, help))
		commands[name] = cmd
	}
	register("composition", "base composition, consensus and quality of reads", &cmdComposition{cmdConfig: cfg})
	register("cdf", "empirical CDF of the values in a file", &cmdCdf{cmdConfig: cfg})
	register("scatter", "scatter plot of two columns with density colours and a linear fit", &cmdScatter{cmdConfig: cfg})
	register("spearman", "rank plot of two columns with the Spearman correlation", &cmdSpearman{cmdConfig: cfg})
	register("animate", "animated GIF of a stack of PNG frames", &cmdAnimate{cmdConfig: cfg})

	// Parse and run commands.
	name := kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := cfg.ParseConfig(); err != nil {
		ERROR.Fatalln(err)
	}
	registerLogger()
	if err := commands[name].Run(); err != nil {
		ERROR.Fatalln(err)
	}
}

func registerLogger() {
	vt.Info = INFO
	vt.Warn = WARN
}
