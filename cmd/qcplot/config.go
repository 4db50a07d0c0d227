package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
	"gopkg.in/alecthomas/kingpin.v2"

	vt "github.com/hawkjo/visualizationtools"
)

// Config to read flags and configure file.
type cmdConfig struct {
	// Flags.
	config *string // configure file name.

	// Settings.
	style      vt.Style      // figure style.
	xmax       float64       // right end of the composition plot.
	sampleSize int           // density sample size of scatter plots.
	interval   time.Duration // delay between animation frames.
}

func (cmd *cmdConfig) Flags(app *kingpin.Application) {
	cmd.config = app.Flag("config", "configure file in YAML format, default qcplot.yaml in the working directory.").Default("").String()
}

// ParseConfig reads the configure file and QCPLOT_ environment variables.
func (cmd *cmdConfig) ParseConfig() error {
	v := viper.New()
	v.SetDefault("style.width", 12.0)
	v.SetDefault("style.height", 8.0)
	v.SetDefault("style.marker_radius", 2.0)
	v.SetDefault("style.line_width", 1.0)
	v.SetDefault("style.grid", false)
	v.SetDefault("composition.xmax", 140.0)
	v.SetDefault("scatter.sample_size", 1000)
	v.SetDefault("animate.interval_ms", 30)

	// Automatic binding.
	v.SetEnvPrefix("QCPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config := ""
	if cmd.config != nil {
		config = *cmd.config
	}
	if config != "" {
		v.SetConfigFile(config)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	} else {
		v.SetConfigName("qcplot")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return err
			}
		}
	}

	cmd.style = vt.Style{
		Width:        vg.Length(v.GetFloat64("style.width")) * vg.Inch,
		Height:       vg.Length(v.GetFloat64("style.height")) * vg.Inch,
		MarkerRadius: vg.Points(v.GetFloat64("style.marker_radius")),
		LineWidth:    vg.Points(v.GetFloat64("style.line_width")),
		Grid:         v.GetBool("style.grid"),
	}.WithDefaults()
	cmd.xmax = v.GetFloat64("composition.xmax")
	cmd.sampleSize = v.GetInt("scatter.sample_size")
	cmd.interval = time.Duration(v.GetInt("animate.interval_ms")) * time.Millisecond
	return nil
}
