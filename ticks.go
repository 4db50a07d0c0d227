package visualizationtools

import (
	"gonum.org/v1/plot"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CommaTicks labels the major ticks of Ticker as integers with
// thousands separators, e.g. 12,500.
type CommaTicks struct {
	Ticker plot.Ticker // default plot.DefaultTicks.
}

// Ticks implements plot.Ticker.
func (c CommaTicks) Ticks(min, max float64) []plot.Tick {
	t := c.Ticker
	if t == nil {
		t = plot.DefaultTicks{}
	}
	ticks := t.Ticks(min, max)
	pr := message.NewPrinter(language.English)
	for i := range ticks {
		if ticks[i].IsMinor() {
			continue
		}
		ticks[i].Label = pr.Sprintf("%d", int64(ticks[i].Value))
	}
	return ticks
}

// AddCommas switches the tick labels of axis to CommaTicks.
func AddCommas(axis *plot.Axis) {
	axis.Tick.Marker = CommaTicks{Ticker: axis.Tick.Marker}
}
