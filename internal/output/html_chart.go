package output

import (
	"math"
	"strconv"
	"strings"

	"github.com/apeftrust/investment-calculator/internal/domain"
)

const (
	chartWidth   = 720
	chartHeight  = 260
	chartPadding = 40
)

var chartColors = []string{"#2E8B57", "#4385BE", "#D14D41", "#C9A227", "#8B7EC8", "#DA702C"}

type svgSeries struct {
	Label  string
	Color  string
	Points string
}

// svgChart is a pre-computed line chart; the template only draws it.
type svgChart struct {
	Title         string
	Width, Height int
	Left, Right   int
	Top, Bottom   int
	YMin, YMax    string
	XStart, XEnd  string
	Series        []svgSeries
}

type namedSeries struct {
	label  string
	values []float64
}

func lineChart(title string, records []domain.DailyRecord, series []namedSeries) svgChart {
	c := svgChart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Left:   chartPadding,
		Right:  chartWidth - chartPadding,
		Top:    chartPadding / 2,
		Bottom: chartHeight - chartPadding,
	}
	if len(records) == 0 {
		return c
	}
	c.XStart = records[0].Date.String()
	c.XEnd = records[len(records)-1].Date.String()

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.values {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	c.YMin = strconv.FormatFloat(lo, 'f', 0, 64)
	c.YMax = strconv.FormatFloat(hi, 'f', 0, 64)

	plotW := float64(c.Right - c.Left)
	plotH := float64(c.Bottom - c.Top)
	for i, s := range series {
		var pts strings.Builder
		for j, v := range s.values {
			x := float64(c.Left)
			if len(s.values) > 1 {
				x += plotW * float64(j) / float64(len(s.values)-1)
			}
			y := float64(c.Bottom) - plotH*(v-lo)/(hi-lo)
			if j > 0 {
				pts.WriteByte(' ')
			}
			pts.WriteString(strconv.FormatFloat(x, 'f', 1, 64))
			pts.WriteByte(',')
			pts.WriteString(strconv.FormatFloat(y, 'f', 1, 64))
		}
		c.Series = append(c.Series, svgSeries{Label: s.label, Color: chartColors[i%len(chartColors)], Points: pts.String()})
	}
	return c
}

// valueChart plots closing and net value over every day of the projection.
func valueChart(records []domain.DailyRecord) svgChart {
	closing := make([]float64, len(records))
	net := make([]float64, len(records))
	for i, r := range records {
		closing[i] = r.ClosingValue.InexactFloat64()
		net[i] = r.NetValue.InexactFloat64()
	}
	return lineChart("Closing and net value", records, []namedSeries{{"Closing value", closing}, {"Net value", net}})
}

// feeChart plots the running total of each fee.
func feeChart(records []domain.DailyRecord, fees []domain.FeeRate) svgChart {
	series := make([]namedSeries, len(fees))
	for i, f := range fees {
		series[i] = namedSeries{label: f.Name, values: make([]float64, len(records))}
	}
	running := make([]float64, len(fees))
	for j, r := range records {
		for i := range fees {
			if i < len(r.Fees) {
				running[i] += r.Fees[i].Amount.InexactFloat64()
			}
			series[i].values[j] = running[i]
		}
	}
	return lineChart("Cumulative fees by type", records, series)
}

// dailyFeeChart plots the amount of each fee charged per day.
func dailyFeeChart(records []domain.DailyRecord, fees []domain.FeeRate) svgChart {
	series := make([]namedSeries, len(fees))
	for i, f := range fees {
		series[i] = namedSeries{label: f.Name, values: make([]float64, len(records))}
	}
	for j, r := range records {
		for i := range fees {
			if i < len(r.Fees) {
				series[i].values[j] = r.Fees[i].Amount.InexactFloat64()
			}
		}
	}
	return lineChart("Daily fees by type", records, series)
}
