package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderCharts writes a single HTML page with the standard chart set:
// words per speech over time, audience reactions over time, and keyword
// totals by party.
func (r Report) RenderCharts(w io.Writer, parties map[string]string) error {
	page := components.NewPage()
	page.PageTitle = "Speech report " + r.ID

	page.AddCharts(
		r.wordsOverTime(),
		r.reactionsOverTime(),
		r.keywordsByParty(parties),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	return nil
}

func (r Report) wordsOverTime() components.Charter {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Words per annual message"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "year"}),
	)

	years := make([]int, 0, len(r.Records))
	data := make([]opts.LineData, 0, len(r.Records))
	for _, rec := range r.Records {
		years = append(years, rec.Year)
		data = append(data, opts.LineData{Value: rec.Words})
	}

	line.SetXAxis(years).AddSeries("words", data)
	return line
}

func (r Report) reactionsOverTime() components.Charter {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Audience reactions"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "year"}),
	)

	years := make([]int, 0, len(r.Records))
	laughter := make([]opts.BarData, 0, len(r.Records))
	applause := make([]opts.BarData, 0, len(r.Records))
	for _, rec := range r.Records {
		years = append(years, rec.Year)
		laughter = append(laughter, opts.BarData{Value: rec.Laughter})
		applause = append(applause, opts.BarData{Value: rec.Applause})
	}

	bar.SetXAxis(years).
		AddSeries("laughter", laughter).
		AddSeries("applause", applause)
	return bar
}

func (r Report) keywordsByParty(parties map[string]string) components.Charter {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Keyword totals by party"}),
	)

	stats := ByParty(r.Records, parties)
	bar.SetXAxis(r.Labels)
	for _, s := range stats {
		data := make([]opts.BarData, 0, len(r.Labels))
		for _, label := range r.Labels {
			data = append(data, opts.BarData{Value: s.Keywords[label]})
		}
		bar.AddSeries(s.Party, data)
	}
	return bar
}
