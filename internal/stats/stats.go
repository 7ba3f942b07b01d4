// Package stats computes the analytics payload for one profile over one
// trailing window, in a single pass over the fetched events.
package stats

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/divyaannsh/followus/internal/attribution"
	"github.com/divyaannsh/followus/internal/domain"
)

const (
	// AllTimeLookbackDays approximates "all time" (days = 0) with a fixed
	// ten-year lookback. It is an approximation on purpose: callers must
	// not assume true unbounded history.
	AllTimeLookbackDays = 3650

	// dailySeriesCapDays bounds the chart payload. Totals, top links and
	// sources still cover the full requested window; only the daily series
	// is capped.
	dailySeriesCapDays = 90

	// topLinksLimit caps the ranked link list.
	topLinksLimit = 10

	// noTopLink is the placeholder title when the window has no clicks.
	noTopLink = "–"
)

// LinkStat is one link's click count.
type LinkStat struct {
	LinkID string
	Title  string
	Clicks int
}

// SourceStat is one traffic source's event count.
type SourceStat struct {
	Source string
	Count  int
}

// DayStat is one calendar day (UTC) of the daily series.
type DayStat struct {
	Date   string
	Views  int
	Clicks int
}

// Report is the complete aggregation result.
type Report struct {
	TotalViews  int
	TotalClicks int
	ClickRate   string
	TopLink     string
	TopLinks    []LinkStat
	Sources     []SourceStat
	Daily       []DayStat
}

// WindowStart resolves the fetch window: now minus windowDays (or the
// all-time lookback when windowDays is 0), normalized to the start of that
// UTC day.
func WindowStart(now time.Time, windowDays int) time.Time {
	lookback := windowDays
	if lookback == 0 {
		lookback = AllTimeLookbackDays
	}
	d := now.UTC().AddDate(0, 0, -lookback)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Aggregate derives every reported metric from one scan of events. The
// slice is expected in the store's scan order (timestamp ascending); ties
// in link and source ranking keep the order in which distinct keys were
// first encountered, so equal counts rank deterministically.
func Aggregate(events []domain.Event, windowDays int, now time.Time) *Report {
	report := &Report{
		TopLinks: []LinkStat{},
		Sources:  []SourceStat{},
	}

	linkIndex := make(map[string]int)
	sourceIndex := make(map[string]int)

	var links []LinkStat
	var sources []SourceStat

	for _, e := range events {
		switch e.Type {
		case domain.EventTypeView:
			report.TotalViews++
		case domain.EventTypeClick:
			report.TotalClicks++

			key := e.LinkID
			if key == "" {
				key = "unknown"
			}
			i, ok := linkIndex[key]
			if !ok {
				title := e.LinkTitle
				if title == "" {
					title = "Untitled"
				}
				i = len(links)
				linkIndex[key] = i
				links = append(links, LinkStat{LinkID: e.LinkID, Title: title})
			}
			links[i].Clicks++
		}

		src := e.Source
		if src == "" {
			src = attribution.SourceDirect
		}
		i, ok := sourceIndex[src]
		if !ok {
			i = len(sources)
			sourceIndex[src] = i
			sources = append(sources, SourceStat{Source: src})
		}
		sources[i].Count++
	}

	report.ClickRate = clickRate(report.TotalClicks, report.TotalViews)

	// Stable sort preserves first-seen order among equal counts.
	sort.SliceStable(links, func(a, b int) bool {
		return links[a].Clicks > links[b].Clicks
	})
	if len(links) > topLinksLimit {
		links = links[:topLinksLimit]
	}
	if len(links) > 0 {
		report.TopLinks = links
		report.TopLink = links[0].Title
	} else {
		report.TopLink = noTopLink
	}

	sort.SliceStable(sources, func(a, b int) bool {
		return sources[a].Count > sources[b].Count
	})
	if len(sources) > 0 {
		report.Sources = sources
	}

	report.Daily = dailySeries(events, windowDays, now)

	return report
}

// clickRate formats clicks/views as a percentage with exactly one decimal
// digit, "0.0" when there are no views. Ties round half up, so 6.25%
// reports as "6.3".
func clickRate(clicks, views int) string {
	if views == 0 {
		return "0.0"
	}
	rate := math.Round(float64(clicks)/float64(views)*100*10) / 10
	return strconv.FormatFloat(rate, 'f', 1, 64)
}

// dailySeries builds one bucket per UTC calendar day counting backward from
// today inclusive, dense (zero-filled) and sorted ascending. The series
// covers min(windowDays, 90) days, or 90 for the all-time sentinel.
func dailySeries(events []domain.Event, windowDays int, now time.Time) []DayStat {
	n := windowDays
	if n == 0 || n > dailySeriesCapDays {
		n = dailySeriesCapDays
	}

	today := now.UTC()
	series := make([]DayStat, n)
	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		date := today.AddDate(0, 0, -(n - 1 - i)).Format("2006-01-02")
		series[i] = DayStat{Date: date}
		index[date] = i
	}

	for _, e := range events {
		i, ok := index[e.Timestamp.UTC().Format("2006-01-02")]
		if !ok {
			continue
		}
		switch e.Type {
		case domain.EventTypeView:
			series[i].Views++
		case domain.EventTypeClick:
			series[i].Clicks++
		}
	}

	return series
}
