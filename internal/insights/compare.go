package insights

import "insightchat/internal/query"

// Comparison is the arithmetic of a current-vs-previous period pair.
// DeltaPercent is defined as zero when the previous value is zero; a
// fresh site with no prior data is not an error.
type Comparison struct {
	Current      float64
	Previous     float64
	Delta        float64
	DeltaPercent float64
}

// Compare computes the raw change between two equal-length periods. The
// delta keeps its arithmetic sign regardless of metric polarity; callers
// choose the unit suffix.
func Compare(current, previous float64) Comparison {
	c := Comparison{
		Current:  current,
		Previous: previous,
		Delta:    current - previous,
	}
	if previous != 0 {
		c.DeltaPercent = c.Delta / previous * 100
	}
	return c
}

// PreviousPeriod returns the window of identical length immediately
// preceding p, with no gap and no overlap.
func PreviousPeriod(p query.Period) query.Period {
	length := p.Days()
	end := p.Start.AddDate(0, 0, -1)
	return query.Period{Start: end.AddDate(0, 0, -(length - 1)), End: end}
}
