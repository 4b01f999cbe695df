package query

import (
	"regexp"
	"strconv"
	"time"
)

// Period is a closed calendar-date range. Start and End are truncated to
// dates; Start is never after End.
type Period struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days covered by the period,
// inclusive. Both ends are normalized to UTC midnights first so a DST
// transition inside the period cannot shift the count.
func (p Period) Days() int {
	start := time.Date(p.Start.Year(), p.Start.Month(), p.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(p.End.Year(), p.End.Month(), p.End.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// Label renders the period as "YYYY-MM-DD〜YYYY-MM-DD" for response text.
func (p Period) Label() string {
	return p.Start.Format("2006-01-02") + "〜" + p.End.Format("2006-01-02")
}

// periodRule binds a text pattern to a resolver. Rules are evaluated in
// declaration order and the first match wins, so more specific patterns
// must come before the generic day-count forms that would also match them.
type periodRule struct {
	re      *regexp.Regexp
	resolve func(match []string, today time.Time) Period
}

var periodRules = []periodRule{
	{regexp.MustCompile(`過去(\d+)日間?`), lastNDays},
	{regexp.MustCompile(`(?i)past\s+(\d+)\s+days?`), lastNDays},
	{regexp.MustCompile(`(\d+)日間?`), lastNDays},
	{regexp.MustCompile(`(?i)(\d+)\s+days?`), lastNDays},
	{regexp.MustCompile(`今週|this week`), func(_ []string, today time.Time) Period {
		return Period{Start: mondayOf(today), End: today}
	}},
	{regexp.MustCompile(`先週|last week`), func(_ []string, today time.Time) Period {
		end := mondayOf(today).AddDate(0, 0, -1)
		return Period{Start: end.AddDate(0, 0, -6), End: end}
	}},
	{regexp.MustCompile(`今月|this month`), func(_ []string, today time.Time) Period {
		return Period{Start: firstOfMonth(today), End: today}
	}},
	{regexp.MustCompile(`先月|last month`), func(_ []string, today time.Time) Period {
		end := firstOfMonth(today).AddDate(0, 0, -1)
		return Period{Start: firstOfMonth(end), End: end}
	}},
}

func lastNDays(match []string, today time.Time) Period {
	n, err := strconv.Atoi(match[1])
	if err != nil || n < 1 {
		n = 1
	}
	return Period{Start: today.AddDate(0, 0, -(n - 1)), End: today}
}

// ResolvePeriod extracts a concrete date range from free text. It is a
// total function: when no pattern matches it falls back to the last seven
// days ending today. Week boundaries follow the ISO convention (Monday).
func ResolvePeriod(text string, today time.Time) Period {
	today = truncateDate(today)
	for _, rule := range periodRules {
		if match := rule.re.FindStringSubmatch(text); match != nil {
			return rule.resolve(match, today)
		}
	}
	return Period{Start: today.AddDate(0, 0, -6), End: today}
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func mondayOf(t time.Time) time.Time {
	// time.Weekday counts Sunday as 0.
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -sinceMonday)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
