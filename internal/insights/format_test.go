package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"insightchat/internal/query"
)

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
	assert.Equal(t, "1,000", FormatCount(999.6))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "42.3%", FormatRate(0.423))
	assert.Equal(t, "0.0%", FormatRate(0))
	assert.Equal(t, "100.0%", FormatRate(1))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "3分5秒", FormatDuration(185))
	assert.Equal(t, "0分45秒", FormatDuration(45))
	assert.Equal(t, "10分0秒", FormatDuration(600))
}

func TestFormatMetricValue(t *testing.T) {
	assert.Equal(t, "1,000", FormatMetricValue(query.MetricSessions, 1000))
	assert.Equal(t, "42.3%", FormatMetricValue(query.MetricBounceRate, 0.423))
	assert.Equal(t, "3分5秒", FormatMetricValue(query.MetricAvgSessionDuration, 185))
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+200", formatSigned(200))
	assert.Equal(t, "-35", formatSigned(-35))
	assert.Equal(t, "+25.0%", formatSignedPercent(25))
	assert.Equal(t, "-12.5%", formatSignedPercent(-12.5))
}
