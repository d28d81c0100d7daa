package metrics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/dorkit/translate"
)

func TestMetrics_CountsOutcomes(t *testing.T) {
	m := NewMetrics()
	tr := translate.NewTranslator(translate.WithMonitor(m))

	tr.Translate("find login pages on example.com")
	tr.Translate("find login pages for test.org")
	tr.Translate("find phpmyadmin")
	tr.Translate("hello world")
	tr.Translate("   ")

	assert.Equal(t, float64(5), testutil.ToFloat64(m.translationsTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.fallbackTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.emptyTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ruleMatchesTotal.WithLabelValues("login-page")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ruleMatchesTotal.WithLabelValues("phpmyadmin")))
}

func TestMetrics_Summary(t *testing.T) {
	m := NewMetrics()
	tr := translate.NewTranslator(translate.WithMonitor(m))

	tr.Translate("find phpmyadmin")
	tr.Translate("find login pages on example.com")
	tr.Translate("find login pages on test.org")
	tr.Translate("hello world")

	s, err := m.Summary()
	require.NoError(t, err)

	assert.Equal(t, 4, s.Translations)
	assert.Equal(t, 1, s.Fallbacks)
	assert.Equal(t, 0, s.Empty)
	require.Len(t, s.Rules, 2)
	assert.Equal(t, RuleCount{Rule: "login-page", Count: 2}, s.Rules[0])
	assert.Equal(t, RuleCount{Rule: "phpmyadmin", Count: 1}, s.Rules[1])
}

func TestMetrics_EmptySummary(t *testing.T) {
	s, err := NewMetrics().Summary()
	require.NoError(t, err)
	assert.Zero(t, s.Translations)
	assert.Empty(t, s.Rules)
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()
	tr := translate.NewTranslator(translate.WithMonitor(m))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Translate("find phpmyadmin")
		}()
	}
	wg.Wait()

	assert.Equal(t, float64(20), testutil.ToFloat64(m.ruleMatchesTotal.WithLabelValues("phpmyadmin")))
}

func TestMetrics_Registry(t *testing.T) {
	m := NewMetrics()
	require.NotNil(t, m.GetRegistry())

	families, err := m.GetRegistry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
