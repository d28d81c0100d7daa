package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/poiesic/dorkit/translate"
)

const (
	MetricsNamespace           = "dorkit"
	MetricsSubsystemTranslator = "translator"

	MetricsRuleLabel = "rule"
)

// Metrics counts translations by outcome. It implements translate.Monitor and
// keeps no per-call state, so one instance can observe concurrent translations.
type Metrics struct {
	registry *prometheus.Registry

	translationsTotal prometheus.Counter
	ruleMatchesTotal  *prometheus.CounterVec
	fallbackTotal     prometheus.Counter
	emptyTotal        prometheus.Counter
}

var _ translate.Monitor = (*Metrics)(nil)

// NewMetrics creates the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{}

	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(collectors.NewGoCollector())

	m.translationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemTranslator,
		Name:      "translations_total",
		Help:      "The total number of translated inputs.",
	})
	m.registry.MustRegister(m.translationsTotal)

	m.ruleMatchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemTranslator,
		Name:      "rule_matches_total",
		Help:      "The number of inputs handled by each rule.",
	}, []string{MetricsRuleLabel})
	m.registry.MustRegister(m.ruleMatchesTotal)

	m.fallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemTranslator,
		Name:      "fallback_total",
		Help:      "The number of inputs no rule matched.",
	})
	m.registry.MustRegister(m.fallbackTotal)

	m.emptyTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemTranslator,
		Name:      "empty_total",
		Help:      "The number of translations that produced an empty query.",
	})
	m.registry.MustRegister(m.emptyTotal)

	return m
}

func (m *Metrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Start(_ string) {
	if m != nil {
		m.translationsTotal.Inc()
	}
}

func (m *Metrics) RuleMatched(rule string, _ []string) {
	if m != nil {
		m.ruleMatchesTotal.With(prometheus.Labels{MetricsRuleLabel: rule}).Inc()
	}
}

// PassApplied counts a fallback once, on the residual pass that ends it.
func (m *Metrics) PassApplied(pass string, _ translate.Extraction) {
	if m != nil && pass == translate.PassResidual {
		m.fallbackTotal.Inc()
	}
}

func (m *Metrics) Finish(query string) {
	if m != nil && query == "" {
		m.emptyTotal.Inc()
	}
}

// RuleCount is the number of inputs one rule handled.
type RuleCount struct {
	Rule  string
	Count int
}

// Summary reports the translator counters read back from the registry.
type Summary struct {
	Translations int
	Fallbacks    int
	Empty        int
	Rules        []RuleCount
}

// Summary gathers the registry and returns the translator counters, with rule
// counts ordered from most to least used.
func (m *Metrics) Summary() (*Summary, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	s := &Summary{}
	prefix := MetricsNamespace + "_" + MetricsSubsystemTranslator + "_"
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			value := int(metric.GetCounter().GetValue())
			switch family.GetName() {
			case prefix + "translations_total":
				s.Translations = value
			case prefix + "fallback_total":
				s.Fallbacks = value
			case prefix + "empty_total":
				s.Empty = value
			case prefix + "rule_matches_total":
				for _, label := range metric.GetLabel() {
					if label.GetName() == MetricsRuleLabel {
						s.Rules = append(s.Rules, RuleCount{Rule: label.GetValue(), Count: value})
					}
				}
			}
		}
	}

	sort.SliceStable(s.Rules, func(i, j int) bool {
		if s.Rules[i].Count != s.Rules[j].Count {
			return s.Rules[i].Count > s.Rules[j].Count
		}
		return s.Rules[i].Rule < s.Rules[j].Rule
	})
	return s, nil
}
