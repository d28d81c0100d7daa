package translate

import (
	"log/slog"
	"strings"
)

// Result describes how an input was translated.
type Result struct {
	// Query is the translated dork; identical to what Translate returns.
	Query string
	// Rule names the rule that matched, empty when the fallback ran.
	Rule string
	// Groups holds the rule's captured groups, whole match first.
	Groups []string
	// Fallback is true when no rule matched.
	Fallback bool
	// Extraction is the final fallback state; nil when a rule matched.
	Extraction *Extraction
}

// Translator turns natural-language requests into dork queries.
// It holds no mutable state and may be shared between goroutines.
type Translator struct {
	logger  *slog.Logger
	monitor Monitor
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
	}
}

// WithMonitor sets a monitor that observes every translation.
func WithMonitor(monitor Monitor) Option {
	return func(t *Translator) {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		t.monitor = monitor
	}
}

// NewTranslator creates a translator.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		logger:  slog.Default(),
		monitor: &noopMonitor{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate converts input into a dork query. Empty or blank input yields "".
func (t *Translator) Translate(input string) string {
	return t.Explain(input).Query
}

// Explain translates input and reports which path produced the query.
func (t *Translator) Explain(input string) *Result {
	trimmed := strings.TrimSpace(input)
	t.monitor.Start(trimmed)

	result := t.explain(trimmed)

	t.monitor.Finish(result.Query)
	return result
}

func (t *Translator) explain(input string) *Result {
	if input == "" {
		return &Result{}
	}

	if rule, groups := matchRule(input); rule != nil {
		t.monitor.RuleMatched(rule.Name, groups)
		query := strings.TrimSpace(rule.Template(groups))
		t.logger.Debug("rule matched", "rule", rule.Name, "query", query)
		return &Result{
			Query:  query,
			Rule:   rule.Name,
			Groups: groups,
		}
	}

	e := extract(input, t.monitor.PassApplied)

	var query string
	if e.recognized() {
		query = e.Query()
	} else {
		// Nothing structural was found; keep the user's own casing.
		query = quoteUnstructured(input)
	}
	t.logger.Debug("fallback extraction",
		"operators", len(e.Operators),
		"terms", len(e.Terms),
		"query", query)

	return &Result{
		Query:      query,
		Fallback:   true,
		Extraction: &e,
	}
}

// Translate converts input into a dork query using a default Translator.
func Translate(input string) string {
	return NewTranslator().Translate(input)
}
