package translate

// Monitor observes a translation as it happens. Implement it to trace which
// rule fired or how the fallback passes reshaped the input.
type Monitor interface {
	Start(input string)
	RuleMatched(rule string, groups []string)
	PassApplied(pass string, state Extraction)
	Finish(query string)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                     {}
func (n *noopMonitor) RuleMatched(_ string, _ []string)   {}
func (n *noopMonitor) PassApplied(_ string, _ Extraction) {}
func (n *noopMonitor) Finish(_ string)                    {}
