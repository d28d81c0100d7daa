package translate

import (
	"regexp"
	"strings"
)

// fillerPattern matches one polite or imperative lead-in at the start of text.
// Longer phrases precede their prefixes ("find me" before "find").
var fillerPattern = regexp.MustCompile(`(?i)^(?:please|kindly|can you|could you|would you|` +
	`i want to|i would like to|i'd like to|i need to|help me|` +
	`search for|search|find me|find|look for|look up|get me|show me|give me|locate)\b[\s,]*`)

// stopWords are dropped from the residual text before it becomes a search term.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "with": true,
	"for": true, "about": true, "containing": true, "that": true, "this": true,
	"these": true, "those": true,
}

// stripFiller removes leading filler phrases until none remain.
func stripFiller(text string) string {
	text = strings.TrimSpace(text)
	for {
		loc := fillerPattern.FindStringIndex(text)
		if loc == nil || loc[1] == 0 {
			return text
		}
		text = strings.TrimSpace(text[loc[1]:])
	}
}

// collapseSpace trims text and reduces whitespace runs to single spaces.
func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// residualWords splits text into words, trims punctuation and drops stop words.
func residualWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		cleaned := strings.Trim(field, ".,!?;:'\"()[]{}")
		if cleaned == "" || stopWords[cleaned] {
			continue
		}
		words = append(words, cleaned)
	}
	return words
}

// quoteUnstructured renders input that carried no recognisable structure:
// leading filler is removed and the rest is quoted unless it already uses
// operator syntax.
func quoteUnstructured(input string) string {
	cleaned := stripFiller(input)
	if cleaned == "" {
		cleaned = strings.TrimSpace(input)
	}
	if strings.ContainsAny(cleaned, `:-"`) {
		return cleaned
	}
	return `"` + cleaned + `"`
}
