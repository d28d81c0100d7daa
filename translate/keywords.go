package translate

import (
	"regexp"
	"slices"
	"strings"
)

// keyword maps one or more surface forms to the query fragment they stand for.
type keyword struct {
	words    []string
	fragment string
}

// keywordTable is an immutable, ordered set of keywords compiled into a single
// whole-word pattern. Matches are reported left to right, so fragments are
// emitted in the order their keywords appear in the text.
type keywordTable struct {
	entries []keyword
	pattern *regexp.Regexp
}

// newKeywordTable compiles entries into a table. suffix is an optional pattern
// that is consumed together with a keyword (for example "files" after "pdf").
func newKeywordTable(suffix string, entries ...keyword) *keywordTable {
	var forms []string
	for _, entry := range entries {
		forms = append(forms, entry.words...)
	}
	// Longer forms first so "text files" wins over "text file".
	slices.SortStableFunc(forms, func(a, b string) int {
		return len(b) - len(a)
	})

	alternatives := make([]string, len(forms))
	for i, form := range forms {
		alternatives[i] = strings.Join(strings.Fields(regexp.QuoteMeta(form)), `\s+`)
	}

	expr := `\b(` + strings.Join(alternatives, "|") + `)\b`
	if suffix != "" {
		expr += `(?:\s+(?:` + suffix + `)\b)?`
	}

	return &keywordTable{
		entries: entries,
		pattern: regexp.MustCompile(`(?i)` + expr),
	}
}

// lookup returns the fragment for a matched surface form.
func (kt *keywordTable) lookup(word string) (string, bool) {
	normalized := strings.ToLower(strings.Join(strings.Fields(word), " "))
	for _, entry := range kt.entries {
		if slices.Contains(entry.words, normalized) {
			return entry.fragment, true
		}
	}
	return "", false
}

// apply emits a fragment for every keyword occurrence and strips all of them.
func (kt *keywordTable) apply(e Extraction) Extraction {
	locs := kt.pattern.FindAllStringSubmatchIndex(e.Text, -1)
	if len(locs) == 0 {
		return e
	}
	for _, loc := range locs {
		if fragment, ok := kt.lookup(e.Text[loc[2]:loc[3]]); ok {
			e = e.withOperator(fragment)
		}
	}
	return e.withText(kt.pattern.ReplaceAllString(e.Text, " "))
}

// fileTypes maps file kinds to filetype: operators.
var fileTypes = newKeywordTable(`files?|documents?`,
	keyword{words: []string{"pdf", "pdfs"}, fragment: "filetype:pdf"},
	keyword{words: []string{"doc", "docs", "word"}, fragment: "filetype:doc"},
	keyword{words: []string{"docx"}, fragment: "filetype:docx"},
	keyword{words: []string{"xls", "excel", "spreadsheet", "spreadsheets"}, fragment: "filetype:xls"},
	keyword{words: []string{"xlsx"}, fragment: "filetype:xlsx"},
	keyword{words: []string{"ppt", "powerpoint"}, fragment: "filetype:ppt"},
	keyword{words: []string{"pptx"}, fragment: "filetype:pptx"},
	keyword{words: []string{"txt", "text file", "text files"}, fragment: "filetype:txt"},
	keyword{words: []string{"csv"}, fragment: "filetype:csv"},
	keyword{words: []string{"sql", "database", "databases"}, fragment: "filetype:sql"},
	keyword{words: []string{"log", "logs"}, fragment: "filetype:log"},
	keyword{words: []string{"conf", "config", "configs", "configuration"}, fragment: "filetype:conf"},
	keyword{words: []string{"env", "environment"}, fragment: "filetype:env"},
	keyword{words: []string{"bak", "backup", "backups"}, fragment: "filetype:bak"},
)

// urlKeywords maps page kinds to inurl: operators.
var urlKeywords = newKeywordTable(`pages?|panel|interface`,
	keyword{words: []string{"login"}, fragment: "inurl:login"},
	keyword{words: []string{"admin"}, fragment: "inurl:admin"},
	keyword{words: []string{"administrator"}, fragment: "inurl:administrator"},
	keyword{words: []string{"cpanel"}, fragment: "inurl:cpanel"},
	keyword{words: []string{"dashboard"}, fragment: "inurl:dashboard"},
	keyword{words: []string{"panel"}, fragment: "inurl:panel"},
	keyword{words: []string{"signin"}, fragment: "inurl:signin"},
	keyword{words: []string{"signup"}, fragment: "inurl:signup"},
	keyword{words: []string{"register"}, fragment: "inurl:register"},
)

// contentKeywords maps sensitive content to intext: operators.
var contentKeywords = newKeywordTable("",
	keyword{words: []string{"password", "passwords"}, fragment: "intext:password"},
	keyword{words: []string{"api key", "api keys"}, fragment: `intext:"api_key" OR intext:"apikey"`},
	keyword{words: []string{"secret", "secrets"}, fragment: "intext:secret"},
	keyword{words: []string{"token", "tokens"}, fragment: "intext:token"},
	keyword{words: []string{"credential", "credentials"}, fragment: "intext:credential"},
	keyword{words: []string{"username", "usernames"}, fragment: "intext:username"},
	keyword{words: []string{"email", "emails"}, fragment: `intext:email OR intext:"@"`},
)
