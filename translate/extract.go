package translate

import (
	"regexp"
	"slices"
	"strings"
)

// Extraction is the state threaded through the fallback passes. Each pass
// receives an Extraction and returns a new one; Text shrinks as fragments are
// recognised.
type Extraction struct {
	// Text is the working text not yet claimed by any pass.
	Text string
	// Operators holds operator fragments in discovery order.
	Operators []string
	// Terms holds year and quoted-phrase search terms in discovery order.
	Terms []string
	// Residual is the search term built from whatever text remained.
	Residual string
}

func (e Extraction) withText(text string) Extraction {
	e.Text = collapseSpace(text)
	return e
}

func (e Extraction) withOperator(fragment string) Extraction {
	if slices.Contains(e.Operators, fragment) {
		return e
	}
	e.Operators = append(slices.Clip(e.Operators), fragment)
	return e
}

func (e Extraction) withTerm(term string) Extraction {
	e.Terms = append(slices.Clip(e.Terms), term)
	return e
}

// recognized reports whether any pass before the residual pass found structure.
func (e Extraction) recognized() bool {
	return len(e.Operators) > 0 || len(e.Terms) > 0
}

// Query joins operators, terms and the residual term into the final query.
func (e Extraction) Query() string {
	parts := make([]string, 0, len(e.Operators)+len(e.Terms)+1)
	parts = append(parts, e.Operators...)
	parts = append(parts, e.Terms...)
	if e.Residual != "" {
		parts = append(parts, e.Residual)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// pass is one fallback extraction step.
type pass struct {
	name  string
	apply func(Extraction) Extraction
}

// PassResidual names the final fallback pass. It runs once for every input
// that no rule matched.
const PassResidual = "residual"

// passes run in this order; later passes see only the text earlier passes
// left behind, and the residual pass must run last.
var passes = []pass{
	{name: "filler", apply: fillerPass},
	{name: "filetype", apply: fileTypes.apply},
	{name: "site", apply: sitePass},
	{name: "url", apply: urlKeywords.apply},
	{name: "title", apply: titlePass},
	{name: "content", apply: contentKeywords.apply},
	{name: "directory", apply: directoryPass},
	{name: "adjectives", apply: adjectivePass},
	{name: "year", apply: yearPass},
	{name: "quoted", apply: quotedPass},
	{name: PassResidual, apply: residualPass},
}

// PassNames returns the fallback pass names in execution order.
func PassNames() []string {
	names := make([]string, len(passes))
	for i, p := range passes {
		names[i] = p.name
	}
	return names
}

const topLevelDomains = `com|org|net|edu|gov|io|co|uk|de|fr|jp|cn|in|au|ca`

var (
	domainExpr     = `((?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+(?:` + topLevelDomains + `))\b`
	siteAfterPrep  = regexp.MustCompile(`(?i)\b(?:on|from|at|in)\s+` + domainExpr)
	bareSite       = regexp.MustCompile(`(?i)(?:\bsite:)?\b` + domainExpr)
	titlePattern   = regexp.MustCompile(`(?i)\b(?:titled|title|heading)\s+(?:"([^"]+)"|(.+?)(?:\s+(?:with|containing|and|or|that|which|about|from|in|on)\b|$))`)
	directoryWords = regexp.MustCompile(`(?i)\b(?:index|directory|directories|folders?)(?:\s+listings?)?(?:\s+of)?\b`)
	listingWords   = regexp.MustCompile(`(?i)\blistings?(?:\s+of)?\b`)
	adjectiveWords = regexp.MustCompile(`(?i)\b(?:vulnerable|exposed|public|open|unsecured)\b`)
	yearPattern    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	quotedPattern  = regexp.MustCompile(`"([^"]*)"`)
)

// cut removes text[start:end] and normalizes the remaining whitespace.
func cut(text string, start, end int) string {
	return collapseSpace(text[:start] + " " + text[end:])
}

func fillerPass(e Extraction) Extraction {
	return e.withText(stripFiller(e.Text))
}

// sitePass prefers a domain introduced by a preposition and falls back to the
// first bare domain-looking token.
func sitePass(e Extraction) Extraction {
	if loc := siteAfterPrep.FindStringSubmatchIndex(e.Text); loc != nil {
		e = e.withOperator("site:" + e.Text[loc[2]:loc[3]])
		return e.withText(cut(e.Text, loc[0], loc[1]))
	}
	if loc := bareSite.FindStringSubmatchIndex(e.Text); loc != nil {
		e = e.withOperator("site:" + e.Text[loc[2]:loc[3]])
		return e.withText(cut(e.Text, loc[0], loc[1]))
	}
	return e
}

// titlePass claims the words after "titled", "title" or "heading" up to the
// next connective, or a quoted phrase when one follows directly.
func titlePass(e Extraction) Extraction {
	loc := titlePattern.FindStringSubmatchIndex(e.Text)
	if loc == nil {
		return e
	}

	var title string
	var end int
	if loc[2] >= 0 {
		title = e.Text[loc[2]:loc[3]]
		end = loc[3] + 1 // closing quote
	} else {
		title = e.Text[loc[4]:loc[5]]
		end = loc[5]
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return e
	}
	e = e.withOperator(`intitle:"` + title + `"`)
	return e.withText(cut(e.Text, loc[0], end))
}

func directoryPass(e Extraction) Extraction {
	if !directoryWords.MatchString(e.Text) {
		return e
	}
	e = e.withOperator(`intitle:"index of"`)
	text := directoryWords.ReplaceAllString(e.Text, " ")
	return e.withText(listingWords.ReplaceAllString(text, " "))
}

func adjectivePass(e Extraction) Extraction {
	return e.withText(adjectiveWords.ReplaceAllString(e.Text, " "))
}

// yearPass takes the first 19xx or 20xx token as a bare search term.
func yearPass(e Extraction) Extraction {
	loc := yearPattern.FindStringIndex(e.Text)
	if loc == nil {
		return e
	}
	e = e.withTerm(e.Text[loc[0]:loc[1]])
	return e.withText(cut(e.Text, loc[0], loc[1]))
}

// quotedPass keeps phrases the user already quoted.
func quotedPass(e Extraction) Extraction {
	matches := quotedPattern.FindAllStringSubmatch(e.Text, -1)
	if len(matches) == 0 {
		return e
	}
	for _, m := range matches {
		if phrase := strings.TrimSpace(m[1]); phrase != "" {
			e = e.withTerm(`"` + phrase + `"`)
		}
	}
	return e.withText(quotedPattern.ReplaceAllString(e.Text, " "))
}

// residualPass turns the remaining words into one search term, quoted when it
// spans more than one word.
func residualPass(e Extraction) Extraction {
	words := residualWords(e.Text)
	e.Text = ""
	switch len(words) {
	case 0:
		e.Residual = ""
	case 1:
		e.Residual = words[0]
	default:
		e.Residual = `"` + strings.Join(words, " ") + `"`
	}
	return e
}

// extract runs every fallback pass over the lowercased input.
func extract(input string, observe func(name string, e Extraction)) Extraction {
	e := Extraction{Text: strings.ToLower(strings.TrimSpace(input))}
	for _, p := range passes {
		e = p.apply(e)
		if observe != nil {
			observe(p.name, e)
		}
	}
	return e
}
