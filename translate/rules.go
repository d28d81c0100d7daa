package translate

import (
	"regexp"
	"strings"
)

// Template builds a query from the groups captured by a rule pattern.
// groups[0] is the whole match; capture groups follow in order.
type Template func(groups []string) string

// Rule pairs a case-insensitive pattern with the template that renders a match.
type Rule struct {
	Name     string
	Pattern  *regexp.Regexp
	Template Template
}

// fixed returns a template that ignores its groups.
func fixed(query string) Template {
	return func([]string) string {
		return query
	}
}

// officeExtensions maps office product names to their filetype alternation.
var officeExtensions = map[string]string{
	"excel":      "xls OR filetype:xlsx",
	"word":       "doc OR filetype:docx",
	"powerpoint": "ppt OR filetype:pptx",
}

// rules is evaluated top to bottom; the first match wins. More specific rules
// must stay ahead of the general rules sharing their prefix.
var rules = []Rule{
	// Resumes and CVs
	{
		Name:    "resume-year",
		Pattern: regexp.MustCompile(`(?i)find\s+(resumes?|cvs?)\s+for\s+(.+?)\s+(?:in|from)\s+(\d{4})`),
		Template: func(g []string) string {
			return `filetype:pdf (resume OR cv) "` + g[2] + `" ` + g[3]
		},
	},
	{
		Name:    "resume",
		Pattern: regexp.MustCompile(`(?i)find\s+(resumes?|cvs?)\s+for\s+(.+)`),
		Template: func(g []string) string {
			return `filetype:pdf (resume OR cv) "` + g[2] + `"`
		},
	},

	// Database files
	{
		Name:     "database-backup",
		Pattern:  regexp.MustCompile(`(?i)find\s+(?:exposed|vulnerable)?\s*database\s+(?:backups?|dumps?)`),
		Template: fixed(`filetype:sql "INSERT INTO" OR filetype:db "database"`),
	},
	{
		Name:     "sql-files",
		Pattern:  regexp.MustCompile(`(?i)find\s+sql\s+(?:files?|backups?)`),
		Template: fixed(`filetype:sql intext:"INSERT INTO" OR intext:"CREATE TABLE"`),
	},

	// Configuration files
	{
		Name:     "config-files",
		Pattern:  regexp.MustCompile(`(?i)find\s+(?:config|configuration)\s+files?`),
		Template: fixed(`filetype:conf OR filetype:config OR filetype:cfg OR filetype:ini`),
	},
	{
		Name:     "env-files",
		Pattern:  regexp.MustCompile(`(?i)find\s+(?:environment|env)\s+files?`),
		Template: fixed(`filetype:env "DB_PASSWORD" OR "API_KEY" OR "SECRET"`),
	},

	// Log files
	{
		Name:     "log-files",
		Pattern:  regexp.MustCompile(`(?i)find\s+(?:exposed|public)?\s*log\s+files?`),
		Template: fixed(`filetype:log OR intitle:"index of" logs`),
	},

	// Admin panels and login pages
	{
		Name:    "admin-panel",
		Pattern: regexp.MustCompile(`(?i)find\s+(?:admin|administrator)\s+(?:panel|page|interface|dashboard)s?\s+(?:on|for)\s+(\S+)`),
		Template: func(g []string) string {
			return "site:" + g[1] + " (inurl:admin OR inurl:administrator OR inurl:cpanel)"
		},
	},
	{
		Name:    "login-page",
		Pattern: regexp.MustCompile(`(?i)find\s+login\s+pages?\s+(?:on|for)\s+(\S+)`),
		Template: func(g []string) string {
			return "site:" + g[1] + " (inurl:login OR inurl:signin OR intitle:login)"
		},
	},

	// Well-known applications
	{
		Name:     "wordpress",
		Pattern:  regexp.MustCompile(`(?i)find\s+wordpress\s+(?:admin|login|sites?)`),
		Template: fixed(`inurl:"wp-admin" OR inurl:"wp-login" OR intitle:"WordPress"`),
	},
	{
		Name:     "phpmyadmin",
		Pattern:  regexp.MustCompile(`(?i)find\s+phpmyadmin`),
		Template: fixed(`inurl:"/phpmyadmin" intitle:"phpMyAdmin"`),
	},
	{
		Name:     "webcam",
		Pattern:  regexp.MustCompile(`(?i)find\s+(?:exposed|open|public)?\s*(?:webcams?|cameras?)`),
		Template: fixed(`intitle:"webcam 7" OR intitle:"network camera" OR inurl:"view/view.shtml"`),
	},

	// Directory listings
	{
		Name:    "directory-listing",
		Pattern: regexp.MustCompile(`(?i)find\s+(?:index|directories|directory\s+listing)s?\s+(?:of|with|containing)?\s*(.+)`),
		Template: func(g []string) string {
			return `intitle:"index of" "` + g[1] + `"`
		},
	},
	{
		Name:     "open-directories",
		Pattern:  regexp.MustCompile(`(?i)find\s+(?:open|exposed)\s+directories`),
		Template: fixed(`intitle:"index of" "parent directory"`),
	},

	// Error pages
	{
		Name:     "sql-errors",
		Pattern:  regexp.MustCompile(`(?i)find\s+sql\s+errors?`),
		Template: fixed(`intext:"sql syntax near" OR intext:"mysql_fetch" OR intext:"ORA-00921"`),
	},
	{
		Name:     "server-errors",
		Pattern:  regexp.MustCompile(`(?i)find\s+(?:php|server)\s+errors?`),
		Template: fixed(`intext:"Warning: mysql_" OR intext:"Fatal error:" OR intext:"Parse error:"`),
	},

	// Sensitive documents
	{
		Name:     "sensitive-documents",
		Pattern:  regexp.MustCompile(`(?i)find\s+(?:confidential|sensitive|private)\s+(?:documents?|files?)`),
		Template: fixed(`filetype:pdf (confidential OR "not for distribution" OR "internal only")`),
	},
	{
		Name:     "credential-files",
		Pattern:  regexp.MustCompile(`(?i)find\s+(?:password|credential)s?\s+files?`),
		Template: fixed(`filetype:txt intext:password OR filetype:xls password`),
	},

	// Vulnerabilities
	{
		Name:    "vulnerable-to",
		Pattern: regexp.MustCompile(`(?i)find\s+vulnerable\s+(?:sites?|pages?)\s+(?:to|with)\s+(.+)`),
		Template: func(g []string) string {
			return `inurl:"` + g[1] + `" OR intext:"` + g[1] + `"`
		},
	},

	// Email harvesting
	{
		Name:    "emails-on-site",
		Pattern: regexp.MustCompile(`(?i)find\s+emails?\s+(?:at|from|on)\s+(\S+)`),
		Template: func(g []string) string {
			site := g[1]
			return "site:" + site + ` "@` + site + `" OR site:` + site + ` "email" OR "contact"`
		},
	},

	// PDFs
	{
		Name:    "pdfs-site-topic",
		Pattern: regexp.MustCompile(`(?i)find\s+pdfs?\s+on\s+(\S+)\s+about\s+(.+)`),
		Template: func(g []string) string {
			return "site:" + g[1] + ` filetype:pdf "` + g[2] + `"`
		},
	},
	{
		Name:    "pdfs-topic-site",
		Pattern: regexp.MustCompile(`(?i)find\s+pdfs?\s+about\s+(.+)\s+on\s+(\S+)`),
		Template: func(g []string) string {
			return "site:" + g[2] + ` filetype:pdf "` + g[1] + `"`
		},
	},
	{
		Name:    "pdfs-topic",
		Pattern: regexp.MustCompile(`(?i)find\s+pdfs?\s+(?:about|containing|with)\s+(.+)`),
		Template: func(g []string) string {
			return `filetype:pdf "` + g[1] + `"`
		},
	},

	// Explicit file types
	{
		Name:    "filetype-topic",
		Pattern: regexp.MustCompile(`(?i)find\s+(pdf|doc|docx|xls|xlsx|ppt|pptx|txt)\s+(?:files?\s+)?(?:about|containing|with)\s+(.+)`),
		Template: func(g []string) string {
			return "filetype:" + g[1] + ` "` + g[2] + `"`
		},
	},
	{
		Name:    "office-topic",
		Pattern: regexp.MustCompile(`(?i)find\s+(excel|word|powerpoint)\s+(?:files?\s+)?(?:about|containing|with)\s+(.+)`),
		Template: func(g []string) string {
			return "(filetype:" + officeExtensions[strings.ToLower(g[1])] + `) "` + g[2] + `"`
		},
	},

	// Site scoped searches
	{
		Name:    "site-then-query",
		Pattern: regexp.MustCompile(`(?i)(?:search|find)\s+(?:on|in)\s+(\S+)\s+for\s+(.+)`),
		Template: func(g []string) string {
			return "site:" + g[1] + ` "` + g[2] + `"`
		},
	},
	{
		Name:    "query-then-site",
		Pattern: regexp.MustCompile(`(?i)(?:search|find)\s+(.+)\s+(?:on|in)\s+(\S+)`),
		Template: func(g []string) string {
			return "site:" + g[2] + ` "` + g[1] + `"`
		},
	},

	// Title and URL searches
	{
		Name:    "titled",
		Pattern: regexp.MustCompile(`(?i)find\s+pages?\s+with\s+(?:title|titled)\s+(.+)`),
		Template: func(g []string) string {
			return `intitle:"` + g[1] + `"`
		},
	},
	{
		Name:    "url-contains",
		Pattern: regexp.MustCompile(`(?i)find\s+(?:pages?|urls?)\s+containing\s+(.+)\s+in\s+(?:the\s+)?url`),
		Template: func(g []string) string {
			return "inurl:" + g[1]
		},
	},

	// Exclusions
	{
		Name:    "exclude",
		Pattern: regexp.MustCompile(`(?i)find\s+(.+)\s+(?:but\s+not|exclude|excluding|without)\s+(.+)`),
		Template: func(g []string) string {
			return `"` + g[1] + `" -` + g[2]
		},
	},

	// Dates
	{
		Name:    "date-range",
		Pattern: regexp.MustCompile(`(?i)find\s+(.+)\s+(?:from|between)\s+(\d{4})\s+(?:to|and)\s+(\d{4})`),
		Template: func(g []string) string {
			return `"` + g[1] + `" ` + g[2] + ".." + g[3]
		},
	},
	{
		Name:    "single-year",
		Pattern: regexp.MustCompile(`(?i)find\s+(.+)\s+(?:in|from)\s+(\d{4})`),
		Template: func(g []string) string {
			return `"` + g[1] + `" ` + g[2]
		},
	},

	// Secrets
	{
		Name:     "secrets",
		Pattern:  regexp.MustCompile(`(?i)find\s+(?:api\s+keys?|secrets?|tokens?)`),
		Template: fixed(`filetype:env "API_KEY" OR filetype:json "api_key" OR "secret_key"`),
	},

	// Version control
	{
		Name:     "git-repos",
		Pattern:  regexp.MustCompile(`(?i)find\s+(?:git|github)\s+(?:repos?|repositories)`),
		Template: fixed(`inurl:".git" OR intitle:"Index of /.git"`),
	},
}

// Rules returns a copy of the rule table in priority order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// matchRule returns the first rule matching input and its captured groups.
func matchRule(input string) (*Rule, []string) {
	for i := range rules {
		if groups := rules[i].Pattern.FindStringSubmatch(input); groups != nil {
			return &rules[i], groups
		}
	}
	return nil, nil
}
