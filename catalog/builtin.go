package catalog

import "github.com/poiesic/dorkit/core"

type entry struct {
	token       string
	description string
	example     string
	category    core.Category
	usage       string
}

var builtin = []entry{
	// Domain
	{"site:", "Limits results to those from a specific website or domain", `site:github.com "machine learning"`, core.CategoryDomain, "site:example.com"},
	{"related:", "Finds sites related to a given domain", "related:nytimes.com", core.CategoryDomain, "related:example.com"},
	{"link:", "Finds pages that link to a specific URL", "link:example.com", core.CategoryDomain, "link:example.com"},

	// File
	{"filetype:", "Searches for specific file types (pdf, doc, xls, ppt, etc.)", `filetype:pdf "annual report"`, core.CategoryFile, "filetype:pdf"},
	{"ext:", "Alternative to filetype: - searches for file extensions", `ext:sql "database backup"`, core.CategoryFile, "ext:sql"},

	// Title
	{"intitle:", "Searches for pages with specific words in the title", `intitle:"index of" passwords`, core.CategoryTitle, `intitle:"keyword"`},
	{"allintitle:", "All query words must appear in the page title", "allintitle:security camera login", core.CategoryTitle, "allintitle:word1 word2"},

	// URL
	{"inurl:", "Searches for pages with specific words in the URL", "inurl:admin login", core.CategoryURL, "inurl:admin"},
	{"allinurl:", "All query words must appear in the URL", "allinurl:admin panel config", core.CategoryURL, "allinurl:word1 word2"},

	// Content
	{"intext:", "Searches for pages containing specific text in the body", `intext:"confidential" filetype:pdf`, core.CategoryContent, `intext:"keyword"`},
	{"allintext:", "All query words must appear in the page text", "allintext:username password email", core.CategoryContent, "allintext:word1 word2"},
	{"inanchor:", "Searches for pages with specific words in anchor text", `inanchor:"click here"`, core.CategoryContent, `inanchor:"text"`},
	{"allinanchor:", "All query words must appear in anchor text of links", "allinanchor:best practices security", core.CategoryContent, "allinanchor:word1 word2"},

	// Special
	{"cache:", "Shows Google's cached version of a page", "cache:example.com", core.CategorySpecial, "cache:example.com"},
	{"info:", "Displays information about a page", "info:example.com", core.CategorySpecial, "info:example.com"},
	{"define:", "Shows definitions of a word or phrase", "define:phishing", core.CategorySpecial, "define:word"},

	// Modifier
	{"-", "Excludes results containing the specified term", "python programming -snake", core.CategoryModifier, "-excludeword"},
	{`"..."`, "Searches for exact phrase match", `"machine learning engineer"`, core.CategoryModifier, `"exact phrase"`},
	{"*", "Wildcard for any word or phrase", `"best * framework 2024"`, core.CategoryModifier, `"word * word"`},
	{"+", "Forces inclusion of common words Google might ignore", "+the +best practices", core.CategoryModifier, "+word"},

	// Logic
	{"OR", "Searches for either term (use uppercase OR)", "javascript OR typescript tutorial", core.CategoryLogic, "term1 OR term2"},
	{"AND", "Searches for both terms (implicit by default)", "security AND encryption", core.CategoryLogic, "term1 AND term2"},
	{"|", "Alternative OR operator using pipe symbol", "react | vue | angular", core.CategoryLogic, "term1 | term2"},

	// Range
	{"..", "Searches within a number range", "laptop $500..$1000", core.CategoryRange, "number1..number2"},
	{"AROUND(n)", "Finds words within n words of each other", "security AROUND(3) breach", core.CategoryRange, "word1 AROUND(5) word2"},

	// Security
	{`intitle:"index of"`, "Finds directory listings that expose files", `intitle:"index of" "backup"`, core.CategorySecurity, `intitle:"index of" folder`},
	{`inurl:"/admin"`, "Finds admin panels and login pages", `inurl:"/admin" intitle:login`, core.CategorySecurity, `inurl:"/admin"`},
	{`inurl:"wp-admin"`, "Finds WordPress admin pages", `inurl:"wp-admin" inurl:"wp-login"`, core.CategorySecurity, `inurl:"wp-admin"`},
	{`inurl:"/phpmyadmin"`, "Finds exposed phpMyAdmin installations", `inurl:"/phpmyadmin" intitle:"phpMyAdmin"`, core.CategorySecurity, `inurl:"/phpmyadmin"`},
	{"filetype:env", "Finds exposed environment configuration files", `filetype:env "DB_PASSWORD"`, core.CategorySecurity, "filetype:env"},
	{"filetype:log", "Finds exposed log files that may contain sensitive data", `filetype:log inurl:"/logs/"`, core.CategorySecurity, "filetype:log"},
	{`intext:"sql syntax"`, "Finds pages with SQL errors that may indicate vulnerabilities", `intext:"sql syntax near" OR intext:"syntax error has occurred"`, core.CategorySecurity, `intext:"error message"`},
	{`intitle:"webcam"`, "Finds exposed webcams and surveillance systems", `intitle:"webcam 7" OR intitle:"network camera"`, core.CategorySecurity, `intitle:"webcam"`},
}

// Builtin returns fresh copies of the built-in operators in display order,
// with IDs and positions assigned.
func Builtin() []*core.Operator {
	ops := make([]*core.Operator, len(builtin))
	for i, e := range builtin {
		op := core.NewOperator(e.token, e.description, e.example, e.category, e.usage)
		op.Position = i + 1
		ops[i] = op
	}
	return ops
}
