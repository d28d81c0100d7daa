package catalog

// Template is a ready-made dork for a common search.
type Template struct {
	Label string
	Query string
}

var templates = []Template{
	{Label: "Login Pages", Query: "site:example.com inurl:login"},
	{Label: "PDF Files", Query: `filetype:pdf "confidential"`},
	{Label: "Excel Files", Query: `filetype:xls OR filetype:xlsx "financial"`},
	{Label: "Directory Listing", Query: `intitle:"index of" "parent directory"`},
	{Label: "Config Files", Query: "filetype:conf OR filetype:config OR filetype:cfg"},
	{Label: "Password Files", Query: "filetype:txt intext:password"},
}

var examples = []string{
	"Find PDF resumes for senior developers from 2024",
	"Find login pages on example.com",
	"Find Excel files with financial data",
	"Find admin panels on github.com",
	"Find exposed database backups",
}

// Templates returns the quick templates.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Examples returns sample natural-language requests.
func Examples() []string {
	out := make([]string, len(examples))
	copy(out, examples)
	return out
}
