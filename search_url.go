package dorkit

import (
	"net/url"
	"strings"
)

const googleSearchURL = "https://www.google.com/search?q="

// SearchURL returns the Google search URL for query, with spaces encoded as
// %20. Blank queries yield "". Nothing is fetched.
func SearchURL(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}
	return googleSearchURL + strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}
