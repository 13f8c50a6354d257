package rssfeeds

import (
	"regexp"
	"strings"
)

// Boilerplate that feeds prepend or append to item titles. Stripped before
// tokenization so site names don't pollute the dictionary.
var titleNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`東洋経済オンライン`),
	regexp.MustCompile(`ヘッドラインニュース`),
	regexp.MustCompile(`Yahooニュース`),
	regexp.MustCompile(`(?i)\s*\|\s*YouTube.*$`),
	regexp.MustCompile(`\s*\|\s*$`),
	regexp.MustCompile(`\s*-\s*$`),
	regexp.MustCompile(`^\d{4}年\d{1,2}月\d{1,2}日の.*`),
}

// CleanTitle removes known site boilerplate from an article title.
func CleanTitle(title string) string {
	cleaned := title
	for _, pattern := range titleNoisePatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(cleaned)
}
