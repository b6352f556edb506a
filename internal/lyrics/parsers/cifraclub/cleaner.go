package cifraclub

import (
	"regexp"
	"strings"
)

var (
	// non-breaking spaces would break the column math downstream
	nbspReplacer = strings.NewReplacer(" ", " ", "\t", "        ")

	excessiveBreaksRegex = regexp.MustCompile(`\n{3,}`)
	trailingSpaceRegex   = regexp.MustCompile(`[ ]+\n`)
)

// cleanSheetText normalizes the extracted sheet: newline style, exotic
// whitespace and runs of blank lines. Column alignment inside each line
// is left strictly alone.
func cleanSheetText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = nbspReplacer.Replace(text)
	text = trailingSpaceRegex.ReplaceAllString(text, "\n")
	text = excessiveBreaksRegex.ReplaceAllString(text, "\n\n")
	return strings.Trim(text, "\n")
}
