// header.go
package nursepy

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
)

// HeaderAnalysis describes what the first row of a CSV file turned out to be.
type HeaderAnalysis struct {
	Headers        []string // cleaned column names
	FirstRowIsData bool     // whether the first row holds data, not names
	FirstDataRow   []string // the first row as read
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}\.\d+$`),
}

// AnalyzeHeaders inspects the first CSV row and decides whether it names the
// columns or already holds data. Generated or cleaned names come back
// deduplicated and lowercased.
func AnalyzeHeaders(firstRow []string) *HeaderAnalysis {
	if len(firstRow) == 0 {
		return nil
	}

	result := &HeaderAnalysis{
		Headers:      make([]string, len(firstRow)),
		FirstDataRow: firstRow,
	}

	headerLikeCount := 0
	for _, field := range firstRow {
		if isLikelyHeader(field) {
			headerLikeCount++
		}
	}

	// A strict majority of name-like fields makes a header row; ties count
	// as data so half-numeric first rows are never swallowed.
	if float64(headerLikeCount)/float64(len(firstRow)) > 0.5 {
		for i, header := range firstRow {
			result.Headers[i] = cleanHeaderName(header, i)
		}
	} else {
		result.FirstRowIsData = true
		for i := range firstRow {
			result.Headers[i] = generateColumnName(i)
		}
	}

	result.Headers = ValidateHeaders(result.Headers)
	return result
}

// isLikelyHeader reports whether the text looks like a column name rather
// than a data value. Numbers and dates never qualify.
func isLikelyHeader(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return false
	}
	for _, pattern := range datePatterns {
		if pattern.MatchString(text) {
			return false
		}
	}

	letters := 0
	digits := 0
	specials := 0
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		case unicode.IsSpace(r):
		default:
			specials++
		}
	}

	totalChars := letters + digits + specials
	if totalChars == 0 {
		return false
	}
	// Mostly letters means a name; phone numbers and ids fall through here.
	return letters > 0 && float64(letters)/float64(totalChars) >= 0.3
}

func generateColumnName(index int) string {
	return fmt.Sprintf("column_%d", index+1)
}

// ValidateHeaders suffixes duplicate names with a counter so every column
// name is unique.
func ValidateHeaders(headers []string) []string {
	seen := map[string]int{}
	result := make([]string, len(headers))

	for i, header := range headers {
		originalHeader := header
		counter := 1
		for {
			if count, exists := seen[header]; exists {
				header = fmt.Sprintf("%s_%d", originalHeader, counter)
				counter++
			} else {
				seen[header] = count + 1
				break
			}
		}
		result[i] = header
	}
	return result
}

var nonAlnum = regexp.MustCompile("[^a-zA-Z0-9]+")

// replaceSpecialSymbols transliterates the name to ASCII and squashes every
// run of other characters into a single underscore.
func replaceSpecialSymbols(input string) string {
	processed := unidecode.Unidecode(input)
	processed = nonAlnum.ReplaceAllString(processed, "_")
	processed = strings.ReplaceAll(processed, "__", "_")
	return strings.Trim(processed, "_")
}

// cleanHeaderName normalizes a raw header field into a safe column name,
// falling back to a generated name when nothing usable remains.
func cleanHeaderName(header string, index int) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return generateColumnName(index)
	}
	cleaned := replaceSpecialSymbols(header)
	if cleaned == "" || !isLikelyHeader(header) {
		return generateColumnName(index)
	}
	return strings.ToLower(cleaned)
}
