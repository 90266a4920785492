// Package prose turns counts and lists into the short sentences written at the
// top of generated worksheets.
package prose

import (
	"fmt"
	"strconv"
	"strings"
)

var numberWords = []string{
	"one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten",
}

// ListToSentence joins items into a sentence fragment: "A", "A and B",
// "A, B, and C" (or "A, B and C" without the Oxford comma).
func ListToSentence(items []string, oxfordComma bool) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}

	head := strings.Join(items[:len(items)-1], ", ")
	last := items[len(items)-1]
	if oxfordComma {
		return head + ", and " + last
	}
	return head + " and " + last
}

// NumberOfTablesNote describes how many tables a worksheet holds. Counts up to
// ten are spelled out.
func NumberOfTablesNote(n int) string {
	word := strconv.Itoa(n)
	if n >= 1 && n <= len(numberWords) {
		word = numberWords[n-1]
	}

	if n == 1 {
		return fmt.Sprintf("This worksheet contains %s table.", word)
	}
	return fmt.Sprintf("This worksheet contains %s tables, stacked vertically.", word)
}

// MissingDataNote names the columns that contain missing values.
func MissingDataNote(columns []string) string {
	verb := " column is"
	if len(columns) > 1 {
		verb = " columns are"
	}
	return fmt.Sprintf("The %s%s missing data.", ListToSentence(columns, true), verb)
}
