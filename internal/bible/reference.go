// Package bible parses free-text Scripture references ("2 Timothy 3:16",
// "Jude 24-25", "Colossians 1:9a-12") into canonical book names and verse
// counts. The fallback wrappers ParseBookName and CountVerses are registered
// as deterministic SQLite scalar functions, so they must never panic and must
// always return the same output for the same input.
package bible

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
)

// Parse failures, distinguishable with errors.Is. All are recoverable; the
// fallback wrappers map them to safe defaults.
var (
	ErrNoSpace        = errors.New("no space found")
	ErrEmptyBookName  = errors.New("no book name found")
	ErrNoColon        = errors.New("no colon found")
	ErrNoColonOrSpace = errors.New("no colon or space found")
	ErrInvalidRange   = errors.New("invalid verse range")
	ErrInvalidVerse   = errors.New("invalid verse number")
)

// normalizeBookName maps reference-form book names to their display names.
// "Psalm 119:105" cites the book displayed as "Psalms"; no other book needs
// an alias.
func normalizeBookName(name string) string {
	if strings.EqualFold(name, "Psalm") {
		return "Psalms"
	}
	return name
}

// TryParseBookName extracts the book name from a Scripture reference.
//
// Supports multi-chapter books ("Genesis 1:1"), numbered books
// ("2 Timothy 3:16"), and single-chapter books ("Jude 24"). Returns an error
// if the reference cannot be split into a book name and a locator.
func TryParseBookName(reference string) (string, error) {
	reference = stripFormatting(reference)

	pos := strings.LastIndex(reference, " ")
	if pos < 0 {
		return "", fmt.Errorf("%w in reference %q (cannot extract book name)", ErrNoSpace, reference)
	}

	name := strings.TrimSpace(reference[:pos])
	if name == "" {
		return "", fmt.Errorf("%w in reference %q", ErrEmptyBookName, reference)
	}
	return normalizeBookName(name), nil
}

// ParseBookName extracts the book name from a Scripture reference, returning
// ok=false for unparsable references. This is the error-swallowing form of
// TryParseBookName for use inside SQLite queries, where a failure must not
// abort a scan over thousands of rows.
func ParseBookName(reference string) (string, bool) {
	name, err := TryParseBookName(reference)
	if err != nil {
		log.Printf("Warning: %v", err)
		return "", false
	}
	return name, true
}

// TryCountVerses counts the verses a Scripture reference spans.
//
// Supports:
//   - single verses: "Genesis 1:1" → 1
//   - simple ranges: "Genesis 1:1-5" → 5
//   - verse-part letter suffixes (stripped): "Proverbs 12:4a" → 1,
//     "Colossians 1:9a-12" → 4
//   - single-chapter books without a colon: "Jude 24-25" → 2
//
// Returns an error if the reference cannot be parsed.
func TryCountVerses(reference string) (int64, error) {
	reference = stripFormatting(reference)

	// The verse-or-range portion is everything after the last colon. Without
	// a colon the reference is only valid for a single-chapter book, whose
	// citations omit the chapter number.
	var versePart string
	if pos := strings.LastIndex(reference, ":"); pos >= 0 {
		versePart = reference[pos+1:]
	} else {
		spacePos := strings.LastIndex(reference, " ")
		if spacePos < 0 {
			return 0, fmt.Errorf("%w in reference %q", ErrNoColonOrSpace, reference)
		}
		if !IsSingleChapterBook(reference[:spacePos]) {
			return 0, fmt.Errorf("%w in reference %q (not a single-chapter book)", ErrNoColon, reference)
		}
		versePart = reference[spacePos+1:]
	}

	versePart = strings.TrimSpace(versePart)

	if hyphen := strings.Index(versePart, "-"); hyphen >= 0 {
		start, startOK := parseVerseNumber(strings.TrimSpace(versePart[:hyphen]))
		end, endOK := parseVerseNumber(strings.TrimSpace(versePart[hyphen+1:]))
		if !startOK || !endOK || end < start {
			return 0, fmt.Errorf("%w: could not parse %q in reference %q", ErrInvalidRange, versePart, reference)
		}
		return end - start + 1, nil
	}

	if _, ok := parseVerseNumber(versePart); !ok {
		return 0, fmt.Errorf("%w: could not parse %q in reference %q", ErrInvalidVerse, versePart, reference)
	}
	return 1, nil
}

// CountVerses counts the verses a Scripture reference spans, treating
// unparsable references as a single verse. This is the error-swallowing form
// of TryCountVerses for use inside SQLite queries.
func CountVerses(reference string) int64 {
	count, err := TryCountVerses(reference)
	if err != nil {
		log.Printf("Warning: %v, treating as 1 verse", err)
		return 1
	}
	return count
}

// parseVerseNumber parses a verse number from its maximal leading run of
// ASCII digits, dropping letter suffixes some translations append to mark
// partial verses ("4a" → 4).
func parseVerseNumber(s string) (int64, bool) {
	digits := s
	for i, r := range s {
		if r < '0' || r > '9' {
			digits = s[:i]
			break
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
