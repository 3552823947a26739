package bible

import "strings"

// OldTestament lists the 39 Old Testament book display names in canonical order.
var OldTestament = []string{
	"Genesis",
	"Exodus",
	"Leviticus",
	"Numbers",
	"Deuteronomy",
	"Joshua",
	"Judges",
	"Ruth",
	"1 Samuel",
	"2 Samuel",
	"1 Kings",
	"2 Kings",
	"1 Chronicles",
	"2 Chronicles",
	"Ezra",
	"Nehemiah",
	"Esther",
	"Job",
	"Psalms",
	"Proverbs",
	"Ecclesiastes",
	"Song of Solomon",
	"Isaiah",
	"Jeremiah",
	"Lamentations",
	"Ezekiel",
	"Daniel",
	"Hosea",
	"Joel",
	"Amos",
	"Obadiah",
	"Jonah",
	"Micah",
	"Nahum",
	"Habakkuk",
	"Zephaniah",
	"Haggai",
	"Zechariah",
	"Malachi",
}

// NewTestament lists the 27 New Testament book display names in canonical order.
var NewTestament = []string{
	"Matthew",
	"Mark",
	"Luke",
	"John",
	"Acts",
	"Romans",
	"1 Corinthians",
	"2 Corinthians",
	"Galatians",
	"Ephesians",
	"Philippians",
	"Colossians",
	"1 Thessalonians",
	"2 Thessalonians",
	"1 Timothy",
	"2 Timothy",
	"Titus",
	"Philemon",
	"Hebrews",
	"James",
	"1 Peter",
	"2 Peter",
	"1 John",
	"2 John",
	"3 John",
	"Jude",
	"Revelation",
}

// singleChapterBooks are the five books with exactly one chapter, whose
// citations omit the chapter number ("Jude 24-25").
var singleChapterBooks = []string{"Obadiah", "Philemon", "2 John", "3 John", "Jude"}

// AllBooks returns all 66 canonical book names, Old Testament first.
func AllBooks() []string {
	books := make([]string, 0, len(OldTestament)+len(NewTestament))
	books = append(books, OldTestament...)
	books = append(books, NewTestament...)
	return books
}

// IsSingleChapterBook reports whether name is one of the five single-chapter
// books. Matching is case-insensitive.
func IsSingleChapterBook(name string) bool {
	for _, book := range singleChapterBooks {
		if strings.EqualFold(name, book) {
			return true
		}
	}
	return false
}

// IsCanonicalBook reports whether name exactly matches one of the 66 canonical
// display names.
func IsCanonicalBook(name string) bool {
	for _, book := range OldTestament {
		if name == book {
			return true
		}
	}
	for _, book := range NewTestament {
		if name == book {
			return true
		}
	}
	return false
}
