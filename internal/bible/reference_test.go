package bible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryParseBookName(t *testing.T) {
	t.Run("extracts book from standard reference", func(t *testing.T) {
		book, err := TryParseBookName("Genesis 1:1")
		require.NoError(t, err)
		assert.Equal(t, "Genesis", book)
	})

	t.Run("extracts numbered book", func(t *testing.T) {
		book, err := TryParseBookName("2 Timothy 3:16-17")
		require.NoError(t, err)
		assert.Equal(t, "2 Timothy", book)
	})

	t.Run("normalizes Psalm to Psalms", func(t *testing.T) {
		book, err := TryParseBookName("Psalm 119:105")
		require.NoError(t, err)
		assert.Equal(t, "Psalms", book)

		book, err = TryParseBookName("psalm 23:1")
		require.NoError(t, err)
		assert.Equal(t, "Psalms", book)
	})

	t.Run("extracts single-chapter book", func(t *testing.T) {
		book, err := TryParseBookName("Jude 24-25")
		require.NoError(t, err)
		assert.Equal(t, "Jude", book)
	})

	t.Run("strips invisible formatting characters", func(t *testing.T) {
		book, err := TryParseBookName("\u200BJohn 3:16")
		require.NoError(t, err)
		assert.Equal(t, "John", book)

		book, err = TryParseBookName("\uFEFF1 Peter 5:7")
		require.NoError(t, err)
		assert.Equal(t, "1 Peter", book)
	})

	t.Run("fails without a space", func(t *testing.T) {
		_, err := TryParseBookName("Genesis1:1")
		assert.ErrorIs(t, err, ErrNoSpace)
	})

	t.Run("fails on empty book name", func(t *testing.T) {
		_, err := TryParseBookName(" 3:16")
		assert.ErrorIs(t, err, ErrEmptyBookName)
	})
}

func TestParseBookName(t *testing.T) {
	t.Run("returns ok for valid references", func(t *testing.T) {
		book, ok := ParseBookName("Romans 8:28")
		assert.True(t, ok)
		assert.Equal(t, "Romans", book)
	})

	t.Run("returns empty and not ok for invalid references", func(t *testing.T) {
		book, ok := ParseBookName("invalid")
		assert.False(t, ok)
		assert.Equal(t, "", book)
	})

	t.Run("never panics on garbage", func(t *testing.T) {
		for _, ref := range []string{"", " ", ":", "-", "\x00\x01", "1:1-"} {
			assert.NotPanics(t, func() { ParseBookName(ref) })
		}
	})
}

func TestTryCountVerses(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		want      int64
	}{
		{"single verse", "Genesis 1:1", 1},
		{"simple range", "Genesis 1:1-5", 5},
		{"two-verse range", "2 Timothy 3:16-17", 2},
		{"letter suffix on single verse", "Proverbs 12:4a", 1},
		{"letter suffix inside range", "Colossians 1:9a-12", 4},
		{"letter suffix on range end", "Isaiah 53:4-6b", 3},
		{"single-chapter book verse", "Jude 24", 1},
		{"single-chapter book range", "Jude 24-25", 2},
		{"single-chapter numbered book", "2 John 9-11", 3},
		{"obadiah without colon", "Obadiah 21", 1},
		{"philemon without colon", "Philemon 4-7", 4},
		{"range with spaces", "John 3:16 - 18", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TryCountVerses(tt.reference)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("fails without colon or space", func(t *testing.T) {
		_, err := TryCountVerses("Genesis")
		assert.ErrorIs(t, err, ErrNoColonOrSpace)
	})

	t.Run("fails without colon for multi-chapter book", func(t *testing.T) {
		_, err := TryCountVerses("Romans 8")
		assert.ErrorIs(t, err, ErrNoColon)
	})

	t.Run("fails on descending range", func(t *testing.T) {
		_, err := TryCountVerses("John 3:16-15")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("fails on non-numeric range bound", func(t *testing.T) {
		_, err := TryCountVerses("John 3:a-5")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("fails on non-numeric verse", func(t *testing.T) {
		_, err := TryCountVerses("John 3:x")
		assert.ErrorIs(t, err, ErrInvalidVerse)
	})
}

func TestBidiMarksAreTransparent(t *testing.T) {
	// Left-to-right override and pop marks wrapped around the numbers, the
	// way some mobile keyboards paste them.
	ref := "Psalm \u202D51\u202C:\u202D3"

	book, err := TryParseBookName(ref)
	require.NoError(t, err)
	assert.Equal(t, "Psalms", book)

	count, err := TryCountVerses(ref)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCountVerses(t *testing.T) {
	t.Run("passes through valid counts", func(t *testing.T) {
		assert.Equal(t, int64(5), CountVerses("Genesis 1:1-5"))
	})

	t.Run("treats unparsable references as one verse", func(t *testing.T) {
		assert.Equal(t, int64(1), CountVerses("Romans 8"))
		assert.Equal(t, int64(1), CountVerses("garbage"))
		assert.Equal(t, int64(1), CountVerses(""))
	})

	t.Run("is deterministic", func(t *testing.T) {
		for _, ref := range []string{"Genesis 1:1-5", "Jude 24-25", "bad input"} {
			first := CountVerses(ref)
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, CountVerses(ref))
			}
		}
	})
}

func TestParseVerseNumber(t *testing.T) {
	t.Run("parses plain numbers", func(t *testing.T) {
		n, ok := parseVerseNumber("16")
		assert.True(t, ok)
		assert.Equal(t, int64(16), n)
	})

	t.Run("drops letter suffixes", func(t *testing.T) {
		n, ok := parseVerseNumber("9a")
		assert.True(t, ok)
		assert.Equal(t, int64(9), n)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, ok := parseVerseNumber("a9")
		assert.False(t, ok)

		_, ok = parseVerseNumber("")
		assert.False(t, ok)
	})
}
