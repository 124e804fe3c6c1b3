package render

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/leetup/internal/catalog"
)

// listFixture covers every status marker plus an out-of-range level.
func listFixture() []catalog.Problem {
	return []catalog.Problem{
		{ID: 1, Title: "Two Sum", TitleSlug: "two-sum", Level: 1, Done: true},
		{ID: 2, Title: "Add Two Numbers", TitleSlug: "add-two-numbers", Level: 2, Starred: true},
		{ID: 23, Title: "Merge k Sorted Lists", TitleSlug: "merge-k-sorted-lists", Level: 3, Locked: true},
		{ID: 9999, Title: "Mystery", TitleSlug: "mystery", Level: 7},
	}
}

// assertGoldenList renders the fixture and compares against a golden
// file under testdata/golden. Regenerate with: go test ./internal/render -update
func assertGoldenList(t *testing.T, name string, opts Options) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, List(&buf, listFixture(), opts))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}

// TestList_GoldenPlain tests the uncolored listing byte-for-byte.
func TestList_GoldenPlain(t *testing.T) {
	assertGoldenList(t, "list_plain", Options{Color: false})
}

// TestList_GoldenColor tests the colored listing byte-for-byte, ANSI
// escapes included.
func TestList_GoldenColor(t *testing.T) {
	assertGoldenList(t, "list_color", Options{Color: true})
}

// TestLine_ColorCodes tests that color lands on the markers and the
// difficulty name only; the id and title stay plain.
func TestLine_ColorCodes(t *testing.T) {
	line := Line(catalog.Problem{ID: 1, Title: "Two Sum", Level: 1, Done: true}, Options{Color: true})

	assert.Contains(t, line, "\x1b[32m✔\x1b[0m")    // green done marker
	assert.Contains(t, line, "\x1b[32mEasy\x1b[0m") // green difficulty
	assert.Contains(t, line, "[ 1  ]")              // id uncolored
	assert.NotContains(t, line, "\x1b[32mTwo Sum")
}

// TestLine_UnknownLevel tests that a defective difficulty renders as
// UnknownLevel, uncolored even in color mode.
func TestLine_UnknownLevel(t *testing.T) {
	line := Line(catalog.Problem{ID: 9999, Title: "Mystery", Level: 7}, Options{Color: true})

	assert.Contains(t, line, "UnknownLevel")
	assert.NotContains(t, line, "\x1b[31mUnknownLevel")
	assert.NotContains(t, line, "\x1b[32mUnknownLevel")
	assert.NotContains(t, line, "\x1b[33mUnknownLevel")
}

// TestList_PreservesOrder tests that rendering never reorders.
func TestList_PreservesOrder(t *testing.T) {
	probs := []catalog.Problem{
		{ID: 3, Title: "C", Level: 1},
		{ID: 1, Title: "A", Level: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, List(&buf, probs, Options{}))

	out := buf.String()
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("C")), bytes.Index(buf.Bytes(), []byte("A")))
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("\n")))
}

// TestCenter tests id column centering, surplus space to the right.
func TestCenter(t *testing.T) {
	assert.Equal(t, " 1  ", center("1", 4))
	assert.Equal(t, " 23 ", center("23", 4))
	assert.Equal(t, "123 ", center("123", 4))
	assert.Equal(t, "9999", center("9999", 4))
	assert.Equal(t, "12345", center("12345", 4))
}
