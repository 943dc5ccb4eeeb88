package grading

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func wordsOf(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestCoverLetterVariants(t *testing.T) {
	assert.Equal(t, 0.0, NoCoverLetter().Score())
	assert.Equal(t, 22.0, UploadedCoverLetter("resume.pdf").Score())

	written := WrittenCoverLetter(wordsOf(300))
	assert.Equal(t, 300, written.WordCount)
	assert.Equal(t, 20.0, written.Score())
}

func TestWrittenCoverLetterLadder(t *testing.T) {
	cases := []struct {
		words int
		score float64
	}{
		{0, 0},
		{1, 5},
		{99, 5},
		{100, 10},
		{199, 10},
		{200, 15},
		{299, 15},
		{300, 20},
		{499, 20},
		{500, 25},
		{750, 25},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.score, WrittenCoverLetter(wordsOf(tc.words)).Score(), "words=%d", tc.words)
	}
}

func TestWrittenCoverLetterScoreMonotonic(t *testing.T) {
	previous := 0.0
	for words := 0; words <= 600; words += 10 {
		score := WrittenCoverLetter(wordsOf(words)).Score()
		assert.GreaterOrEqual(t, score, previous, "words=%d", words)
		previous = score
	}
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \t\n  "))
	assert.Equal(t, 3, CountWords("  one\ttwo\n\nthree  "))
}

func TestUploadedCoverLetterCarriesNoContent(t *testing.T) {
	letter := UploadedCoverLetter("letter.docx")

	assert.Equal(t, CoverLetterUploaded, letter.Type)
	assert.Equal(t, "letter.docx", letter.FileName)
	assert.Empty(t, letter.Content)
	assert.Zero(t, letter.WordCount)
}
