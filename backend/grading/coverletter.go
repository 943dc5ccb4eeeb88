package grading

import "strings"

type CoverLetterType string

const (
	CoverLetterNone     CoverLetterType = "none"
	CoverLetterUploaded CoverLetterType = "uploaded"
	CoverLetterWritten  CoverLetterType = "written"
)

// Score an uploaded file always gets. File content is never inspected.
const uploadedCoverLetterScore = 22

// CoverLetter is a tagged variant: exactly the fields of the active type are
// set. Use the constructors so an uploaded letter can't carry stale written
// content.
type CoverLetter struct {
	Type      CoverLetterType `json:"type"`
	FileName  string          `json:"fileName,omitempty"`
	Content   string          `json:"content,omitempty"`
	WordCount int             `json:"wordCount,omitempty"`
}

// NoCoverLetter is the absent variant.
func NoCoverLetter() CoverLetter {
	return CoverLetter{Type: CoverLetterNone}
}

// UploadedCoverLetter is the file-upload variant.
func UploadedCoverLetter(fileName string) CoverLetter {
	return CoverLetter{Type: CoverLetterUploaded, FileName: fileName}
}

// WrittenCoverLetter is the typed-in variant; the word count is derived from
// the content.
func WrittenCoverLetter(content string) CoverLetter {
	return CoverLetter{
		Type:      CoverLetterWritten,
		Content:   content,
		WordCount: CountWords(content),
	}
}

// CountWords counts whitespace-delimited tokens. Empty or whitespace-only
// text counts zero.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Score returns the cover letter contribution (0-25). Uploaded files get a
// flat score; written letters climb a word-count ladder.
func (cl CoverLetter) Score() float64 {
	switch cl.Type {
	case CoverLetterNone:
		return 0
	case CoverLetterUploaded:
		return uploadedCoverLetterScore
	case CoverLetterWritten:
		switch {
		case cl.WordCount >= 500:
			return 25
		case cl.WordCount >= 300:
			return 20
		case cl.WordCount >= 200:
			return 15
		case cl.WordCount >= 100:
			return 10
		case cl.WordCount > 0:
			return 5
		}
		return 0
	}
	return 0
}
