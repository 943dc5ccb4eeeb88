package questionnaire

import (
	"testing"

	"project/backend/roles"

	"github.com/stretchr/testify/assert"
)

func TestBankShape(t *testing.T) {
	assert.Len(t, Bank, 8)
	for i, question := range Bank {
		assert.Equal(t, i+1, question.ID)
		assert.NotEmpty(t, question.Text)
		assert.Len(t, question.Options, 4)
	}
}

func TestCalculateStreamScoresEmpty(t *testing.T) {
	scores := CalculateStreamScores(map[int]int{})

	assert.Equal(t, StreamScores{}, scores)
}

func TestCalculateStreamScoresSingleAnswer(t *testing.T) {
	// Question 3, option 1: Python/TensorFlow/PyTorch -> aiMl +4.
	scores := CalculateStreamScores(map[int]int{3: 1})

	assert.Equal(t, StreamScores{AIML: 4}, scores)
}

func TestCalculateStreamScoresFullFold(t *testing.T) {
	answers := map[int]int{}
	for _, question := range Bank {
		answers[question.ID] = 0
	}

	scores := CalculateStreamScores(answers)

	assert.Equal(t, StreamScores{
		DataEngineering: 11,
		AIML:            10,
		BIReporting:     11,
		EntryLevel:      0,
	}, scores)
}

func TestCalculateStreamScoresIgnoresInvalid(t *testing.T) {
	// Unknown question IDs and out-of-range option indexes contribute nothing.
	scores := CalculateStreamScores(map[int]int{99: 0, 1: 7, 2: -1})

	assert.Equal(t, StreamScores{}, scores)
}

func TestTopStream(t *testing.T) {
	assert.Equal(t, roles.StreamAIML, TopStream(StreamScores{AIML: 10, BIReporting: 8}))
	assert.Equal(t, roles.StreamEntryLevel, TopStream(StreamScores{EntryLevel: 3}))
}

func TestTopStreamTieBreak(t *testing.T) {
	// Ties resolve to the first stream in canonical order.
	assert.Equal(t, roles.StreamDataEngineering,
		TopStream(StreamScores{DataEngineering: 5, AIML: 5, BIReporting: 5, EntryLevel: 5}))
	assert.Equal(t, roles.StreamAIML,
		TopStream(StreamScores{AIML: 5, BIReporting: 5}))

	// All zero still yields the canonical first stream.
	assert.Equal(t, roles.StreamDataEngineering, TopStream(StreamScores{}))
}

func TestResponseComplete(t *testing.T) {
	answers := map[int]int{}
	for _, question := range Bank {
		answers[question.ID] = 1
	}
	assert.True(t, NewResponse(answers).Complete())

	delete(answers, 5)
	assert.False(t, NewResponse(answers).Complete())

	answers[5] = 9 // out of range
	assert.False(t, NewResponse(answers).Complete())
}

func TestNewResponseDerivesScores(t *testing.T) {
	response := NewResponse(map[int]int{5: 1})

	assert.Equal(t, StreamScores{DataEngineering: 4}, response.StreamScores)
}
