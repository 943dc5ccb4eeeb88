package questionnaire

import (
	"project/backend/roles"
)

// StreamScores are the four career-stream affinity accumulators.
type StreamScores struct {
	DataEngineering int `json:"dataEngineering"`
	AIML            int `json:"aiMl"`
	BIReporting     int `json:"biReporting"`
	EntryLevel      int `json:"entryLevel"`
}

// Score returns the accumulator for the given stream.
func (s StreamScores) Score(stream roles.Stream) int {
	switch stream {
	case roles.StreamDataEngineering:
		return s.DataEngineering
	case roles.StreamAIML:
		return s.AIML
	case roles.StreamBIReporting:
		return s.BIReporting
	case roles.StreamEntryLevel:
		return s.EntryLevel
	}
	return 0
}

// Response is a completed (or in-progress) questionnaire. StreamScores is
// always derived from Answers, never set directly.
type Response struct {
	Answers      map[int]int  `json:"answers"`
	StreamScores StreamScores `json:"streamScores"`
	CompletedAt  string       `json:"completedAt,omitempty"`
}

// NewResponse derives the stream scores for a set of answers.
func NewResponse(answers map[int]int) Response {
	return Response{
		Answers:      answers,
		StreamScores: CalculateStreamScores(answers),
	}
}

// Complete reports whether every question in the bank has a valid answer.
func (r Response) Complete() bool {
	for _, q := range Bank {
		idx, ok := r.Answers[q.ID]
		if !ok || idx < 0 || idx >= len(q.Options) {
			return false
		}
	}
	return true
}

// CalculateStreamScores folds questionID -> optionIndex answers into the four
// stream accumulators. Unknown questions and out-of-range option indexes
// contribute nothing.
func CalculateStreamScores(answers map[int]int) StreamScores {
	var scores StreamScores
	for questionID, optionIndex := range answers {
		question, ok := QuestionByID(questionID)
		if !ok || optionIndex < 0 || optionIndex >= len(question.Options) {
			continue
		}
		weights := question.Options[optionIndex].Weights
		scores.DataEngineering += weights.DataEngineering
		scores.AIML += weights.AIML
		scores.BIReporting += weights.BIReporting
		scores.EntryLevel += weights.EntryLevel
	}
	return scores
}

// TopStream picks the highest-scoring stream. Ties resolve to the first
// stream in canonical order.
func TopStream(scores StreamScores) roles.Stream {
	top := roles.StreamOrder[0]
	best := scores.Score(top)
	for _, stream := range roles.StreamOrder[1:] {
		if scores.Score(stream) > best {
			top = stream
			best = scores.Score(stream)
		}
	}
	return top
}
