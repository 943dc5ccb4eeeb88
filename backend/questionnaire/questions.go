package questionnaire

// StreamWeights is an option's contribution to each stream accumulator.
type StreamWeights struct {
	DataEngineering int `json:"dataEngineering,omitempty"`
	AIML            int `json:"aiMl,omitempty"`
	BIReporting     int `json:"biReporting,omitempty"`
	EntryLevel      int `json:"entryLevel,omitempty"`
}

type Option struct {
	Text    string        `json:"text"`
	Weights StreamWeights `json:"streamWeights"`
}

type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"question"`
	Options []Option `json:"options"`
}

// Bank is the career questionnaire: 8 questions, each option pre-annotated
// with the stream weights it contributes.
var Bank = []Question{
	{
		ID:   1,
		Text: "What type of data work excites you the most?",
		Options: []Option{
			{Text: "Analyzing data to find insights and patterns", Weights: StreamWeights{BIReporting: 3, AIML: 1}},
			{Text: "Building systems that process and move data", Weights: StreamWeights{DataEngineering: 3, AIML: 1}},
			{Text: "Creating predictive models and algorithms", Weights: StreamWeights{AIML: 3, DataEngineering: 1}},
			{Text: "Creating visualizations and dashboards", Weights: StreamWeights{BIReporting: 3, EntryLevel: 1}},
		},
	},
	{
		ID:   2,
		Text: "How do you prefer to solve problems?",
		Options: []Option{
			{Text: "Breaking down into smaller technical components", Weights: StreamWeights{DataEngineering: 2, AIML: 2}},
			{Text: "Understanding business context first", Weights: StreamWeights{BIReporting: 3, EntryLevel: 1}},
			{Text: "Experimenting with different approaches", Weights: StreamWeights{AIML: 3, DataEngineering: 1}},
			{Text: "Following established best practices", Weights: StreamWeights{EntryLevel: 2, BIReporting: 2}},
		},
	},
	{
		ID:   3,
		Text: "Which tools/technologies interest you most?",
		Options: []Option{
			{Text: "SQL, dbt, and data warehousing tools", Weights: StreamWeights{DataEngineering: 2, BIReporting: 2}},
			{Text: "Python, TensorFlow, PyTorch", Weights: StreamWeights{AIML: 4}},
			{Text: "Power BI, Tableau, Excel", Weights: StreamWeights{BIReporting: 3, EntryLevel: 1}},
			{Text: "Cloud platforms (AWS, GCP, Azure)", Weights: StreamWeights{DataEngineering: 3, AIML: 1}},
		},
	},
	{
		ID:   4,
		Text: "What's your preferred work style?",
		Options: []Option{
			{Text: "Deep technical work with minimal meetings", Weights: StreamWeights{DataEngineering: 2, AIML: 2}},
			{Text: "Collaborating closely with business teams", Weights: StreamWeights{BIReporting: 3, EntryLevel: 1}},
			{Text: "Research and experimentation focused", Weights: StreamWeights{AIML: 4}},
			{Text: "Structured work with clear deliverables", Weights: StreamWeights{EntryLevel: 2, BIReporting: 2}},
		},
	},
	{
		ID:   5,
		Text: "What outcome do you find most satisfying?",
		Options: []Option{
			{Text: "Seeing a dashboard drive business decisions", Weights: StreamWeights{BIReporting: 4}},
			{Text: "Building a reliable data pipeline that runs 24/7", Weights: StreamWeights{DataEngineering: 4}},
			{Text: "Training a model that makes accurate predictions", Weights: StreamWeights{AIML: 4}},
			{Text: "Delivering clean, validated data to stakeholders", Weights: StreamWeights{EntryLevel: 2, BIReporting: 2}},
		},
	},
	{
		ID:   6,
		Text: "What drives your learning and professional growth?",
		Options: []Option{
			{Text: "Curiosity about how things work under the hood", Weights: StreamWeights{DataEngineering: 3, AIML: 1}},
			{Text: "Desire to make measurable business impact", Weights: StreamWeights{BIReporting: 3, EntryLevel: 1}},
			{Text: "Mastering complex algorithms and math", Weights: StreamWeights{AIML: 4}},
			{Text: "Building expertise in industry best practices", Weights: StreamWeights{EntryLevel: 2, BIReporting: 2}},
		},
	},
	{
		ID:   7,
		Text: "Which work environment energizes you most?",
		Options: []Option{
			{Text: "Fast-paced startup with lots of ownership", Weights: StreamWeights{DataEngineering: 2, AIML: 2}},
			{Text: "Established company with structured growth", Weights: StreamWeights{EntryLevel: 2, BIReporting: 2}},
			{Text: "Research-oriented with cutting-edge tech", Weights: StreamWeights{AIML: 4}},
			{Text: "Consulting/agency with diverse projects", Weights: StreamWeights{BIReporting: 2, EntryLevel: 2}},
		},
	},
	{
		ID:   8,
		Text: "How do you approach complex problems?",
		Options: []Option{
			{Text: "Analytically - gather data, test hypotheses", Weights: StreamWeights{AIML: 2, BIReporting: 2}},
			{Text: "Systematically - design solution architecture first", Weights: StreamWeights{DataEngineering: 4}},
			{Text: "User-centric - focus on end-user needs", Weights: StreamWeights{BIReporting: 3, EntryLevel: 1}},
			{Text: "Collaboratively - discuss with team members", Weights: StreamWeights{EntryLevel: 2, BIReporting: 2}},
		},
	},
}

// QuestionByID finds a question in the bank.
func QuestionByID(id int) (Question, bool) {
	for _, q := range Bank {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
