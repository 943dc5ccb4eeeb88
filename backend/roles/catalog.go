package roles

import "fmt"

// Stream is one of the four career tracks roles are grouped into.
type Stream string

const (
	StreamDataEngineering Stream = "data-engineering"
	StreamAIML            Stream = "ai-ml"
	StreamBIReporting     Stream = "bi-reporting"
	StreamEntryLevel      Stream = "entry-level"
)

// StreamOrder is the canonical ordering of streams. It is also the tie-break
// order when picking a recommended stream.
var StreamOrder = []Stream{
	StreamDataEngineering,
	StreamAIML,
	StreamBIReporting,
	StreamEntryLevel,
}

// StreamNames maps stream IDs to display names.
var StreamNames = map[Stream]string{
	StreamDataEngineering: "Data Engineering",
	StreamAIML:            "AI / Machine Learning",
	StreamBIReporting:     "BI & Reporting",
	StreamEntryLevel:      "Entry-Level Data Roles",
}

// SalaryRange is in lakhs INR per annum.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r SalaryRange) String() string {
	return fmt.Sprintf("₹%dL - ₹%dL", r.Min, r.Max)
}

// Thresholds are the minimum scores a role requires. A zero value means the
// role declares no requirement on that axis.
type Thresholds struct {
	SQL      float64 `json:"sql,omitempty"`
	Python   float64 `json:"python,omitempty"`
	DE       float64 `json:"de,omitempty"`
	Academic float64 `json:"academic,omitempty"`
}

// Declared returns how many thresholds the role actually requires.
func (t Thresholds) Declared() int {
	count := 0
	for _, v := range []float64{t.SQL, t.Python, t.DE, t.Academic} {
		if v > 0 {
			count++
		}
	}
	return count
}

type RoleDefinition struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Stream      Stream      `json:"stream"`
	Description string      `json:"description"`
	Salary      SalaryRange `json:"salaryRange"`
	Thresholds  Thresholds  `json:"thresholds"`
	Skills      []string    `json:"skills"`
}

// Catalog is the approved role list. It is reference data: changing an entry
// changes eligibility without touching the matcher.
var Catalog = []RoleDefinition{
	// Data Engineering
	{
		ID:          "junior-data-engineer",
		Title:       "Junior Data Engineer",
		Stream:      StreamDataEngineering,
		Description: "Build and maintain data pipelines, work with ETL processes",
		Salary:      SalaryRange{Min: 5, Max: 8},
		Thresholds:  Thresholds{DE: 70, SQL: 65, Python: 65},
		Skills:      []string{"SQL", "Python", "ETL", "Data Pipelines"},
	},
	{
		ID:          "analytics-engineer",
		Title:       "Analytics Engineer",
		Stream:      StreamDataEngineering,
		Description: "Bridge between data engineering and analytics teams",
		Salary:      SalaryRange{Min: 6, Max: 10},
		Thresholds:  Thresholds{DE: 70, SQL: 70, Python: 60},
		Skills:      []string{"dbt", "SQL", "Data Modeling", "Analytics"},
	},
	{
		ID:          "data-platform-engineer",
		Title:       "Data Platform Engineer",
		Stream:      StreamDataEngineering,
		Description: "Design and maintain data infrastructure and platforms",
		Salary:      SalaryRange{Min: 7, Max: 10},
		Thresholds:  Thresholds{DE: 75, SQL: 65, Python: 70},
		Skills:      []string{"Cloud Platforms", "Infrastructure", "Python", "SQL"},
	},
	{
		ID:          "data-systems-analyst",
		Title:       "Data Systems Analyst",
		Stream:      StreamDataEngineering,
		Description: "Analyze data systems requirements and design solutions",
		Salary:      SalaryRange{Min: 5, Max: 8},
		Thresholds:  Thresholds{DE: 65, SQL: 70, Python: 55},
		Skills:      []string{"Systems Analysis", "SQL", "Documentation", "Requirements"},
	},

	// AI / Machine Learning
	{
		ID:          "ml-engineer-junior",
		Title:       "Machine Learning Engineer (Junior)",
		Stream:      StreamAIML,
		Description: "Develop and deploy machine learning models",
		Salary:      SalaryRange{Min: 6, Max: 10},
		Thresholds:  Thresholds{Python: 75, DE: 65, SQL: 60},
		Skills:      []string{"Python", "ML Frameworks", "Statistics", "Model Deployment"},
	},
	{
		ID:          "ai-engineer",
		Title:       "AI Engineer",
		Stream:      StreamAIML,
		Description: "Build AI-powered applications and solutions",
		Salary:      SalaryRange{Min: 7, Max: 10},
		Thresholds:  Thresholds{Python: 80, DE: 65, SQL: 55},
		Skills:      []string{"Python", "Deep Learning", "AI Frameworks", "APIs"},
	},
	{
		ID:          "data-scientist-junior",
		Title:       "Data Scientist (Junior)",
		Stream:      StreamAIML,
		Description: "Extract insights from data using statistical methods",
		Salary:      SalaryRange{Min: 6, Max: 9},
		Thresholds:  Thresholds{Python: 75, SQL: 70, DE: 55},
		Skills:      []string{"Python", "Statistics", "ML", "Data Visualization"},
	},
	{
		ID:          "nlp-engineer-junior",
		Title:       "NLP Engineer (Junior)",
		Stream:      StreamAIML,
		Description: "Work on natural language processing applications",
		Salary:      SalaryRange{Min: 6, Max: 10},
		Thresholds:  Thresholds{Python: 80, DE: 60, SQL: 55},
		Skills:      []string{"Python", "NLP Libraries", "Text Processing", "ML"},
	},
	{
		ID:          "cv-engineer-junior",
		Title:       "Computer Vision Engineer (Junior)",
		Stream:      StreamAIML,
		Description: "Develop computer vision and image processing solutions",
		Salary:      SalaryRange{Min: 6, Max: 10},
		Thresholds:  Thresholds{Python: 80, DE: 55, SQL: 50},
		Skills:      []string{"Python", "OpenCV", "Deep Learning", "Image Processing"},
	},
	{
		ID:          "applied-ai-analyst",
		Title:       "Applied AI Analyst",
		Stream:      StreamAIML,
		Description: "Apply AI solutions to business problems",
		Salary:      SalaryRange{Min: 5, Max: 8},
		Thresholds:  Thresholds{Python: 70, SQL: 65, DE: 55},
		Skills:      []string{"Python", "AI Tools", "Business Analysis", "Reporting"},
	},

	// BI & Reporting
	{
		ID:          "bi-analyst",
		Title:       "Business Intelligence Analyst",
		Stream:      StreamBIReporting,
		Description: "Create dashboards and business reports",
		Salary:      SalaryRange{Min: 5, Max: 8},
		Thresholds:  Thresholds{SQL: 70},
		Skills:      []string{"SQL", "Power BI", "Tableau", "Excel"},
	},
	{
		ID:          "mis-reporting-analyst",
		Title:       "MIS / Reporting Analyst",
		Stream:      StreamBIReporting,
		Description: "Generate management information system reports",
		Salary:      SalaryRange{Min: 5, Max: 7},
		Thresholds:  Thresholds{SQL: 65},
		Skills:      []string{"SQL", "Excel", "Reporting Tools", "Data Analysis"},
	},
	{
		ID:          "sql-developer",
		Title:       "SQL Developer",
		Stream:      StreamBIReporting,
		Description: "Write and optimize SQL queries for data retrieval",
		Salary:      SalaryRange{Min: 5, Max: 8},
		Thresholds:  Thresholds{SQL: 75},
		Skills:      []string{"SQL", "Database Design", "Query Optimization", "Stored Procedures"},
	},
	{
		ID:          "data-quality-analyst",
		Title:       "Data Quality Analyst",
		Stream:      StreamBIReporting,
		Description: "Ensure data accuracy and consistency",
		Salary:      SalaryRange{Min: 5, Max: 7},
		Thresholds:  Thresholds{SQL: 70},
		Skills:      []string{"SQL", "Data Validation", "Quality Frameworks", "Documentation"},
	},
	{
		ID:          "analytics-engineer-junior",
		Title:       "Analytics Engineer (Junior)",
		Stream:      StreamBIReporting,
		Description: "Support analytics infrastructure and data models",
		Salary:      SalaryRange{Min: 5, Max: 8},
		Thresholds:  Thresholds{SQL: 70, Python: 55},
		Skills:      []string{"SQL", "dbt", "Data Modeling", "Python Basics"},
	},
}

// ByStream returns catalog roles belonging to the given stream, in catalog order.
func ByStream(stream Stream) []RoleDefinition {
	var result []RoleDefinition
	for _, role := range Catalog {
		if role.Stream == stream {
			result = append(result, role)
		}
	}
	return result
}

// ByID looks a role up by its catalog ID.
func ByID(id string) (RoleDefinition, bool) {
	for _, role := range Catalog {
		if role.ID == id {
			return role, true
		}
	}
	return RoleDefinition{}, false
}
