package model

// Exam is the immutable-after-load aggregate of exam metadata and its
// ordered question list.
type Exam struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Author           string     `json:"author"`
	Version          string     `json:"version"`
	TotalQuestions   int        `json:"total_questions"`
	PassingScore     int        `json:"passing_score"`
	TimeLimitMinutes *int       `json:"time_limit,omitempty"`
	Questions        []Question `json:"questions"`
}

// ExamSummary is the exam metadata sent to clients without question bodies.
type ExamSummary struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Author           string `json:"author"`
	Version          string `json:"version"`
	TotalQuestions   int    `json:"total_questions"`
	PassingScore     int    `json:"passing_score"`
	TimeLimitMinutes *int   `json:"time_limit,omitempty"`
}

// Summary returns the exam's metadata view.
func (e *Exam) Summary() ExamSummary {
	return ExamSummary{
		Title:            e.Title,
		Description:      e.Description,
		Author:           e.Author,
		Version:          e.Version,
		TotalQuestions:   e.TotalQuestions,
		PassingScore:     e.PassingScore,
		TimeLimitMinutes: e.TimeLimitMinutes,
	}
}
