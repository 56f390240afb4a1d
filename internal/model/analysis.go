package model

// QuestionAnalysis is the result of running the inspection question bank
// past the analysis model. Cached is true when the bundled analysis was
// served instead of a live call.
type QuestionAnalysis struct {
	Analysis    string `json:"analysis"`
	Model       string `json:"model"`
	GeneratedAt string `json:"generatedAt"`
	Cached      bool   `json:"cached"`
}
