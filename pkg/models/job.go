package models

// SubmitJobRequest contains fields for opening a new repair job
type SubmitJobRequest struct {
	RepoURL         string  `json:"repoUrl"`
	GitRef          string  `json:"gitRef"`
	TaskDescription *string `json:"taskDescription,omitempty"`
	FailingTest     *string `json:"failingTest,omitempty"`
}
