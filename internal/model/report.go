package model

import "time"

// RunReport summarises one monitoring run. Published to Redis after every
// run and logged by the orchestrator.
type RunReport struct {
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`

	JobsChecked       int `json:"jobsChecked"`
	JobsClosed        int `json:"jobsClosed"`
	JobsClassified    int `json:"jobsClassified"`
	RepostsDetected   int `json:"repostsDetected"`
	CompaniesAssessed int `json:"companiesAssessed"`
	CompaniesFlagged  int `json:"companiesFlagged"` // yellow or red
	CheckErrors       int `json:"checkErrors"`
}
