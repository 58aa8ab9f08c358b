package vagas

import (
	"context"
	"net/http"
)

const applyPath = "candidatar"

// Application is the backend record of a job application.
type Application struct {
	ID        string `json:"id,omitempty"`
	JobID     string `json:"vagaId,omitempty"`
	ResumeID  string `json:"curriculoId,omitempty"`
	Status    string `json:"status,omitempty"`
	AppliedAt string `json:"dataCandidatura,omitempty"`
}

type applyRequest struct {
	ResumeID string `json:"curriculoId"`
}

// Apply submits a résumé to a job posting. The call is retried like any other,
// so callers that must not apply twice need their own guard.
func (c *Client) Apply(ctx context.Context, jobID, resumeID string) (*Application, error) {
	var app Application
	err := c.do(ctx, call{
		operation: "apply",
		method:    http.MethodPost,
		path:      []string{jobsPath, jobID, applyPath},
		body:      applyRequest{ResumeID: resumeID},
	}, &app)
	if err != nil {
		return nil, err
	}

	if app.JobID == "" {
		app.JobID = jobID
	}
	if app.ResumeID == "" {
		app.ResumeID = resumeID
	}

	return &app, nil
}
