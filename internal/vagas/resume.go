package vagas

import (
	"context"
	"net/http"

	"github.com/spigell/vagas/internal/resume"
)

const (
	resumesPath    = "curriculos"
	resumeJobsPath = "vagas"
)

// CreateResume stores a new résumé and returns it with its assigned id.
func (c *Client) CreateResume(ctx context.Context, r *resume.Resume) (*resume.Resume, error) {
	var created resume.Resume
	err := c.do(ctx, call{
		operation: "create_resume",
		method:    http.MethodPost,
		path:      []string{resumesPath},
		body:      r,
	}, &created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) GetResume(ctx context.Context, id string) (*resume.Resume, error) {
	var r resume.Resume
	err := c.do(ctx, call{
		operation: "get_resume",
		method:    http.MethodGet,
		path:      []string{resumesPath, id},
	}, &r)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func (c *Client) UpdateResume(ctx context.Context, id string, r *resume.Resume) (*resume.Resume, error) {
	var updated resume.Resume
	err := c.do(ctx, call{
		operation: "update_resume",
		method:    http.MethodPut,
		path:      []string{resumesPath, id},
		body:      r,
	}, &updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteResume removes a résumé. The response body is ignored.
func (c *Client) DeleteResume(ctx context.Context, id string) error {
	return c.do(ctx, call{
		operation: "delete_resume",
		method:    http.MethodDelete,
		path:      []string{resumesPath, id},
	}, nil)
}

// RecommendedJobs lists the jobs the backend matched to a résumé.
func (c *Client) RecommendedJobs(ctx context.Context, id string) (*Jobs, error) {
	return c.jobs(ctx, "recommended_jobs", nil, resumesPath, id, resumeJobsPath)
}
