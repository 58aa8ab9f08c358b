package store

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Application is a locally recorded job application.
type Application struct {
	JobID     string    `json:"jobId"`
	ResumeID  string    `json:"resumeId"`
	Title     string    `json:"title,omitempty"`
	Company   string    `json:"company,omitempty"`
	AppliedAt time.Time `json:"appliedAt"`
}

type Applications struct {
	Items []*Application `json:"items"`
}

// History is the JSON file of applications sent from this machine.
type History struct {
	path string
	mu   sync.Mutex
}

func NewHistory(path string) (*History, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("history path is required")
	}
	return &History{path: path}, nil
}

func (h *History) Path() string {
	return h.path
}

// Load returns every recorded application. A missing file is an empty history.
func (h *History) Load() (*Applications, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.load()
}

// Append records applications and writes the file back.
func (h *History) Append(items ...*Application) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	apps, err := h.load()
	if err != nil {
		return err
	}

	apps.Items = append(apps.Items, items...)
	if err := writeJSON(h.path, apps); err != nil {
		return fmt.Errorf("writing application history: %w", err)
	}

	return nil
}

// Has reports whether the job was already applied to with the résumé. An
// empty resumeID matches any résumé.
func (h *History) Has(jobID, resumeID string) (bool, error) {
	apps, err := h.Load()
	if err != nil {
		return false, err
	}

	return apps.Find(jobID, resumeID) != nil, nil
}

func (h *History) load() (*Applications, error) {
	apps := &Applications{}
	if err := readJSON(h.path, apps); err != nil {
		return nil, fmt.Errorf("reading application history: %w", err)
	}
	return apps, nil
}

func (a *Applications) Len() int {
	return len(a.Items)
}

func (a *Applications) Find(jobID, resumeID string) *Application {
	for _, app := range a.Items {
		if app.JobID != jobID {
			continue
		}
		if resumeID == "" || app.ResumeID == resumeID {
			return app
		}
	}
	return nil
}

// JobIDs returns the distinct job ids in the history.
func (a *Applications) JobIDs() []string {
	seen := make(map[string]struct{}, len(a.Items))
	ids := make([]string, 0, len(a.Items))
	for _, app := range a.Items {
		if _, ok := seen[app.JobID]; ok {
			continue
		}
		seen[app.JobID] = struct{}{}
		ids = append(ids, app.JobID)
	}
	return ids
}
