package vagas

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
)

const (
	JobIDField      = "ID"
	JobCompanyField = "Company"

	titleNotAvailable = "title not available"
)

// Contract types.
const (
	ContractCLT        = "CLT"
	ContractPJ         = "PJ"
	ContractInternship = "ESTAGIO"
	ContractTemporary  = "TEMPORARIO"
)

// Work modes.
const (
	ModeOnSite = "PRESENCIAL"
	ModeRemote = "REMOTO"
	ModeHybrid = "HIBRIDO"
)

var contractLabels = map[string]string{
	ContractCLT:        "CLT",
	ContractPJ:         "PJ",
	ContractInternship: "Estágio",
	ContractTemporary:  "Temporário",
}

var modeLabels = map[string]string{
	ModeOnSite: "Presencial",
	ModeRemote: "Remoto",
	ModeHybrid: "Híbrido",
}

const notInformed = "Não informado"

type Jobs struct {
	Items []*Job `json:"items"`
}

type Job struct {
	ID           string   `json:"id,omitempty"`
	Heading      string   `json:"titulo,omitempty"`
	AltHeading   string   `json:"title,omitempty"`
	Company      string   `json:"empresa,omitempty"`
	Location     string   `json:"localizacao,omitempty"`
	City         string   `json:"cidade,omitempty"`
	State        string   `json:"estado,omitempty"`
	Salary       float64  `json:"salario,omitempty"`
	Mode         string   `json:"modalidade,omitempty"`
	ContractType string   `json:"tipoContrato,omitempty"`
	Level        string   `json:"nivelExperiencia,omitempty"`
	PublishedAt  string   `json:"dataPublicacao,omitempty"`
	Description  string   `json:"descricao,omitempty"`
	Requirements []string `json:"requisitos,omitempty"`
	Benefits     []string `json:"beneficios,omitempty"`
	Featured     bool     `json:"destaque,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// Title returns the posting title, falling back to the alternative field.
func (j *Job) Title() string {
	if t := strings.TrimSpace(j.Heading); t != "" {
		return t
	}
	if t := strings.TrimSpace(j.AltHeading); t != "" {
		return t
	}
	return titleNotAvailable
}

// Place returns the location text, built from city and state when absent.
func (j *Job) Place() string {
	if l := strings.TrimSpace(j.Location); l != "" {
		return l
	}

	parts := make([]string, 0, 2)
	for _, p := range []string{j.City, j.State} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return notInformed
	}
	return strings.Join(parts, ", ")
}

// ModeLabel returns the display label of the work mode.
func (j *Job) ModeLabel() string {
	return label(modeLabels, j.Mode)
}

// ContractLabel returns the display label of the contract type.
func (j *Job) ContractLabel() string {
	return label(contractLabels, j.ContractType)
}

func label(labels map[string]string, value string) string {
	if l, ok := labels[strings.ToUpper(strings.TrimSpace(value))]; ok {
		return l
	}
	if strings.TrimSpace(value) == "" {
		return notInformed
	}
	return value
}

func (j *Job) GetStringField(name string) string {
	switch name {
	case JobIDField:
		return j.ID
	case JobCompanyField:
		return j.Company
	default:
		return ""
	}
}

// GetJob returns a single job posting.
func (c *Client) GetJob(ctx context.Context, id string) (*Job, error) {
	var job Job
	err := c.do(ctx, call{
		operation: "get_job",
		method:    http.MethodGet,
		path:      []string{jobsPath, id},
	}, &job)
	if err != nil {
		return nil, err
	}

	return &job, nil
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) IDs() []string {
	ids := make([]string, 0, len(j.Items))
	for _, job := range j.Items {
		ids = append(ids, job.ID)
	}
	return ids
}

func (j *Jobs) FindByID(id string) *Job {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

// Exclude removes jobs whose field matches one of targets (case-insensitive)
// and returns the removed ids. Order of the remaining jobs is preserved.
func (j *Jobs) Exclude(name string, targets []string) []string {
	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			set[t] = struct{}{}
		}
	}

	var excluded []string
	kept := j.Items[:0]
	for _, job := range j.Items {
		if _, ok := set[strings.ToLower(strings.TrimSpace(job.GetStringField(name)))]; ok {
			excluded = append(excluded, job.ID)
			continue
		}
		kept = append(kept, job)
	}
	j.Items = kept

	return excluded
}

// ReportByCompany groups the jobs by company for a compact printout.
func (j *Jobs) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, job := range j.Items {
		key := strings.TrimSpace(job.Company)
		if key == "" {
			key = notInformed
		}
		report[key] = append(report[key], map[string]string{
			"id":       job.ID,
			"title":    job.Title(),
			"location": job.Place(),
			"salary":   FormatSalary(job.Salary),
			"mode":     job.ModeLabel(),
			"contract": job.ContractLabel(),
		})
	}
	return report
}

func (j *Jobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "vagas_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j); err != nil {
		return "", err
	}
	return file.Name(), nil
}
