package resume

import "strings"

// Resume is the document sent to and returned by the backend.
type Resume struct {
	ID                  string       `json:"id,omitempty"`
	Name                string       `json:"nome"`
	Residence           string       `json:"residencia"`
	BirthDate           string       `json:"dataNascimento"`
	EducationLevel      string       `json:"nivelEscolaridade"`
	UniversityName      string       `json:"nomeUniversidade,omitempty"`
	DesiredRole         string       `json:"cargoDesejado,omitempty"`
	ExpectedSalary      float64      `json:"pretensaoSalarial,omitempty"`
	RelocationAvailable bool         `json:"disponibilidadeMudanca"`
	TravelAvailable     bool         `json:"disponibilidadeViagem"`
	Experiences         []Experience `json:"experiencias,omitempty"`
	Courses             []Course     `json:"cursosComplementares,omitempty"`
	Languages           []Language   `json:"idiomas,omitempty"`
	Skills              []Skill      `json:"skills"`
}

// FromResume turns a stored résumé back into an editable single-layout draft.
func FromResume(r *Resume) Draft {
	if r == nil {
		return Draft{}
	}

	d := Draft{
		Name:                r.Name,
		Residence:           r.Residence,
		BirthDate:           r.BirthDate,
		EducationLevel:      r.EducationLevel,
		UniversityName:      r.UniversityName,
		DesiredRole:         r.DesiredRole,
		ExpectedSalary:      r.ExpectedSalary,
		RelocationAvailable: r.RelocationAvailable,
		TravelAvailable:     r.TravelAvailable,
		Experiences:         r.Experiences,
		Courses:             r.Courses,
		Languages:           r.Languages,
		Skills:              r.Skills,
	}

	if date, err := ParseDate(r.BirthDate); err == nil {
		d.BirthDate = FormatDate(date)
	}

	return d.Clone()
}

// Label is a short human readable description used in pickers and logs.
func (r *Resume) Label() string {
	parts := []string{r.ID, strings.TrimSpace(r.Name)}
	if role := strings.TrimSpace(r.DesiredRole); role != "" {
		parts = append(parts, role)
	}
	return strings.Join(parts, " / ")
}
