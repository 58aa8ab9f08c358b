package resume

import (
	"strings"
	"time"
)

// Education levels offered by the form. Free text is accepted as well.
const (
	EducationElementaryIncomplete = "Fundamental Incompleto"
	EducationElementary           = "Fundamental Completo"
	EducationHighSchoolIncomplete = "Médio Incompleto"
	EducationHighSchool           = "Médio Completo"
	EducationTechnical            = "Técnico"
	EducationHigherIncomplete     = "Superior Incompleto"
	EducationHigherInProgress     = "Superior Cursando"
	EducationHigherComplete       = "Superior Completo"
	EducationPostgraduate         = "Pós-graduação"
	EducationMasters              = "Mestrado"
	EducationDoctorate            = "Doutorado"
)

// EducationLevels lists the suggested education levels in display order.
var EducationLevels = []string{
	EducationElementaryIncomplete,
	EducationElementary,
	EducationHighSchoolIncomplete,
	EducationHighSchool,
	EducationTechnical,
	EducationHigherIncomplete,
	EducationHigherInProgress,
	EducationHigherComplete,
	EducationPostgraduate,
	EducationMasters,
	EducationDoctorate,
}

// SkillLevels are the proficiency levels for skills.
var SkillLevels = []string{"Iniciante", "Intermediário", "Avançado", "Especialista"}

// LanguageLevels are the proficiency levels for languages.
var LanguageLevels = []string{"Básico", "Intermediário", "Avançado", "Fluente"}

// States are the Brazilian federative unit codes.
var States = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
	"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
	"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

var universityLevels = map[string]struct{}{
	"superior incompleto": {},
	"superior cursando":   {},
	"superior completo":   {},
}

// RequiresUniversity reports whether an education level is an in-progress or
// completed higher education level, which makes the university name mandatory.
func RequiresUniversity(level string) bool {
	normalized := strings.ToLower(strings.Join(strings.Fields(level), " "))
	normalized = strings.TrimPrefix(normalized, "ensino ")
	_, ok := universityLevels[normalized]
	return ok
}

// IsState reports whether code is a Brazilian state code.
func IsState(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, s := range States {
		if s == code {
			return true
		}
	}
	return false
}

const dateLayout = "2006-01-02"

var dateLayouts = []string{dateLayout, "2006-01-02T15:04:05", time.RFC3339}

// ParseDate parses a calendar date. Timestamps are accepted and truncated to
// their date part.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		t, err = time.Parse(layout, raw)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, err
}

// FormatDate renders a date the way the backend expects it.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
