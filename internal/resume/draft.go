// Package resume holds the résumé draft model and decides whether a draft may
// be submitted to the backend.
package resume

// JSON keys used by the backend. They double as validation error keys.
const (
	FieldName           = "nome"
	FieldSurname        = "sobrenome"
	FieldCity           = "cidade"
	FieldState          = "estado"
	FieldResidence      = "residencia"
	FieldBirthDate      = "dataNascimento"
	FieldEducationLevel = "nivelEscolaridade"
	FieldUniversity     = "nomeUniversidade"
	FieldDesiredRole    = "cargoDesejado"
	FieldExpectedSalary = "pretensaoSalarial"
	FieldRelocation     = "disponibilidadeMudanca"
	FieldTravel         = "disponibilidadeViagem"
	FieldExperiences    = "experiencias"
	FieldCourses        = "cursosComplementares"
	FieldLanguages      = "idiomas"
	FieldSkills         = "skills"
)

// MaxCourses is the number of complementary courses a résumé may list.
const MaxCourses = 15

// Draft is the in-memory résumé being edited. Which of the name and residence
// fields are used depends on the validator Layout.
type Draft struct {
	Name                string       `json:"nome" validate:"notblank"`
	Surname             string       `json:"sobrenome,omitempty"`
	City                string       `json:"cidade,omitempty"`
	State               string       `json:"estado,omitempty"`
	Residence           string       `json:"residencia,omitempty"`
	BirthDate           string       `json:"dataNascimento"`
	EducationLevel      string       `json:"nivelEscolaridade" validate:"notblank"`
	UniversityName      string       `json:"nomeUniversidade,omitempty"`
	DesiredRole         string       `json:"cargoDesejado,omitempty"`
	ExpectedSalary      float64      `json:"pretensaoSalarial,omitempty" validate:"gte=0"`
	RelocationAvailable bool         `json:"disponibilidadeMudanca"`
	TravelAvailable     bool         `json:"disponibilidadeViagem"`
	Experiences         []Experience `json:"experiencias,omitempty"`
	Courses             []Course     `json:"cursosComplementares,omitempty" validate:"max=15,dive"`
	Languages           []Language   `json:"idiomas,omitempty"`
	Skills              []Skill      `json:"skills"`
}

// Experience is a single work experience entry.
type Experience struct {
	Role        string `json:"cargo"`
	Company     string `json:"empresa"`
	StartDate   string `json:"dataInicio"`
	EndDate     string `json:"dataFim,omitempty"`
	Current     bool   `json:"empregoAtual"`
	Description string `json:"descricao,omitempty"`
}

// Course is a complementary course.
type Course struct {
	Name        string `json:"nome"`
	Institution string `json:"instituicao"`
	Hours       int    `json:"cargaHoraria" validate:"gte=0"`
}

type Language struct {
	Name  string `json:"nome"`
	Level string `json:"nivel"`
}

type Skill struct {
	Name  string `json:"nome"`
	Level string `json:"nivel"`
}

// ShowsUniversity reports whether the university field applies to the draft.
func (d *Draft) ShowsUniversity() bool {
	return RequiresUniversity(d.EducationLevel)
}

// Clone returns a deep copy of the draft.
func (d Draft) Clone() Draft {
	d.Experiences = append([]Experience(nil), d.Experiences...)
	d.Courses = append([]Course(nil), d.Courses...)
	d.Languages = append([]Language(nil), d.Languages...)
	d.Skills = append([]Skill(nil), d.Skills...)
	return d
}
