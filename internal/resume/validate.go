package resume

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Layout selects how name and residence are captured.
type Layout int

const (
	// LayoutSingle captures the full name and the residence as single fields.
	LayoutSingle Layout = iota
	// LayoutSplit captures name and surname, city and state separately.
	LayoutSplit
)

func (l Layout) String() string {
	if l == LayoutSplit {
		return "split"
	}
	return "single"
}

// ParseLayout parses the configuration value for a layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return LayoutSingle, nil
	case "split":
		return LayoutSplit, nil
	default:
		return LayoutSingle, fmt.Errorf("unknown form layout %q (expected single or split)", s)
	}
}

const (
	msgNameRequired       = "name is required"
	msgSurnameRequired    = "surname is required"
	msgCityRequired       = "city is required"
	msgStateRequired      = "state is required"
	msgStateUnknown       = "state must be a Brazilian state code"
	msgResidenceRequired  = "residence is required"
	msgBirthDateRequired  = "birth date is required"
	msgBirthDateInvalid   = "birth date must be a valid date (YYYY-MM-DD)"
	msgBirthDatePast      = "birth date must be in the past"
	msgEducationRequired  = "education level is required"
	msgUniversityRequired = "university name is required for higher education"
	msgSkillsRequired     = "at least one skill is required"
	msgNegative           = "must not be negative"
)

var requiredMessages = map[string]string{
	FieldName:           msgNameRequired,
	FieldEducationLevel: msgEducationRequired,
}

// Validator checks drafts. It is safe for concurrent use.
type Validator struct {
	layout  Layout
	now     func() time.Time
	structs *validator.Validate
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the clock used for the birth date check.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// NewValidator creates a validator for the given layout.
func NewValidator(layout Layout, opts ...Option) *Validator {
	v := &Validator{
		layout:  layout,
		now:     time.Now,
		structs: newStructValidator(),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Layout returns the layout the validator checks against.
func (v *Validator) Layout() Layout {
	return v.layout
}

func newStructValidator() *validator.Validate {
	structs := validator.New()

	structs.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Only fails when called with a non-string field, which the tags never do.
	_ = structs.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return structs
}

// Validate evaluates every rule and returns the complete error set. It never
// stops at the first failure.
func (v *Validator) Validate(d *Draft) Errors {
	errs := Errors{}
	if d == nil {
		errs[FieldName] = msgNameRequired
		return errs
	}

	v.checkTags(d, errs)
	v.checkLayout(d, errs)
	v.checkBirthDate(d.BirthDate, errs)

	if RequiresUniversity(d.EducationLevel) && strings.TrimSpace(d.UniversityName) == "" {
		errs[FieldUniversity] = msgUniversityRequired
	}

	if !hasSkill(d.Skills) {
		errs[FieldSkills] = msgSkillsRequired
	}

	return errs
}

func (v *Validator) checkTags(d *Draft, errs Errors) {
	err := v.structs.Struct(d)
	if err == nil {
		return
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs[FieldName] = err.Error()
		return
	}

	for _, fe := range fieldErrs {
		key := fieldKey(fe.Namespace())
		if _, exists := errs[key]; exists {
			continue
		}
		errs[key] = tagMessage(fe)
	}
}

func (v *Validator) checkLayout(d *Draft, errs Errors) {
	if v.layout == LayoutSingle {
		if strings.TrimSpace(d.Residence) == "" {
			errs[FieldResidence] = msgResidenceRequired
		}
		return
	}

	if strings.TrimSpace(d.Surname) == "" {
		errs[FieldSurname] = msgSurnameRequired
	}

	if strings.TrimSpace(d.City) == "" {
		errs[FieldCity] = msgCityRequired
	}

	switch state := strings.TrimSpace(d.State); {
	case state == "":
		errs[FieldState] = msgStateRequired
	case !IsState(state):
		errs[FieldState] = msgStateUnknown
	}
}

func (v *Validator) checkBirthDate(raw string, errs Errors) {
	if strings.TrimSpace(raw) == "" {
		errs[FieldBirthDate] = msgBirthDateRequired
		return
	}

	born, err := ParseDate(raw)
	if err != nil {
		errs[FieldBirthDate] = msgBirthDateInvalid
		return
	}

	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !born.Before(today) {
		errs[FieldBirthDate] = msgBirthDatePast
	}
}

func hasSkill(skills []Skill) bool {
	for _, s := range skills {
		if strings.TrimSpace(s.Name) != "" {
			return true
		}
	}
	return false
}

// fieldKey drops the struct name from a validator namespace:
// "Draft.cursosComplementares[2].cargaHoraria" -> "cursosComplementares[2].cargaHoraria".
func fieldKey(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		if fe.Field() == FieldCourses {
			return fmt.Sprintf("a maximum of %d courses is allowed", MaxCourses)
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return msgNegative
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

// Submit validates the draft and, when valid, builds the document to send.
// Blank skills are dropped here, after validation has counted them.
func (v *Validator) Submit(d *Draft) (*Resume, Errors) {
	errs := v.Validate(d)
	if !errs.Valid() {
		return nil, errs
	}

	r := &Resume{
		Name:                strings.TrimSpace(d.Name),
		Residence:           strings.TrimSpace(d.Residence),
		BirthDate:           strings.TrimSpace(d.BirthDate),
		EducationLevel:      strings.TrimSpace(d.EducationLevel),
		UniversityName:      strings.TrimSpace(d.UniversityName),
		DesiredRole:         strings.TrimSpace(d.DesiredRole),
		ExpectedSalary:      d.ExpectedSalary,
		RelocationAvailable: d.RelocationAvailable,
		TravelAvailable:     d.TravelAvailable,
		Experiences:         append([]Experience(nil), d.Experiences...),
		Courses:             append([]Course(nil), d.Courses...),
		Languages:           append([]Language(nil), d.Languages...),
		Skills:              cleanSkills(d.Skills),
	}

	if v.layout == LayoutSplit {
		r.Name = strings.TrimSpace(d.Name) + " " + strings.TrimSpace(d.Surname)
		r.Residence = fmt.Sprintf("%s, %s", strings.TrimSpace(d.City), strings.ToUpper(strings.TrimSpace(d.State)))
	}

	if born, err := ParseDate(d.BirthDate); err == nil {
		r.BirthDate = FormatDate(born)
	}

	return r, errs
}

func cleanSkills(skills []Skill) []Skill {
	out := make([]Skill, 0, len(skills))
	for _, s := range skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		out = append(out, Skill{Name: name, Level: s.Level})
	}
	return out
}
