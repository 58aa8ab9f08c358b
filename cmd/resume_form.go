package cmd

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spigell/vagas/internal/config"
	"github.com/spigell/vagas/internal/resume"
)

var errInvalidDraft = errors.New("the résumé draft is invalid")

func newValidator(cfg *config.Config) *resume.Validator {
	return resume.NewValidator(cfg.Layout())
}

// loadDraft reads a résumé draft from a YAML or JSON file. Keys are the
// backend field names (nome, dataNascimento, skills ...).
func loadDraft(path string) (*resume.Draft, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading résumé draft %q: %w", path, err)
	}

	var d resume.Draft
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &d,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       dateToString,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decoding résumé draft %q: %w", path, err)
	}

	return &d, nil
}

// dateToString keeps YAML timestamps in the backend date format.
func dateToString(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if t, ok := data.(time.Time); ok && from == reflect.TypeOf(time.Time{}) {
		return resume.FormatDate(t), nil
	}
	return data, nil
}

// completeDraft submits the form and, in interactive mode, lets the user fix
// the reported fields until the draft is valid.
func completeDraft(form *resume.Form, interactive bool) (*resume.Resume, error) {
	for {
		r, ok := form.Submit()
		if ok {
			return r, nil
		}

		errs := form.Errors()
		printValidationErrors(os.Stderr, errs)

		if !interactive {
			return nil, errInvalidDraft
		}

		fields := errs.Fields()
		_, field, err := choose("Choose a field to fix", append(fields, PromptCancel))
		if err != nil {
			return nil, err
		}
		if field == PromptCancel {
			return nil, errCancelled
		}

		if err := editField(form, field); err != nil {
			return nil, err
		}
	}
}

func editField(form *resume.Form, key string) error {
	d := form.Draft()
	field, index := splitKey(key)

	switch field {
	case resume.FieldName:
		return editText(form, field, "Name", d.Name, func(d *resume.Draft, v string) { d.Name = v })
	case resume.FieldSurname:
		return editText(form, field, "Surname", d.Surname, func(d *resume.Draft, v string) { d.Surname = v })
	case resume.FieldCity:
		return editText(form, field, "City", d.City, func(d *resume.Draft, v string) { d.City = v })
	case resume.FieldResidence:
		return editText(form, field, "Residence (city, state)", d.Residence, func(d *resume.Draft, v string) { d.Residence = v })
	case resume.FieldUniversity:
		return editText(form, field, "University", d.UniversityName, func(d *resume.Draft, v string) { d.UniversityName = v })
	case resume.FieldState:
		return editChoice(form, field, "State", resume.States, func(d *resume.Draft, v string) { d.State = v })
	case resume.FieldEducationLevel:
		return editChoice(form, field, "Education level", resume.EducationLevels, func(d *resume.Draft, v string) { d.EducationLevel = v })
	case resume.FieldBirthDate:
		value, err := ask("Birth date (YYYY-MM-DD)", d.BirthDate, func(s string) error {
			_, err := resume.ParseDate(s)
			return err
		})
		if err != nil {
			return err
		}
		form.Edit(field, func(d *resume.Draft) { d.BirthDate = value })
		return nil
	case resume.FieldExpectedSalary:
		value, err := ask("Expected salary", strconv.FormatFloat(d.ExpectedSalary, 'f', 2, 64), validateAmount)
		if err != nil {
			return err
		}
		amount, _ := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
		form.Edit(field, func(d *resume.Draft) { d.ExpectedSalary = amount })
		return nil
	case resume.FieldSkills:
		return editSkills(form, d.Skills)
	case resume.FieldCourses:
		return editCourses(form, d.Courses, index)
	default:
		return fmt.Errorf("field %q cannot be edited interactively, fix it in the draft file", key)
	}
}

func editText(form *resume.Form, field, label, current string, set func(*resume.Draft, string)) error {
	value, err := ask(label, current, nil)
	if err != nil {
		return err
	}
	form.Edit(field, func(d *resume.Draft) { set(d, strings.TrimSpace(value)) })
	return nil
}

func editChoice(form *resume.Form, field, label string, items []string, set func(*resume.Draft, string)) error {
	_, value, err := choose(label, items)
	if err != nil {
		return err
	}
	form.Edit(field, func(d *resume.Draft) { set(d, value) })
	return nil
}

func editSkills(form *resume.Form, current []resume.Skill) error {
	parts := make([]string, 0, len(current))
	for _, s := range current {
		if strings.TrimSpace(s.Name) != "" {
			parts = append(parts, s.Name+":"+s.Level)
		}
	}

	value, err := ask("Skills (name:level, comma separated)", strings.Join(parts, ", "), nil)
	if err != nil {
		return err
	}

	skills := parseSkills(value)
	form.Edit(resume.FieldSkills, func(d *resume.Draft) { d.Skills = skills })
	return nil
}

func parseSkills(value string) []resume.Skill {
	var skills []resume.Skill
	for _, item := range strings.Split(value, ",") {
		name, level, _ := strings.Cut(item, ":")
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		level = strings.TrimSpace(level)
		if level == "" {
			level = resume.SkillLevels[0]
		}
		skills = append(skills, resume.Skill{Name: name, Level: level})
	}
	return skills
}

func editCourses(form *resume.Form, courses []resume.Course, index int) error {
	if len(courses) > resume.MaxCourses {
		ok, err := confirm(fmt.Sprintf("Keep only the first %d of %d courses", resume.MaxCourses, len(courses)))
		if err != nil {
			return err
		}
		if !ok {
			return errCancelled
		}
		form.Edit(resume.FieldCourses, func(d *resume.Draft) { d.Courses = d.Courses[:resume.MaxCourses] })
		return nil
	}

	if index < 0 || index >= len(courses) {
		return fmt.Errorf("course %d does not exist", index)
	}

	value, err := ask(fmt.Sprintf("Hours of %q", courses[index].Name), strconv.Itoa(courses[index].Hours), func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return errors.New("must be a non-negative number")
		}
		return nil
	})
	if err != nil {
		return err
	}

	hours, _ := strconv.Atoi(strings.TrimSpace(value))
	form.Edit(resume.FieldCourses, func(d *resume.Draft) { d.Courses[index].Hours = hours })
	return nil
}

func validateAmount(s string) error {
	n, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil || n < 0 {
		return errors.New("must be a non-negative amount")
	}
	return nil
}

// splitKey splits "cursosComplementares[2].cargaHoraria" into the top-level
// field and the element index (-1 when absent).
func splitKey(key string) (string, int) {
	field, rest, found := strings.Cut(key, "[")
	if !found {
		return key, -1
	}

	idx, _, _ := strings.Cut(rest, "]")
	n, err := strconv.Atoi(idx)
	if err != nil {
		return field, -1
	}
	return field, n
}
