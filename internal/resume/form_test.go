package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormEditClearsOnlyThatField(t *testing.T) {
	v := newTestValidator(LayoutSingle)
	f := v.NewForm(Draft{})

	r, ok := f.Submit()
	require.False(t, ok)
	require.Nil(t, r)
	require.True(t, f.Errors().Has(FieldName))
	require.True(t, f.Errors().Has(FieldSkills))

	f.Edit(FieldName, func(d *Draft) { d.Name = "Ana" })

	errs := f.Errors()
	assert.False(t, errs.Has(FieldName))
	assert.True(t, errs.Has(FieldSkills))
	assert.True(t, errs.Has(FieldBirthDate))
}

func TestFormEditClearsNestedErrors(t *testing.T) {
	v := newTestValidator(LayoutSingle)
	d := validDraft()
	d.Courses = []Course{{Name: "Go", Hours: -3}}
	f := v.NewForm(d)

	_, ok := f.Submit()
	require.False(t, ok)
	require.True(t, f.Errors().Has("cursosComplementares[0].cargaHoraria"))

	f.Edit(FieldCourses, func(d *Draft) { d.Courses[0].Hours = 3 })
	assert.True(t, f.Errors().Valid())

	r, ok := f.Submit()
	require.True(t, ok)
	assert.Equal(t, 3, r.Courses[0].Hours)
}

func TestFormDraftIsACopy(t *testing.T) {
	v := newTestValidator(LayoutSingle)
	f := v.NewForm(validDraft())

	d := f.Draft()
	d.Skills[0].Name = "changed"

	assert.Equal(t, "Go", f.Draft().Skills[0].Name)
}

func TestErrorsString(t *testing.T) {
	errs := Errors{FieldSkills: "b", FieldName: "a"}
	assert.Equal(t, "nome: a; skills: b", errs.String())

	errs.Clear(FieldName)
	assert.Equal(t, []string{FieldSkills}, errs.Fields())
}
