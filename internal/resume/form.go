package resume

// Form keeps a draft together with the errors of the last submit attempt.
// Errors stay until the offending field is edited or the next submit.
type Form struct {
	validator *Validator
	draft     Draft
	errs      Errors
}

// NewForm starts editing a copy of d.
func (v *Validator) NewForm(d Draft) *Form {
	return &Form{
		validator: v,
		draft:     d.Clone(),
		errs:      Errors{},
	}
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() Draft {
	return f.draft.Clone()
}

// Edit applies mutate to the draft and clears the existing error of field.
// Other errors are left untouched.
func (f *Form) Edit(field string, mutate func(d *Draft)) {
	if mutate != nil {
		mutate(&f.draft)
	}
	f.errs.Clear(field)
}

// Errors returns a copy of the current error set.
func (f *Form) Errors() Errors {
	return f.errs.clone()
}

// Submit recomputes the error set and returns the document when the draft is
// valid.
func (f *Form) Submit() (*Resume, bool) {
	r, errs := f.validator.Submit(&f.draft)
	f.errs = errs
	return r, errs.Valid()
}
