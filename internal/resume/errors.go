package resume

import (
	"sort"
	"strings"
)

// Errors maps a field key to a human readable message. An empty set means the
// draft is valid.
type Errors map[string]string

// Valid reports whether the set holds no errors.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Has reports whether field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Clear removes the error for field together with errors of its elements
// (for example "cursosComplementares[2].cargaHoraria" for "cursosComplementares").
func (e Errors) Clear(field string) {
	delete(e, field)
	for key := range e {
		if strings.HasPrefix(key, field+"[") || strings.HasPrefix(key, field+".") {
			delete(e, key)
		}
	}
}

// Fields returns the keys with errors in a stable order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (e Errors) clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

func (e Errors) String() string {
	var sb strings.Builder
	for i, field := range e.Fields() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(field)
		sb.WriteString(": ")
		sb.WriteString(e[field])
	}
	return sb.String()
}
