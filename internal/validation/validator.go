package validation

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the process-wide validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// FieldError is one failed rule of one field.
type FieldError struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error collects every failed field of a request.
type Error struct {
	Fields map[string][]FieldError
}

func (e *Error) add(field, rule, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]FieldError{}
	}
	e.Fields[field] = append(e.Fields[field], FieldError{Rule: rule, Message: message})
}

func (e *Error) empty() bool { return e == nil || len(e.Fields) == 0 }

// FieldNames returns the failing fields in sorted order.
func (e *Error) FieldNames() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Has reports whether field failed rule.
func (e *Error) Has(field, rule string) bool {
	if e == nil {
		return false
	}
	for _, fe := range e.Fields[field] {
		if fe.Rule == rule {
			return true
		}
	}
	return false
}

func (e *Error) Error() string {
	if e.empty() {
		return "validation failed"
	}
	var msgs []string
	for _, f := range e.FieldNames() {
		for _, fe := range e.Fields[f] {
			msgs = append(msgs, fe.Message)
		}
	}
	return strings.Join(msgs, "; ")
}

// Message is the summary line used in API error bodies.
func (e *Error) Message() string {
	names := e.FieldNames()
	if len(names) == 0 {
		return "The given data was invalid."
	}
	first := e.Fields[names[0]][0].Message
	if extra := e.count() - 1; extra > 0 {
		return fmt.Sprintf("%s (and %d more error%s)", first, extra, plural(extra))
	}
	return first
}

func (e *Error) count() int {
	n := 0
	for _, errs := range e.Fields {
		n += len(errs)
	}
	return n
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

var messageTemplates = map[string]string{
	"required": "The %s field is required.",
	"string":   "The %s field must be a string.",
	"boolean":  "The %s field must be true or false.",
	"integer":  "The %s field must be an integer.",
	"year":     "The %s field must match the format Y.",
	"array":    "The %s field must be an array.",
	"uuid":     "The %s field must contain valid UUIDs.",
	"exists":   "The selected %s is invalid.",
	"oneof":    "The selected %s is invalid.",
}

var messageWithParam = map[string]string{
	"max": "The %s field must not be greater than %s characters.",
	"min": "The %s field must be at least %s characters.",
}

// translate renders the message of rule for field.
func translate(field, rule, param string) string {
	label := strings.ReplaceAll(field, "_", " ")
	if tpl, ok := messageTemplates[rule]; ok {
		return fmt.Sprintf(tpl, label)
	}
	if tpl, ok := messageWithParam[rule]; ok {
		return fmt.Sprintf(tpl, label, param)
	}
	return fmt.Sprintf("The %s field failed %s validation.", label, rule)
}
