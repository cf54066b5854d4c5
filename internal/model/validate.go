package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed appstate.schema.json
var appStateSchema string

var validate = validator.New()

// FieldError is one advisory validation message. Validation never blocks a
// write; the messages are shown inline next to the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string { return e.Field + ": " + e.Message }

// ValidatePersonalInfo runs the declarative per-field constraints.
func ValidatePersonalInfo(info PersonalInfo) []FieldError {
	return collect(validate.Struct(info))
}

// ValidateExperience adds the conditional rule on top of the struct tags: the
// end date is required unless the entry is marked current.
func ValidateExperience(e Experience) []FieldError {
	errs := collect(validate.Struct(e))
	if !e.Current && e.EndDate == "" {
		errs = append(errs, FieldError{Field: "endDate", Message: "end date is required if not current"})
	}
	return errs
}

func ValidateEducation(e Education) []FieldError {
	errs := collect(validate.Struct(e))
	if !e.Current && e.EndDate == "" {
		errs = append(errs, FieldError{Field: "endDate", Message: "end date is required if not current"})
	}
	return errs
}

func ValidateSkill(s Skill) []FieldError {
	return collect(validate.Struct(s))
}

func ValidateProject(p Project) []FieldError {
	return collect(validate.Struct(p))
}

func collect(err error) []FieldError {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   lowerFirst(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "invalid email address"
	case "url":
		return "invalid URL"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ValidateSnapshot checks a raw durable snapshot against the app-state JSON
// schema before it is allowed to replace the initial state. A snapshot that
// fails here is discarded so a corrupt file cannot wedge startup.
func ValidateSnapshot(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(appStateSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("snapshot validation failed: %s", strings.Join(msgs, "; "))
}
