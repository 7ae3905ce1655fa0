package config

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	oerrors "github.com/ijon007/cp-cli/internal/errors"
)

//go:embed schema.cue
var schemaFS embed.FS

// ValidationError is a single schema violation.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s\n", err.Error()))
	}
	return sb.String()
}

// Unwrap maps every schema violation to the validation exit code.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	data, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	compiled := ctx.CompileBytes(data, cue.Filename("schema.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("looking up #Config: %w", schema.Err())
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate checks a loaded configuration.
func (v *Validator) Validate(cfg *Config) error {
	return v.validate(v.ctx.Encode(cfg), cfg.Components, cfg.Styling)
}

// ValidateFile checks the raw contents of a config file, which also catches
// unknown keys that decoding into Config would silently drop.
func (v *Validator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError(
				fmt.Sprintf("config file %q not found", path), path,
				"Run 'cp-cli config init' to create one.")
		}
		return oerrors.WrapIO(err, "reading config file")
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return ValidationErrors{{Message: fmt.Sprintf("invalid YAML: %v", err)}}
	}
	if raw == nil {
		return nil
	}

	components, _ := raw["components"].(bool)
	styling, _ := raw["styling"].(bool)
	return v.validate(v.ctx.Encode(raw), components, styling)
}

func (v *Validator) validate(value cue.Value, components, styling bool) error {
	if value.Err() != nil {
		return ValidationErrors{{Message: value.Err().Error()}}
	}

	errs := validateFields(v.schema, value, nil, nil)
	if components && !styling {
		errs = append(errs, ValidationError{
			Field:   "components",
			Message: "shadcn/ui components require styling: true",
		})
	}
	if len(errs) == 0 {
		return nil
	}

	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}

// validateFields walks every field in data and checks it against the matching
// schema node. Unknown fields are reported instead of silently dropped.
func validateFields(schema, data cue.Value, path []string, errs ValidationErrors) ValidationErrors {
	iter, err := data.Fields()
	if err != nil {
		return errs
	}

	for iter.Next() {
		sel := iter.Selector()
		name := sel.Unquoted()
		fieldVal := iter.Value()

		fieldPath := make([]string, len(path), len(path)+1)
		copy(fieldPath, path)
		fieldPath = append(fieldPath, name)
		field := strings.Join(fieldPath, ".")

		if !schema.Allows(cue.Str(name)) {
			errs = append(errs, ValidationError{Field: field, Message: "field not allowed"})
			continue
		}

		schemaField := schema.LookupPath(cue.MakePath(cue.Str(name).Optional()))
		if !schemaField.Exists() {
			schemaField = schema.LookupPath(cue.MakePath(sel))
		}
		if !schemaField.Exists() {
			continue
		}

		if fieldVal.IncompleteKind() == cue.StructKind {
			errs = validateFields(schemaField, fieldVal, fieldPath, errs)
			continue
		}

		unified := schemaField.Unify(fieldVal)
		if fieldErr := unified.Validate(cue.Concrete(true)); fieldErr != nil {
			errs = append(errs, ValidationError{Field: field, Message: leafMessage(fieldErr)})
		}
	}
	return errs
}

// leafMessage returns the first CUE error message without its path prefix.
func leafMessage(err error) string {
	all := cueerrors.Errors(err)
	if len(all) == 0 {
		return err.Error()
	}
	format, args := all[0].Msg()
	return fmt.Sprintf(format, args...)
}
