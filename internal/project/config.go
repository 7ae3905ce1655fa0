package project

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	oerrors "github.com/ijon007/cp-cli/internal/errors"
)

// DefaultName is the project name used when none is given and prompts are skipped.
const DefaultName = "my-app"

// Config is the complete, immutable description of a project to generate.
type Config struct {
	// Name is the project name and the name of the directory to create.
	Name string `json:"name" validate:"required,max=214,projectname"`

	// Framework selects the composer that produces the project files.
	Framework Framework `json:"framework" validate:"required,oneof=nextjs tanstack-start"`

	// Database selects the database provider. DatabaseNone is a valid choice.
	Database Database `json:"database" validate:"required,oneof=none convex neon-drizzle"`

	// Auth enables Clerk authentication.
	Auth bool `json:"auth"`

	// Styling enables Tailwind CSS.
	Styling bool `json:"styling"`

	// Components enables shadcn/ui scaffolding. Requires Styling.
	Components bool `json:"components"`

	// PackageManager is used for the printed next steps.
	PackageManager PackageManager `json:"packageManager" validate:"required,oneof=npm pnpm yarn bun"`

	// InitGit runs git init in the generated project.
	InitGit bool `json:"initGit"`
}

// DefaultConfig returns the configuration used when prompts are skipped:
// Next.js, no database, no optional features, git enabled.
func DefaultConfig(name string, pm PackageManager) Config {
	return Config{
		Name:           name,
		Framework:      NextJS,
		Database:       DatabaseNone,
		PackageManager: pm,
		InitGit:        true,
	}
}

// projectNameRegex matches names that are safe to use as a single directory
// component on every supported platform.
var projectNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names so errors match flags and config keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return ValidateName(fl.Field().String()) == nil
	})

	return v
}

// ValidateName checks that name can be used as the project directory name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid project name %q", name)
	}
	if !projectNameRegex.MatchString(name) {
		return fmt.Errorf("invalid project name %q: use letters, digits, '.', '-' and '_', starting with a letter or digit", name)
	}
	return nil
}

// SuggestName returns a filesystem-safe variant of name, or DefaultName when
// nothing usable remains.
func SuggestName(name string) string {
	s := slug.Make(name)
	if s == "" || ValidateName(s) != nil {
		return DefaultName
	}
	return s
}

// Validate checks every field of the configuration and the cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return c.fieldError(verrs[0])
		}
		return oerrors.Wrap(oerrors.ErrValidation, err.Error())
	}

	if c.Components && !c.Styling {
		return oerrors.NewValidationError(
			"shadcn/ui components require Tailwind CSS",
			"components",
			"Enable styling (--styling) or disable components.",
		)
	}

	return nil
}

func (c Config) fieldError(fe validator.FieldError) error {
	field := fe.Field()
	switch field {
	case "name":
		msg := fmt.Sprintf("invalid project name %q", c.Name)
		if err := ValidateName(c.Name); err != nil {
			msg = err.Error()
		}
		return oerrors.NewValidationError(msg, field,
			fmt.Sprintf("Try %q.", SuggestName(c.Name)))
	case "framework":
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown framework %q", c.Framework), field,
			"Valid frameworks: "+joinValues(AllFrameworks()))
	case "database":
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown database %q", c.Database), field,
			"Valid databases: "+joinValues(AllDatabases()))
	case "packageManager":
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown package manager %q", c.PackageManager), field,
			"Valid package managers: "+joinValues(AllPackageManagers()))
	default:
		return oerrors.NewValidationError(
			fmt.Sprintf("%s failed %q validation", field, fe.Tag()), field, "")
	}
}

// Features returns the human-readable names of the enabled optional features.
func (c Config) Features() []string {
	var features []string
	if c.Auth {
		features = append(features, "Clerk")
	}
	if c.Styling {
		features = append(features, "Tailwind CSS")
	}
	if c.Components {
		features = append(features, "shadcn/ui")
	}
	return features
}
