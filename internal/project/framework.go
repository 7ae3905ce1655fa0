package project

import (
	"fmt"
	"strings"

	oerrors "github.com/ijon007/cp-cli/internal/errors"
)

// Framework identifies the target web framework.
type Framework string

const (
	// NextJS is the Next.js App Router framework.
	NextJS Framework = "nextjs"

	// TanStackStart is the TanStack Start framework.
	TanStackStart Framework = "tanstack-start"
)

// AllFrameworks returns every supported framework in prompt order.
func AllFrameworks() []Framework {
	return []Framework{NextJS, TanStackStart}
}

// Title returns the human-readable framework name.
func (f Framework) Title() string {
	switch f {
	case NextJS:
		return "Next.js"
	case TanStackStart:
		return "TanStack Start"
	default:
		return string(f)
	}
}

// String implements fmt.Stringer.
func (f Framework) String() string {
	return string(f)
}

// IsValid reports whether f is one of the supported frameworks.
func (f Framework) IsValid() bool {
	switch f {
	case NextJS, TanStackStart:
		return true
	default:
		return false
	}
}

// ParseFramework parses a framework identifier. Matching is case-insensitive
// and accepts the short aliases "next" and "tanstack".
func ParseFramework(s string) (Framework, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nextjs", "next", "next.js":
		return NextJS, nil
	case "tanstack-start", "tanstack", "tanstackstart", "tanstack start":
		return TanStackStart, nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown framework %q", s),
			"framework",
			"Valid frameworks: "+joinValues(AllFrameworks()),
		)
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
