package project

import (
	"fmt"
	"strings"

	oerrors "github.com/ijon007/cp-cli/internal/errors"
)

// Database identifies the database provider wired into a project.
type Database string

const (
	// DatabaseNone generates no database files or dependencies.
	DatabaseNone Database = "none"

	// Convex is the document-style Convex backend.
	Convex Database = "convex"

	// NeonDrizzle is Neon serverless Postgres accessed through the Drizzle ORM.
	NeonDrizzle Database = "neon-drizzle"
)

// AllDatabases returns every database choice in prompt order.
func AllDatabases() []Database {
	return []Database{DatabaseNone, Convex, NeonDrizzle}
}

// Title returns the human-readable database name.
func (d Database) Title() string {
	switch d {
	case DatabaseNone:
		return "None"
	case Convex:
		return "Convex"
	case NeonDrizzle:
		return "Neon + Drizzle"
	default:
		return string(d)
	}
}

// String implements fmt.Stringer.
func (d Database) String() string {
	return string(d)
}

// IsValid reports whether d is one of the supported databases.
func (d Database) IsValid() bool {
	switch d {
	case DatabaseNone, Convex, NeonDrizzle:
		return true
	default:
		return false
	}
}

// IsRelational reports whether the provider needs a connection string and a
// migration tool configuration.
func (d Database) IsRelational() bool {
	return d == NeonDrizzle
}

// ParseDatabase parses a database identifier. The empty string means none.
func ParseDatabase(s string) (Database, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DatabaseNone, nil
	case "convex":
		return Convex, nil
	case "neon-drizzle", "neon", "drizzle", "neon+drizzle":
		return NeonDrizzle, nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown database %q", s),
			"database",
			"Valid databases: "+joinValues(AllDatabases()),
		)
	}
}
