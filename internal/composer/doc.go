// Package composer turns a project.Config into the set of files that make up
// the generated project.
//
// Composition is pure: no filesystem access, no environment reads. The same
// Config always yields a byte-identical Set, which is what lets the generator,
// the plan command and the drift check share one source of truth.
package composer
