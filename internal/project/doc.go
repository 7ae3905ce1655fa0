// Package project defines the closed configuration model that drives project
// generation: the framework, database, feature flags and package manager of a
// new project.
//
// A Config is built once by a config source (prompts or flags), validated, and
// then passed by value to the composer and generator. It is never mutated after
// construction.
package project
