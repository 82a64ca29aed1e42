// Package app contains the core application logic: configuration, logger
// setup, and the generation lifecycle that loads a model description, runs
// the composition passes, and emits the two generated source files. It is
// decoupled from any specific entrypoint like a CLI.
package app
