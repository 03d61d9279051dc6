// Package workspace discovers Eclipse projects across the configured roots.
// It provides the Context type that holds resolved workspace paths and
// loaded configuration, and catalog builders for the two reconciliation
// pipelines: the project-name set used by cleanup and the bundle-to-directory
// mapping used by reference restoration.
package workspace
