// Package catalog handles parsing and writing of catalog.yaml files.
// A catalog records the bundle-symbolic-name to project-directory mapping
// discovered by a workspace scan, so restore runs can reuse a known-good
// mapping instead of rescanning.
package catalog
