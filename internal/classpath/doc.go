// Package classpath reads, mutates, and rewrites Eclipse .classpath XML
// documents. It carries the two reconciliation rule sets: removal of lib
// entries that conflict with workspace source projects, and restoration of
// missing inter-project src references.
package classpath
