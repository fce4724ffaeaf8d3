// Package version holds the single version constant stamped into --version
// output.
package version

// Version is the current release of crispr-design.
const Version = "0.3.0"
