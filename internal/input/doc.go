// Package input resolves an input path to its raw content and splits it into
// package lines. Paths are looked up as given and then under each configured
// resource directory and its ancestors.
package input
