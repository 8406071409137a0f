// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of the input source, packer, and output writer,
// keeping the main package focused on CLI parsing and orchestration.
package application
