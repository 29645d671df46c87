package domain

import "io"

// Invocation describes one external process run.
type Invocation struct {
	Path string
	Args []string
	Dir  string
	// Stdin, Stdout and Stderr are optional. Stderr is captured regardless;
	// when set it also receives a copy.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
