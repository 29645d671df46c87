package shell

// NewExecutorWithEnv creates an Executor with a fixed environment.
// This is exported for testing purposes only.
func NewExecutorWithEnv(env []string) *Executor {
	return &Executor{environ: func() []string { return env }}
}

// NewPathLocatorWithEnv creates a PathLocator with a fixed environment.
// This is exported for testing purposes only.
func NewPathLocatorWithEnv(env []string) *PathLocator {
	return &PathLocator{environ: func() []string { return env }}
}
