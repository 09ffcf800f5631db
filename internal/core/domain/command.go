package domain

// Command is an external process invocation.
type Command struct {
	// Name is the executable, resolved through PATH when not absolute.
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds overrides applied on top of the process environment.
	Env map[string]string
}

// Argv returns the full argument vector including the executable.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}
