package service

// Option is one entry in a selection menu. Label is shown to the user,
// Value is what the caller gets back.
type Option struct {
	Label string
	Value string
}

// Prompter is the interactive collaborator. Implementations return
// ErrAborted when the user backs out.
type Prompter interface {
	// Text asks for a line of input. A non-nil validate rejects input
	// until it accepts.
	Text(message, defaultValue string, validate func(string) error) (string, error)
	// Confirm asks a yes/no question; the default answers an empty reply.
	Confirm(message string, defaultYes bool) (bool, error)
	// Choose presents options and returns the selected value.
	Choose(message string, options []Option) (string, error)
}
