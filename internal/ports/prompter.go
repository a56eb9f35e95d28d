package ports

// Prompter is a line-oriented conversation with the user.
// Ask returns io.EOF when input is exhausted.
type Prompter interface {
	Ask(prompt string) (string, error)
	Say(line string) error
}
