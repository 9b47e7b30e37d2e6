package pages

// Prompter reads form input. Text and Password return a single line,
// Multiline reads until an empty line.
type Prompter interface {
	Text(label string) (string, error)
	Password(label string) (string, error)
	Multiline(label string) (string, error)
	Confirm(label string) (bool, error)
}
