package textclean

// Result describes one processed file.
type Result struct {
	InputPath  string
	OutputPath string
	Text       string
	// FallbackUsed reports that the input was decoded as Latin-1.
	FallbackUsed bool
}
