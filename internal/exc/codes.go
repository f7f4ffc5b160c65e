package exc

// Lexical errors are SGF00xx, structural errors are SGF01xx.
const (
	CodeUnknownFatal = "SGF0000"

	CodeInvalidCharacter = "SGF0001"
	CodeUnexpectedEOF    = "SGF0002"

	CodeUnexpectedToken = "SGF0101"
	CodeUnmatchedRight  = "SGF0102"
	CodeUnmatchedLeft   = "SGF0103"
	CodeMultipleRoots   = "SGF0104"
)

// IsLexical reports whether err is an Exception raised by the tokenizer.
func IsLexical(err error) bool {
	e, ok := err.(Exception)
	if !ok {
		return false
	}
	switch e.Code() {
	case CodeInvalidCharacter, CodeUnexpectedEOF:
		return true
	}
	return false
}

// IsStructural reports whether err is an Exception raised by the parser's
// grammar checks.
func IsStructural(err error) bool {
	e, ok := err.(Exception)
	if !ok {
		return false
	}
	switch e.Code() {
	case CodeUnexpectedToken, CodeUnmatchedRight, CodeUnmatchedLeft, CodeMultipleRoots:
		return true
	}
	return false
}
