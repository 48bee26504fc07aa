package result

import "fmt"

// Kind identifies the reason a computation failed.
type Kind int

const (
	// NotANumber means a piece of text could not be read as a number.
	NotANumber Kind = iota
	// InvalidOperation means an operator or operation is not supported.
	InvalidOperation
	// UnexpectedInput means the input contained a token that was not expected here.
	UnexpectedInput
	// NotEnoughInput means the input ended before the parser was satisfied.
	NotEnoughInput
)

func (k Kind) String() string {
	switch k {
	case NotANumber:
		return "NotANumber"
	case InvalidOperation:
		return "InvalidOperation"
	case UnexpectedInput:
		return "UnexpectedInput"
	case NotEnoughInput:
		return "NotEnoughInput"
	default:
		return "?"
	}
}

// MarshalText encodes k by name so reports stay readable as JSON or YAML.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for _, candidate := range []Kind{NotANumber, InvalidOperation, UnexpectedInput, NotEnoughInput} {
		if candidate.String() == string(text) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown error kind %q", text)
}

// Error is a typed failure reason. Text carries the offending text for every
// kind except NotEnoughInput, which has no payload.
//
// Error is comparable, so two errors are equal exactly when their kinds and
// payloads are equal.
type Error struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text,omitempty"`
}

var _ error = Error{}

func ErrNotANumber(text string) Error       { return Error{Kind: NotANumber, Text: text} }
func ErrInvalidOperation(text string) Error { return Error{Kind: InvalidOperation, Text: text} }
func ErrUnexpectedInput(text string) Error  { return Error{Kind: UnexpectedInput, Text: text} }
func ErrNotEnoughInput() Error              { return Error{Kind: NotEnoughInput} }

func (e Error) Error() string {
	switch e.Kind {
	case NotANumber:
		return fmt.Sprintf("not a number: %q", e.Text)
	case InvalidOperation:
		return fmt.Sprintf("invalid operation: %q", e.Text)
	case UnexpectedInput:
		return fmt.Sprintf("unexpected input: %q", e.Text)
	case NotEnoughInput:
		return "not enough input"
	default:
		return "unknown error"
	}
}

// String returns the constructor-style form, e.g. UnexpectedInput("h").
func (e Error) String() string {
	if e.Kind == NotEnoughInput {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
}
