package legacy

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	MissingRequired ErrorKind = iota + 1
	ConflictingOptions
	InvalidValue
	UnexpectedArgument
	UnrecognizedVerb
	HelpRequested
)

func (k ErrorKind) String() string {
	switch k {
	case MissingRequired:
		return "missing_required"
	case ConflictingOptions:
		return "conflicting_options"
	case InvalidValue:
		return "invalid_value"
	case UnexpectedArgument:
		return "unexpected_argument"
	case UnrecognizedVerb:
		return "unrecognized_verb"
	case HelpRequested:
		return "help_requested"
	default:
		return "unknown"
	}
}

// ParseError reports why a legacy command could not be translated. Field and
// Other name canonical options or positionals; Raw carries the offending text.
type ParseError struct {
	Kind  ErrorKind
	Verb  string
	Field string
	Other string
	Raw   string
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case MissingRequired:
		msg = fmt.Sprintf("missing required argument <%s>", e.Field)
	case ConflictingOptions:
		msg = fmt.Sprintf("option --%s cannot be used with --%s", e.Field, e.Other)
	case InvalidValue:
		msg = fmt.Sprintf("invalid value %q for --%s", e.Raw, e.Field)
	case UnexpectedArgument:
		msg = fmt.Sprintf("unexpected argument %q", e.Raw)
	case UnrecognizedVerb:
		if e.Raw == "" {
			msg = "no legacy command given"
		} else {
			msg = fmt.Sprintf("unrecognized legacy command %q", e.Raw)
		}
	case HelpRequested:
		msg = "help requested"
	default:
		msg = "parse error"
	}
	if e.Verb == "" {
		return msg
	}
	return e.Verb + ": " + msg
}

// IsKind reports whether err is a *ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

func missingRequired(verb, field string) *ParseError {
	return &ParseError{Kind: MissingRequired, Verb: verb, Field: field}
}
