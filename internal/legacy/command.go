package legacy

import "strings"

// Command is the token sequence of a new-syntax command. Consumers read it
// positionally; it carries no quoting.
type Command []string

// String joins the tokens with single spaces. Empty tokens are kept, so an
// empty value shows up as a doubled space.
func (c Command) String() string {
	return strings.Join(c, " ")
}

// Args is a parsed legacy command ready to be turned into a new command.
type Args interface {
	// ExplicitNetworkID returns the --networkId value, or "" when absent.
	ExplicitNetworkID() string
	// Dropped lists arguments a tolerant verb accepted and ignored.
	Dropped() []string
	Build(networkID string) (Command, error)
}

// baseArgs carries what every verb parses the same way.
type baseArgs struct {
	NetworkID *string
	dropped   []string
}

func newBaseArgs(v *Values) baseArgs {
	return baseArgs{NetworkID: lookupPtr(v, OptNetworkID), dropped: v.Ignored()}
}

func (b baseArgs) ExplicitNetworkID() string {
	if b.NetworkID == nil {
		return ""
	}
	return *b.NetworkID
}

func (b baseArgs) Dropped() []string {
	return append([]string(nil), b.dropped...)
}

func lookupPtr(v *Values, opt Option) *string {
	s, ok := v.Lookup(opt)
	if !ok {
		return nil
	}
	return &s
}
