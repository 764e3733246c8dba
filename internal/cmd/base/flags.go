package base

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagSet wraps a flag.FlagSet so commands can render their options in
// help output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet around f. Parse errors are returned to the
// caller instead of being printed by the flag package.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help returns the options section of a command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder

	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&b, "\n      %s\n", fl.Usage)
	})

	return b.String()
}
