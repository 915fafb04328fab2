package main

import (
	"fmt"
	"strings"
)

// flagSet represents a flag that is either set (true) or not set (false).
type flagSet struct {
	name  string
	isSet bool
}

func flagList(flags []flagSet) string {
	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.name
	}
	return strings.Join(names, ", ")
}

// requireExactlyOne returns an error if not exactly one of the given flags is set.
func requireExactlyOne(flags ...flagSet) error {
	var set int
	for _, f := range flags {
		if f.isSet {
			set++
		}
	}

	if set == 0 {
		return fmt.Errorf("one of %s is required", flagList(flags))
	}
	if set > 1 {
		return fmt.Errorf("only one of %s can be specified", flagList(flags))
	}
	return nil
}

// requireAtLeastOne returns an error if none of the given flags are set.
func requireAtLeastOne(flags ...flagSet) error {
	for _, f := range flags {
		if f.isSet {
			return nil
		}
	}
	return fmt.Errorf("at least one of %s is required", flagList(flags))
}
