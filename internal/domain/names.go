package domain

import (
	"fmt"
	"regexp"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	rootPattern       = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)
)

// ValidateIdentifier checks that name is a Solidity identifier. Contract and
// parameter names are spliced into declarations and string literals.
func ValidateIdentifier(kind, name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %s %q is not a valid identifier", ErrInvalidName, kind, name)
	}
	return nil
}

// ValidateRoot checks a root namespace. It names a directory under script/
// and becomes the ROOT string constant, so quotes, backslashes and path
// separators are rejected.
func ValidateRoot(root string) error {
	if !rootPattern.MatchString(root) {
		return fmt.Errorf("%w: root namespace %q must use letters, digits, '_', '.' or '-'", ErrInvalidName, root)
	}
	return nil
}
