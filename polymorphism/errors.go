package polymorphism

import "errors"

// ErrUnknownIdentity is returned by ParseKind when the --polymorphism
// flag names a kind that isn't in the catalogue.
var ErrUnknownIdentity = errors.New("polymorphism: unknown identity kind")
