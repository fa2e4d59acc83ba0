package shelf

import "github.com/rotisserie/eris"

var (
	ErrCatalogFull       = eris.New("catalog at maximum capacity")
	ErrDuplicateInstance = eris.New("component instance stored in more than one slot")
	ErrKindMismatch      = eris.New("component instance does not match its bucket kind")
	ErrNilInstance       = eris.New("nil component instance in sequence")
)
