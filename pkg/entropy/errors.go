package entropy

import "github.com/cockroachdb/errors"

// Sentinel errors returned by the selection entry points. Wrapped with
// context at the failure site; match with errors.Is.
var (
	// ErrInvalidInput marks an empty table, an empty candidate set, or a
	// feature/value argument not present in the table.
	ErrInvalidInput = errors.New("entropy: invalid input")

	// ErrAmbiguousLabel marks a label vector whose name collides with an
	// existing feature column. Merging would overwrite feature data.
	ErrAmbiguousLabel = errors.New("entropy: ambiguous label")
)
