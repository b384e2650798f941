package repository

import "errors"

// ErrNotFound reports that no row matched a lookup. Callers render it the
// same way as a storage failure but must not log it as one.
var ErrNotFound = errors.New("not found")
