// Package storage provides string-keyed, string-valued persistence
// backends behind the domain.Storage port. Each collection of the data
// layer occupies a single key; values are whole JSON documents.
package storage

import "errors"

// ErrKeyNotFound is returned by Get when the key has never been written
// or was deleted. Callers treat it as an empty collection, not a failure.
var ErrKeyNotFound = errors.New("storage: key not found")
