package repository

import "errors"

// ErrNotFound is returned by lookups that matched nothing
var ErrNotFound = errors.New("not found")
