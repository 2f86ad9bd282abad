// Package storage defines the sentinel errors shared by all repositories.
// Services propagate these unchanged so handlers can map them to HTTP
// statuses without string matching.
package storage

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
)
