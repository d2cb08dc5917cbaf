package repository

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrStatusConflict = errors.New("record is not in an expected status")
)
