package database

import "github.com/pkg/errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrUnknownKind       = errors.New("unknown account kind")
)
