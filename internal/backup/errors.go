// Package backup provides snapshot backup and restore for the ReelHub database.
package backup

import "errors"

var (
	// ErrBackupNotFound indicates the requested backup does not exist.
	ErrBackupNotFound = errors.New("backup not found")
)
