package storage

import "errors"

var (
	ErrTemplateNotFound = errors.New("template file not found")
)
