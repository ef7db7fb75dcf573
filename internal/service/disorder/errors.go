package disorder

import "errors"

var (
	ErrDisorderNotFound = errors.New("disorder not found")
	ErrDisorderExists   = errors.New("disorder already exists")
	ErrNameRequired     = errors.New("name is required")
)
