package entity

import "errors"

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrNumberingConflict    = errors.New("invoice numbering conflict")
	ErrRenderFailed         = errors.New("document rendering failed")
)
