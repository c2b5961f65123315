package apperrors

import "errors"

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("record not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that a create or rename would collide with an
// existing reference number in the same collection.
var ErrDuplicate = errors.New("reference number already exists")
