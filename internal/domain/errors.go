package domain

import (
	"fmt"
	"strings"
)

// Error types for consistent error handling across the service.

// ErrConversion indicates a value that survived cleaning but could not be
// parsed as a number. It carries the original input and the parse failure.
type ErrConversion struct {
	Input any
	Err   error
}

func (e *ErrConversion) Error() string {
	return fmt.Sprintf("no se pudo convertir '%v' a número: %v", e.Input, e.Err)
}

func (e *ErrConversion) Unwrap() error {
	return e.Err
}

// ErrColumnNotFound indicates no column label matched the numeric aliases.
type ErrColumnNotFound struct {
	Aliases []string
}

func (e *ErrColumnNotFound) Error() string {
	return fmt.Sprintf("columna numérica no encontrada (alias: %s)", strings.Join(e.Aliases, ", "))
}

// ErrInvalidWorkbook indicates the uploaded bytes are not a readable workbook.
type ErrInvalidWorkbook struct {
	Err error
}

func (e *ErrInvalidWorkbook) Error() string {
	return fmt.Sprintf("no se pudo leer el libro de Excel: %v", e.Err)
}

func (e *ErrInvalidWorkbook) Unwrap() error {
	return e.Err
}

// ErrNoFile indicates the upload request carried no file.
type ErrNoFile struct{}

func (e *ErrNoFile) Error() string {
	return "no se subió archivo"
}

// ErrValidation indicates a rejected upload (bad filename or extension).
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}
