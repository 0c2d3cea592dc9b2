package roster

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a configuration that cannot drive the tools.
var ErrInvalidConfig = errors.New("invalid config")

// FileReadError indicates the workbook is missing or not a valid xlsx file.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("cannot read workbook %q: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// SheetNotFoundError indicates an expected sheet is absent.
type SheetNotFoundError struct {
	Sheet string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found", e.Sheet)
}

// ColumnMissingError indicates an expected header is absent from a sheet.
type ColumnMissingError struct {
	Sheet  string
	Column string
}

func (e *ColumnMissingError) Error() string {
	return fmt.Sprintf("column %q missing in sheet %q", e.Column, e.Sheet)
}
