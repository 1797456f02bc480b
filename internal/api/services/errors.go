package services

import (
	"fmt"
	"net/http"
)

// AppError carries the HTTP status and client-facing message for a failure.
// Err holds the internal cause and is never sent to clients.
type AppError struct {
	HTTPCode int
	Message  string
	Err      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

const (
	MsgUnauthorized   = "Unauthorized"
	MsgNotFound       = "Not found"
	MsgMissingEmail   = "Missing email"
	MsgMissingPass    = "Missing password"
	MsgAlreadyExist   = "Already exist"
	MsgMissingName    = "Missing name"
	MsgMissingType    = "Missing type"
	MsgMissingData    = "Missing data"
	MsgInvalidData    = "Invalid data"
	MsgParentNotFound = "Parent not found"
	MsgParentNotDir   = "Parent is not a folder"
	MsgFolderNoData   = "A folder doesn't have content"
	MsgCannotStore    = "Cannot store file"
	MsgInternal       = "Internal error"
)

func newValidationError(message string) *AppError {
	return &AppError{HTTPCode: http.StatusBadRequest, Message: message}
}

func newUnauthorizedError(err error) *AppError {
	return &AppError{HTTPCode: http.StatusUnauthorized, Message: MsgUnauthorized, Err: err}
}

func newNotFoundError(err error) *AppError {
	return &AppError{HTTPCode: http.StatusNotFound, Message: MsgNotFound, Err: err}
}

func newStorageError(err error) *AppError {
	return &AppError{HTTPCode: http.StatusInternalServerError, Message: MsgCannotStore, Err: err}
}

func newInternalError(err error) *AppError {
	return &AppError{HTTPCode: http.StatusInternalServerError, Message: MsgInternal, Err: err}
}
