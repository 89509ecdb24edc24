package client

import (
	"errors"
	"fmt"
)

var (
	errUnexpectedResult = errors.New("unexpected result payload")
	errAborted          = errors.New("aborted")
)

// ResultError is a failed [models.Result] turned into an error.
type ResultError struct {
	Code    string
	Message string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}
