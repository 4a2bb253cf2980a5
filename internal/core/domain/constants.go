package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrNoResults          = errors.New("no results")
	ErrUnexpectedStatus   = errors.New("unexpected status code")
	ErrCatCodesNotLoaded  = errors.New("HTTP cats codes not loaded yet")
	ErrDogCodesNotLoaded  = errors.New("HTTP dogs codes not loaded yet")
	ErrChuckNotLoaded     = errors.New("Hold up partner, still locating Chuck!")
)

// BadArgumentError is a validation failure that is shown verbatim to the invoking user.
type BadArgumentError struct {
	Reason string
}

func (e *BadArgumentError) Error() string {
	return e.Reason
}

func NewBadArgument(format string, args ...any) error {
	return &BadArgumentError{Reason: fmt.Sprintf(format, args...)}
}
