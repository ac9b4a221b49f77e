package cerrors

import (
	"reflect"

	"github.com/palantir/stacktrace"
	"github.com/pkg/errors"
)

type ErrorType string

const (
	ErrorTypeNonUserFriendly ErrorType = "NON_USER_FRIENDLY_ERROR"
	ErrorTypeGeneric         ErrorType = "GENERIC_ERROR"
	ErrorTypeInvalidScenario ErrorType = "INVALID_SCENARIO_ERROR"
	ErrorTypeOutputDir       ErrorType = "OUTPUT_DIR_ERROR"
	ErrorTypeRender          ErrorType = "RENDER_ERROR"
	ErrorTypeConfig          ErrorType = "CONFIG_ERROR"
)

type userFriendly interface {
	UserFriendly() bool
	ErrorType() ErrorType
}

// IsUserFriendly returns true if err is marked as safe to present to the user
func IsUserFriendly(err error) bool {
	ufe, ok := err.(userFriendly)
	return ok && ufe.UserFriendly()
}

// GetErrorType returns the type of error if the error is user-friendly
func GetErrorType(err error) ErrorType {
	if ufe, ok := err.(userFriendly); ok {
		return ufe.ErrorType()
	}
	return ErrorTypeNonUserFriendly
}

// GetRootCauseAndErrorCode unwraps stacktrace and pkg/errors wrappers and
// returns the message worth showing together with its error type
func GetRootCauseAndErrorCode(err error) (string, ErrorType) {
	rootCause := RootCause(err)
	errorType := GetErrorType(rootCause)
	if !IsUserFriendly(rootCause) {
		return err.Error(), errorType
	}
	return rootCause.Error(), errorType
}

// RootCause peels both wrapper flavours until the innermost error is reached
func RootCause(err error) error {
	for err != nil {
		next := errors.Cause(stacktrace.RootCause(err))
		if unchanged(next, err) {
			return err
		}
		err = next
	}
	return err
}

// unchanged reports whether unwrapping made no progress. Wrappers are always
// pointers, so a non-comparable value of the same type is a leaf.
func unchanged(next, prev error) bool {
	nt, pt := reflect.TypeOf(next), reflect.TypeOf(prev)
	if nt != pt {
		return false
	}
	return !nt.Comparable() || next == prev
}
