package failure

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"strings"

	"ecoparking/shared/constant"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Kind tells the caller what it can do about a failure.
type Kind int

const (
	// KindUser is bad input, a missing entity or a rule violation. Report it, do not retry.
	KindUser Kind = iota + 1
	// KindRetryable is a transient infrastructure problem.
	KindRetryable
	// KindCorruption means stored data breaks an invariant.
	KindCorruption
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindRetryable:
		return "retryable"
	case KindCorruption:
		return "corruption"
	default:
		return "unknown"
	}
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter", Kind: KindUser}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter", Kind: KindUser}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions", Kind: KindUser}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource", Kind: KindUser}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Kind:    KindUser,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindUser,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
		Kind:    KindUser,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Kind:    KindRetryable,
		}
	}

	return nil
}

// Unavailable returns a retryable Failure for a dependency that could not be reached.
func Unavailable(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
			Kind:    KindRetryable,
		}
	}

	return nil
}

// Corrupted returns a Failure for stored data that violates an invariant.
func Corrupted(msg string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: msg,
		Kind:    KindCorruption,
	}
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
		Kind:    KindUser,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		Kind:    KindUser,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Kind:    KindUser,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
		Kind:    KindUser,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error. Plain errors are treated as retryable.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) && fail.Kind != 0 {
		return fail.Kind
	}

	return KindRetryable
}

func IsUserError(err error) bool {
	return err != nil && GetKind(err) == KindUser
}

func IsRetryable(err error) bool {
	return err != nil && GetKind(err) == KindRetryable
}

func IsCorruption(err error) bool {
	return err != nil && GetKind(err) == KindCorruption
}

// FromStore classifies a driver error returned by the record store.
func FromStore(err error) error {
	if err == nil {
		return nil
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation:
			return Conflict("record already exists")
		case constant.PqErrorCodeCheckViolation, constant.PqErrorCodeFkViolation, "23502", "22001":
			return BadRequestFromString(pqErr.Message)
		case "08000", "08003", "08006", "57P01", "53300":
			return Unavailable(err)
		}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return Conflict("record already exists")
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return BadRequestFromString(liteErr.Error())
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return Unavailable(err)
		}
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr) {
		return Unavailable(err)
	}

	// database/sql reports undecodable column values only as text
	if strings.Contains(err.Error(), "sql: Scan error") {
		return Corrupted(err.Error())
	}

	return err
}
