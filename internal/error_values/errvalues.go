package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrOwnerNotFound    = errors.New("owner of the row doesn't exists")
	ErrValidation       = errors.New("validation error")

	ErrProfileNotFound = errors.New("profile doesn't exists")

	// Dashboard taxonomy
	ErrUnauthenticated = errors.New("user is not authenticated")
	ErrSourceDegraded  = errors.New("data source degraded")
	ErrPersistence     = errors.New("persistence failure")
	ErrAggregation     = errors.New("dashboard aggregation failure")
	ErrInvalidLogData  = errors.New("invalid log data")
)
