package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrHRAccessRequired = errors.New("only HR can perform this action")
	ErrEmployeeNotOwned = errors.New("employee does not belong to this HR")
)
