package service

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrPhoneTaken   = errors.New("phone already registered")
	ErrPhoneLinked  = errors.New("phone linked to another telegram account")
	ErrTestNotFound = errors.New("test not found")
	ErrNoOptions    = errors.New("question needs at least two options")
	ErrNoCorrect    = errors.New("question needs at least one correct option")
)
