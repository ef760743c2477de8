package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidUserInput = errors.New("invalid user data")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrSessionNotFound = errors.New("session not found")
var ErrForbidden = errors.New("access forbidden")
