package models

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Classification errors
var (
	ErrEmptyUpload           = errors.New("no file supplied")
	ErrDecode                = errors.New("uploaded bytes are not a valid image")
	ErrClassifierUnavailable = errors.New("classifier artifact is not loaded")
)

// Payment errors
var (
	ErrInvalidAmount        = errors.New("amount must be a positive integer")
	ErrPaymentNotConfigured = errors.New("payment provider is not configured")
	ErrPaymentNotVerified   = errors.New("payment could not be verified")
)

// Mail errors
var (
	ErrMailNotConfigured = errors.New("mail sender is not configured")
)
