// Package services holds the storefront's use cases. Every operation takes
// the request's user explicitly; nothing reads ambient session state.
package services

import (
	"errors"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/junaidrashid-git/storefront/services")

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUnknownList        = errors.New("unknown list")
)
