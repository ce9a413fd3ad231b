package message

import (
	"context"
	"errors"
)

// Service errors
var (
	ErrMalformedBody      = errors.New("message api response is not a JSON document")
	ErrUnsupportedMessage = errors.New("message api message field is an object or array")
)

// Service fetches the greeting exposed by the API server.
type Service interface {
	GetMessage(ctx context.Context) (string, error)
}
