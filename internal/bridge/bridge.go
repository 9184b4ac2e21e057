package bridge

import (
	"context"
	"errors"
)

var (
	ErrBadStatus    = errors.New("host answered with a non-2xx status")
	ErrHostRejected = errors.New("host rejected the request")
)

//go:generate go run go.uber.org/mock/mockgen -source=bridge.go -destination=mocks/mock.go

// Caller sends one named event with a JSON payload to the host and decodes
// the answer into out. out may be nil when the answer is not needed.
type Caller interface {
	Call(ctx context.Context, event string, payload any, out any) error
}
