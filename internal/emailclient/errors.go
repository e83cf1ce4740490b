package emailclient

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrDispatch is matched (errors.Is) by every error returned from SendEmail.
var ErrDispatch = errors.New("email dispatch failed")

// Kind classifies why a send failed.
type Kind int

const (
	// KindRequest means the request could not be built, e.g. a malformed base URL.
	KindRequest Kind = iota
	// KindTransport covers DNS, connection and TLS failures.
	KindTransport
	// KindTimeout means no response arrived within the client timeout.
	KindTimeout
	// KindStatus means the provider answered with a non-2xx status.
	KindStatus
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindStatus:
		return "status"
	default:
		return "unknown"
	}
}

// DispatchError is the uniform failure returned by SendEmail. StatusCode is only
// set for KindStatus.
type DispatchError struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *DispatchError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("email dispatch failed: provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("email dispatch failed (%s): %v", e.Kind, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

func (e *DispatchError) Is(target error) bool { return target == ErrDispatch }

// classifyTransportError separates timeouts from other transport failures.
// http.Client reports its own Timeout as a *url.Error satisfying net.Error.
func classifyTransportError(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindTransport
}
