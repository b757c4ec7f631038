package client

import "errors"

var (
	// ErrClosed performs any operation on the closed connection will return this error.
	ErrClosed = errors.New("elika client: connection is closed")

	// ErrCmdTimeout a synchronous wait elapsed before the reply arrived. The
	// request is cancelled client-side; the server still executes it.
	ErrCmdTimeout = errors.New("elika client: command timed out")

	// ErrCmdInterrupted a blocking wait was interrupted before completion.
	ErrCmdInterrupted = errors.New("elika client: command interrupted")

	// ErrUnsupportedScriptOutput the requested script output type is not in
	// the closed enumeration.
	ErrUnsupportedScriptOutput = errors.New("elika client: unsupported script output type")
)

// ServerError is an error reply reported by the remote peer. Server errors
// are never retried; they surface on the affected request only.
type ServerError string

func (e ServerError) Error() string {
	return string(e)
}
