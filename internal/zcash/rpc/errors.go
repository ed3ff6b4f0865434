package rpc

import "fmt"

// TransportError wraps a connection-level failure: the node could not be
// reached, timed out, or returned an unparseable response. Safe to retry on
// the next sync tick.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc transport %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError is a structured error envelope returned by the node.
type ProtocolError struct {
	Method  string
	Code    int
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("rpc %s: node error %d: %s", e.Method, e.Code, e.Message)
}
