package transport

import (
	"context"
	"fmt"
)

// Request is a fully formed HTTP POST.
type Request struct {
	URL    string
	Header map[string]string
	Body   string
}

type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// IsSuccess reports a 2xx status code.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport sends one request and returns the raw response. It does not
// interpret status codes.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportError wraps network and IO failures.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
