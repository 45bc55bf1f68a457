package request

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Endpoint is the Brickset v3 web service root. Method names are appended to it.
const Endpoint = "https://brickset.com/api/v3.asmx/"

// MaxPageSize is the largest page the getSets method will return.
const MaxPageSize = 500

// Operation is a single Brickset remote procedure with its parameters bound.
type Operation interface {
	// MethodName returns the remote method, e.g. "getSets".
	MethodName() string
	// EncodeQuery appends the operation's parameters to q in wire order.
	EncodeQuery(q *Query) error
}

type Pair struct {
	Key   string
	Value string
}

type WarningCode string

const (
	WarningPageSizeOutOfRange WarningCode = "page-size-out-of-range"
	WarningUserHashRequired   WarningCode = "user-hash-required"
)

// Warning is advisory: the request is still built and may be sent.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// EncodeError is returned when a parameter bag cannot be serialized.
type EncodeError struct {
	Method string
	Param  string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s parameter %q: %v", e.Method, e.Param, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Query accumulates ordered key-value pairs and warnings for one operation.
type Query struct {
	method   string
	pairs    []Pair
	warnings []Warning
}

func (q *Query) Add(key, value string) *Query {
	q.pairs = append(q.pairs, Pair{Key: key, Value: value})
	return q
}

// AddJSON appends v serialized as compact JSON under key.
func (q *Query) AddJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &EncodeError{Method: q.method, Param: key, Err: err}
	}
	q.Add(key, string(data))
	return nil
}

func (q *Query) Warn(code WarningCode, format string, args ...any) {
	q.warnings = append(q.warnings, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Request is the encoded form of an Operation.
type Request struct {
	Method   string
	Pairs    []Pair
	Warnings []Warning
}

// Encode turns op into its method name and ordered parameter pairs. It never
// touches the network.
func Encode(op Operation) (*Request, error) {
	q := &Query{method: op.MethodName()}
	if err := op.EncodeQuery(q); err != nil {
		return nil, err
	}

	return &Request{
		Method:   q.method,
		Pairs:    q.pairs,
		Warnings: q.warnings,
	}, nil
}

// Body renders the pairs as an application/x-www-form-urlencoded body,
// preserving their order.
func (r *Request) Body() string {
	var sb strings.Builder
	for i, p := range r.Pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// Get returns the first value stored under key.
func (r *Request) Get(key string) (string, bool) {
	for _, p := range r.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// MethodURL joins base and the method name. This is where the POST goes.
func (r *Request) MethodURL(base string) (string, error) {
	u, err := r.methodURL(base)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// URL renders the request with every parameter in the query string.
// Useful for diagnostics; sending parameters in the body is preferred.
func (r *Request) URL(base string) (string, error) {
	u, err := r.methodURL(base)
	if err != nil {
		return "", err
	}
	u.RawQuery = r.Body()
	return u.String(), nil
}

func (r *Request) methodURL(base string) (*url.URL, error) {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	root, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", base, err)
	}

	return root.ResolveReference(&url.URL{Path: r.Method}), nil
}

// LogWarnings emits the request's warnings at warn level.
func (r *Request) LogWarnings() {
	for _, w := range r.Warnings {
		log.Warnf("⚠️ %s: %s", r.Method, w.Message)
	}
}
