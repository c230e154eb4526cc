package upstream

import (
	"encoding/json"
	"errors"
	"net/http"
)

// RequestError is the one failure kind the admin API produces. Transport
// failures, validation failures and missing records all end up here; Message
// is what the operator gets to see.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Message returns the operator-facing text of err.
func Message(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return err.Error()
}

type errorBody struct {
	Error string `json:"error"`
}

func statusError(op string, code int, body []byte) *RequestError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Error == "" {
		return &RequestError{Op: op, StatusCode: code, Message: "request failed: " + http.StatusText(code)}
	}
	return &RequestError{Op: op, StatusCode: code, Message: eb.Error}
}
