package testutil

import (
	"io"
	"net/http"
	"strings"
)

// RoundTripperFunc adapts a function into an http.RoundTripper.
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Response builds an in-memory response with the given status and body.
func Response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// StaticClient returns an http.Client whose transport always answers with status and body.
func StaticClient(status int, body string) *http.Client {
	return &http.Client{Transport: RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return Response(status, body), nil
	})}
}
