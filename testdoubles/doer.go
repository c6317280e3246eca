package testdoubles

import (
	"bytes"
	"io"
	"net/http"
)

// Doer is a test double for client.Doer that records every request and plays
// back a scripted response.
type Doer struct {
	Requests      []*http.Request
	RequestBodies []string
	Response      *http.Response
	Err           error

	// OnDo, when set, runs while the request is in flight, before the
	// scripted response is returned. Lets tests exercise behavior that must
	// hold while a submission is still pending.
	OnDo func()
}

func NewDoer() *Doer {
	return &Doer{
		Requests:      make([]*http.Request, 0, 1),
		RequestBodies: make([]string, 0, 1),
	}
}

// RespondWithJson scripts an HTTP response with the given status and body.
func (d *Doer) RespondWithJson(statusCode int, body string) {
	d.Response = &http.Response{
		StatusCode: statusCode,
		Header: http.Header{
			"Content-Type": []string{"application/json"},
		},
		Body: io.NopCloser(bytes.NewBufferString(body)),
	}
}

// RespondWithHtml scripts a non-JSON response, as served by a front-end host.
func (d *Doer) RespondWithHtml(statusCode int, body string) {
	d.Response = &http.Response{
		StatusCode: statusCode,
		Header: http.Header{
			"Content-Type": []string{"text/html; charset=utf-8"},
		},
		Body: io.NopCloser(bytes.NewBufferString(body)),
	}
}

func (d *Doer) Do(req *http.Request) (*http.Response, error) {
	d.Requests = append(d.Requests, req)

	reqBody := ""
	if req.Body != nil {
		payload, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		reqBody = string(payload)
	}
	d.RequestBodies = append(d.RequestBodies, reqBody)

	if d.OnDo != nil {
		d.OnDo()
	}

	if d.Err != nil {
		return nil, d.Err
	}
	return d.Response, nil
}
