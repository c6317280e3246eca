package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gridironfc/signup/config"
	"github.com/gridironfc/signup/ops"
)

// User-facing messages for outcomes the server didn't supply a message for.
const (
	CheckConnectionMessage = "Unable to reach the server. Please check " +
		"your connection, disable any ad or content blockers for this " +
		"site, and try again."
	UnexpectedResponseMessage = "The signup service returned an unexpected " +
		"response. Please contact support if this keeps happening."
	NotConfiguredMessage = "The signup service is not configured " +
		"correctly. Please contact support."
	GenericFailureMessage = "Subscribing failed due to a server error. " +
		"Please try again later."
)

// Doer wraps the Do method of [http.Client].
//
// This interface allows for unit testing code that issues HTTP requests
// without standing up a server.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client submits subscription requests and classifies their responses.
//
// Every response, malformed or not, maps onto exactly one ops.Outcome; no
// error escapes unclassified.
type Client struct {
	Doer        Doer
	Resolver    config.UrlResolver
	CurrentTime func() time.Time
	Log         *log.Logger
}

// Subscribe POSTs one subscription request and classifies the result.
//
// The returned Outcome always carries a displayable message. The returned
// error, when non nil, wraps one of the ops sentinel errors for callers that
// branch on the failure class; it never carries information the Outcome
// doesn't already express to the user.
//
// Classification precedence, first match wins:
//
//  1. Transport failure before any response: connectivity outcome.
//  2. Success status with an unparseable body: configuration outcome, logged
//     as a configuration problem rather than a user problem.
//  3. Non-success status with a JSON message: that message verbatim.
//  4. Non-success, non-JSON 405: fixed not-configured message. A bare 405 is
//     how a base URL pointed at the static front end manifests, so it is
//     treated as a deployment signal, not a generic error.
//  5. Any other non-success response: generic failure message.
//  6. Success status, success==true: subscribed (or the result the optional
//     status field reports); success==false: failed with the server message.
func (c *Client) Subscribe(
	ctx context.Context, address string, gdprConsent bool, tag string,
) (outcome ops.Outcome, err error) {
	reqId := uuid.NewString()
	body := &SubscribeRequest{
		Email:       address,
		GdprConsent: gdprConsent,
		Timestamp:   c.CurrentTime().UTC().Format(TimestampFormat),
		Tag:         tag,
	}

	res, resBody, err := c.post(ctx, reqId, body)
	if err != nil {
		outcome = ops.Outcome{Result: ops.Failed, Message: CheckConnectionMessage}
		err = fmt.Errorf("%w: %s", ops.ErrTransport, err)
		c.Log.Printf("%s: transport failure: %s", reqId, err)
		return
	}

	if res.StatusCode < http.StatusOK ||
		res.StatusCode >= http.StatusMultipleChoices {
		return c.classifyFailure(reqId, res, resBody)
	}
	return c.classifySuccess(reqId, resBody)
}

func (c *Client) post(
	ctx context.Context, reqId string, body *SubscribeRequest,
) (res *http.Response, resBody []byte, err error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return
	}

	endpoint := ops.SubscribeUrl(c.Resolver.BaseUrl())
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, endpoint, bytes.NewReader(payload),
	)
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	c.Log.Printf("%s: POST %s tag=%s", reqId, endpoint, body.Tag)
	if res, err = c.Doer.Do(req); err != nil {
		return
	}
	defer res.Body.Close()

	if resBody, err = io.ReadAll(res.Body); err != nil {
		res = nil
	}
	return
}

func (c *Client) classifyFailure(
	reqId string, res *http.Response, resBody []byte,
) (ops.Outcome, error) {
	response := &SubscribeResponse{}

	if json.Unmarshal(resBody, response) == nil && response.Message != "" {
		c.Log.Printf(
			"%s: server rejected request: %d: %s",
			reqId, res.StatusCode, response.Message,
		)
		outcome := ops.Outcome{Result: ops.Failed, Message: response.Message}
		return outcome, fmt.Errorf(
			"%w: %d: %s", ops.ErrServerRejected, res.StatusCode, response.Message,
		)
	}

	if res.StatusCode == http.StatusMethodNotAllowed {
		c.logMisconfigurationDiagnostic(reqId)
		outcome := ops.Outcome{Result: ops.Failed, Message: NotConfiguredMessage}
		return outcome, fmt.Errorf(
			"%w: unexpected 405 from subscribe endpoint", ops.ErrConfiguration,
		)
	}

	c.Log.Printf("%s: request failed: %d", reqId, res.StatusCode)
	outcome := ops.Outcome{Result: ops.Failed, Message: GenericFailureMessage}
	return outcome, fmt.Errorf(
		"%w: %d %s",
		ops.ErrServerRejected, res.StatusCode, http.StatusText(res.StatusCode),
	)
}

func (c *Client) classifySuccess(
	reqId string, resBody []byte,
) (ops.Outcome, error) {
	response := &SubscribeResponse{}

	if err := json.Unmarshal(resBody, response); err != nil {
		c.Log.Printf(
			"%s: configuration problem: response was not valid JSON: %s",
			reqId, err,
		)
		outcome := ops.Outcome{
			Result: ops.Failed, Message: UnexpectedResponseMessage,
		}
		return outcome, fmt.Errorf("%w: %s", ops.ErrConfiguration, err)
	}

	if !response.Success {
		c.Log.Printf("%s: server reported failure: %s", reqId, response.Message)
		outcome := ops.Outcome{Result: ops.Failed, Message: response.Message}
		return outcome, fmt.Errorf(
			"%w: %s", ops.ErrServerRejected, response.Message,
		)
	}

	result := ops.Subscribed
	switch response.Status {
	case StatusAlreadySubscribed:
		result = ops.AlreadySubscribed
	case StatusPendingConfirmation:
		result = ops.PendingConfirmation
	}
	c.Log.Printf("%s: result: %s", reqId, result)
	return ops.Outcome{Result: result, Message: response.Message}, nil
}

// A bare 405 usually means the configured base URL points at the static web
// deployment, whose hosts answer every unknown POST that way. Emit actionable
// detail for operators, but only in production and only when the URL matches
// a known front-end host pattern, so development runs aren't spammed with
// deployment advice.
func (c *Client) logMisconfigurationDiagnostic(reqId string) {
	baseUrl := c.Resolver.BaseUrl()

	if c.Resolver.Production() && config.LooksLikeFrontendHost(baseUrl) {
		c.Log.Printf(
			"%s: SIGNUP_API_URL (%s) appears to point at the front-end "+
				"deployment, not the API; update it to the API host",
			reqId, baseUrl,
		)
	}
}
