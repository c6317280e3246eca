package match

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gridironfc/signup/client"
	"github.com/gridironfc/signup/config"
	"github.com/gridironfc/signup/ops"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
	StatusFailed     Status = "failed"
)

// Terminal reports whether polling should stop on this status.
func (s Status) Terminal() bool {
	return s == StatusFinished || s == StatusFailed
}

// Result is the JSON body of the match result endpoint.
type Result struct {
	MatchId   uuid.UUID `json:"matchId"`
	Status    Status    `json:"status"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
	Message   string    `json:"message,omitempty"`
}

const (
	DefaultInterval = time.Second
	DefaultCeiling  = 10 * time.Second
)

// ErrPollTimeout indicates the match never reached a terminal status before
// the polling ceiling.
const ErrPollTimeout = ops.SentinelError(
	"match result not ready before deadline",
)

// Poller repeatedly fetches a match result until it is terminal.
//
// Interval and Ceiling default to one second and ten seconds. NewTicker is a
// test seam; when nil, [time.NewTicker] is used.
type Poller struct {
	Doer      client.Doer
	Resolver  config.UrlResolver
	Interval  time.Duration
	Ceiling   time.Duration
	NewTicker func(d time.Duration) (<-chan time.Time, func())
	Log       *log.Logger
}

// Poll fetches the match result on an interval until the status is terminal
// or the ceiling elapses, whichever comes first.
//
// On timeout it returns the last result seen, which may be nil, together with
// ErrPollTimeout. Individual fetch failures are logged and polling continues;
// a match mid-simulation commonly answers 404 before its first tick. The
// ticker is stopped on every exit path.
func (p *Poller) Poll(
	ctx context.Context, matchId uuid.UUID,
) (result *Result, err error) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ceiling := p.Ceiling
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	attempts := int(ceiling / interval)
	if attempts < 1 {
		attempts = 1
	}

	ticks, stop := p.newTicker(interval)
	defer stop()

	for attempt := 1; ; attempt++ {
		next, fetchErr := p.fetch(ctx, matchId)
		if fetchErr != nil {
			p.Log.Printf("match %s: poll failed: %s", matchId, fetchErr)
		} else {
			result = next
			if result.Status.Terminal() {
				return result, nil
			}
		}

		if attempt >= attempts {
			return result, ErrPollTimeout
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-ticks:
		}
	}
}

func (p *Poller) newTicker(d time.Duration) (<-chan time.Time, func()) {
	if p.NewTicker != nil {
		return p.NewTicker(d)
	}
	ticker := time.NewTicker(d)
	return ticker.C, ticker.Stop
}

func (p *Poller) fetch(
	ctx context.Context, matchId uuid.UUID,
) (result *Result, err error) {
	endpoint := ops.MatchResultUrl(p.Resolver.BaseUrl(), matchId)
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, endpoint, nil,
	)
	if err != nil {
		return
	}

	res, err := p.Doer.Do(req)
	if err != nil {
		return
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	result = &Result{}
	if err = json.Unmarshal(body, result); err != nil {
		result = nil
	}
	return
}
