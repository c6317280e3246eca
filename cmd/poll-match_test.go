//go:build small_tests || all_tests

package cmd

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/gridironfc/signup/match"
	"github.com/gridironfc/signup/testdoubles"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

var testMatchId = uuid.MustParse("99999999-8888-7777-6666-555555555555")

type finishedMatchDoer struct{}

func (finishedMatchDoer) Do(req *http.Request) (*http.Response, error) {
	body := `{"matchId": "` + testMatchId.String() + `",` +
		` "status": "finished", "homeScore": 21, "awayScore": 17,` +
		` "message": "Final whistle!"}`
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}, nil
}

func TestRunPollMatch(t *testing.T) {
	t.Run("PrintsFinalScore", func(t *testing.T) {
		_, stdout, stderr := SetupCommandForTesting(pollMatchCmd)
		poller := &match.Poller{
			Doer:     finishedMatchDoer{},
			Resolver: &testdoubles.UrlResolver{Url: "https://api.gridironfc.com"},
			Log:      log.New(stderr, "", 0),
		}

		err := runPollMatch(pollMatchCmd, poller, testMatchId)

		assert.NilError(t, err)
		assert.Assert(t, is.Contains(stdout.String(), "finished: home 21 - away 17"))
		assert.Assert(t, is.Contains(stdout.String(), "Final whistle!"))
	})
}

func TestPollMatchRejectsMalformedMatchId(t *testing.T) {
	SetupCommandForTesting(pollMatchCmd)

	err := pollMatchCmd.RunE(pollMatchCmd, []string{"not-a-uuid"})

	assert.ErrorContains(t, err, "invalid match id: not-a-uuid")
}
