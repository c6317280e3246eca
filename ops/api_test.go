//go:build small_tests || all_tests

package ops

import (
	"testing"

	"github.com/google/uuid"
	"gotest.tools/assert"
)

const baseUrl = "https://api.gridironfc.com"

var matchId = uuid.MustParse("11111111-2222-3333-4444-555555555555")

func TestApiEndpoints(t *testing.T) {
	t.Run("SubscribeUrl", func(t *testing.T) {
		assert.Equal(t, baseUrl+"/v1/subscribe", SubscribeUrl(baseUrl))
	})

	t.Run("SubscribeUrlTrimsBaseUrlTrailingSlash", func(t *testing.T) {
		assert.Equal(t, baseUrl+"/v1/subscribe", SubscribeUrl(baseUrl+"/"))
	})

	t.Run("MatchResultUrl", func(t *testing.T) {
		expected := baseUrl + "/v1/matches/" + matchId.String() + "/result"
		assert.Equal(t, expected, MatchResultUrl(baseUrl, matchId))
	})
}
