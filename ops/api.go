package ops

import (
	"strings"

	"github.com/google/uuid"
)

const (
	ApiPathSubscribe   = "/v1/subscribe"
	ApiPrefixMatches   = "/v1/matches/"
	ApiSuffixMatchPoll = "/result"
)

func SubscribeUrl(apiBaseUrl string) string {
	return makeApiUrl(apiBaseUrl, ApiPathSubscribe)
}

func MatchResultUrl(apiBaseUrl string, matchId uuid.UUID) string {
	return makeApiUrl(
		apiBaseUrl, ApiPrefixMatches+matchId.String()+ApiSuffixMatchPoll,
	)
}

func makeApiUrl(baseUrl, path string) string {
	sb := strings.Builder{}
	sb.WriteString(strings.TrimSuffix(baseUrl, "/"))
	sb.WriteString(path)
	return sb.String()
}
