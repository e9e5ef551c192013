package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	require.Nil(t, parseTag(nil))
	require.Equal(t, []string{"kind:buy", "status:ok"}, parseTag([]string{"kind", "buy", "status", "ok"}))
	require.Panics(t, func() { parseTag([]string{"odd"}) })
}

func TestLogClientFallback(t *testing.T) {
	Configure(Config{Env: "test", App: "nftmarket"})
	require.Equal(t, 8125, currentConfig().DatadogPort)

	m := New("unittest")
	require.NotPanics(t, func() {
		m.BumpSum("flow.buy.success", 1, "kind", "buy")
		m.BumpAvg("listing.size", 3)
		m.BumpHistogram("listing.size", 3)
		m.BumpTime("listing.assemble.time").End()
	})
	for _, c := range ddClients {
		require.IsType(t, &LogClient{}, c)
	}
}

func TestOddTagsDoNotEscape(t *testing.T) {
	m := New("unittest")
	require.NotPanics(t, func() { m.BumpSum("bad", 1, "lonely") })
}
