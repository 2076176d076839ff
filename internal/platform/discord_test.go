package platform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelLimitPayloadSerializesZero(t *testing.T) {
	// A limit of zero means unlimited and must reach Discord. An
	// omitempty-tagged field would drop it from the PATCH body.
	body, err := json.Marshal(channelLimitPayload{UserLimit: 0})
	require.NoError(t, err)
	require.JSONEq(t, `{"user_limit":0}`, string(body))

	body, err = json.Marshal(channelLimitPayload{UserLimit: 4})
	require.NoError(t, err)
	require.JSONEq(t, `{"user_limit":4}`, string(body))
}
