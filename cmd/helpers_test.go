package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grimm.is/palisade/internal/logging"
	"grimm.is/palisade/internal/ufw"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logging.LevelDebug, parseLevel("debug"))
	assert.Equal(t, logging.LevelWarn, parseLevel("warn"))
	assert.Equal(t, logging.LevelError, parseLevel("error"))
	assert.Equal(t, logging.LevelInfo, parseLevel("info"))
	// config validation rejects anything else before it gets here, but the
	// fallback still has to be sane
	assert.Equal(t, logging.LevelInfo, parseLevel("verbose"))
}

func TestListingLines(t *testing.T) {
	rules := ufw.RuleSet{
		{Ordinal: 1, Action: ufw.ActionAllow, Direction: ufw.DirectionIn, Protocol: ufw.ProtocolTCP, Port: "22"},
		{Ordinal: 4, Action: ufw.ActionDeny, Direction: ufw.DirectionIn, Source: "10.0.0.0/8"},
	}

	plain := listingLines(rules, false)
	assert.NotContains(t, plain[0], "[ 1]")
	assert.Contains(t, plain[0], "22/tcp")

	numbered := listingLines(rules, true)
	assert.Contains(t, numbered[0], "[ 1]")
	assert.Contains(t, numbered[1], "[ 4]")
	assert.Contains(t, numbered[1], "10.0.0.0/8")
}
