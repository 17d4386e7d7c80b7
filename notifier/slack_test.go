package notifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rench/blog/logger"
)

func TestSlack_DisabledWithoutToken(t *testing.T) {
	s := NewSlack("", logger.Nop())

	assert.False(t, s.Enabled())
	assert.NoError(t, s.SendMsg(context.Background(), "C123", "deployed"))
}

func TestSlack_EnabledWithToken(t *testing.T) {
	assert.True(t, NewSlack("xoxb-test", logger.Nop()).Enabled())
}

func TestSlack_MissingChannelIsNoop(t *testing.T) {
	s := NewSlack("xoxb-test", logger.Nop())
	assert.NoError(t, s.SendMsg(context.Background(), "", "deployed"))
}
