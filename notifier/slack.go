package notifier

import (
	"context"

	"github.com/slack-go/slack"

	"github.com/rench/blog/logger"
)

type Slack struct {
	api *slack.Client
	log logger.Logger
}

// NewSlack returns a notifier that silently drops messages when token is empty.
func NewSlack(token string, log logger.Logger) *Slack {
	s := &Slack{log: log}
	if token != "" {
		s.api = slack.New(token)
	}
	return s
}

func (s *Slack) Enabled() bool {
	return s != nil && s.api != nil
}

func (s *Slack) SendMsg(
	ctx context.Context,
	channelID string,
	text string,
) error {
	if !s.Enabled() || channelID == "" {
		s.log.Debug("slack notifier disabled, dropping message: %s", text)
		return nil
	}

	_, _, err := s.api.PostMessageContext(
		ctx,
		channelID,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		s.log.Error("failed to send message %v to Slack channel: %s", err, channelID)
		return err
	}
	s.log.Info("message sent successfully to Slack channel: %s", channelID)

	return nil
}
