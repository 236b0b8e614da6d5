package alert

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// SlackAlerter публикует оповещения в канал Slack через chat.postMessage
type SlackAlerter struct {
	client    *slack.Client
	channelID string
}

// NewSlackAlerter создает SlackAlerter. apiURL нужен для тестов и прокси,
// пустое значение означает стандартный адрес Slack API.
func NewSlackAlerter(token, channelID, apiURL string) *SlackAlerter {
	var opts []slack.Option
	if apiURL != "" {
		opts = append(opts, slack.OptionAPIURL(apiURL))
	}

	return &SlackAlerter{
		client:    slack.New(token, opts...),
		channelID: channelID,
	}
}

func (a *SlackAlerter) Alert(ctx context.Context, message string) error {
	_, _, err := a.client.PostMessageContext(ctx, a.channelID, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("failed to post slack message: %w", err)
	}

	return nil
}
