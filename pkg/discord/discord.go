package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func (d *implDiscord) webhookURL() string {
	return fmt.Sprintf("%s/%s/%s", webhookBaseURL, d.webhook.ID, d.webhook.Token)
}

// send posts a payload to the webhook with retry.
func (d *implDiscord) send(ctx context.Context, payload WebhookPayload) error {
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}
	if payload.AvatarURL == "" {
		payload.AvatarURL = d.config.DefaultAvatarURL
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	var lastErr error
	for i := 0; i <= d.config.RetryCount; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode < 300 {
				return nil
			}
			lastErr = fmt.Errorf("%w: status %d", errSendFailed, resp.StatusCode)
		} else {
			lastErr = err
		}

		if i < d.config.RetryCount {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}
	}

	d.l.Warnf(ctx, "discord.send: giving up after %d retries: %v", d.config.RetryCount, lastErr)
	return lastErr
}

func (d *implDiscord) buildEmbed(options MessageOptions) Embed {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	return Embed{
		Title:       options.Title,
		Description: options.Description,
		Color:       embedColor(options.Type),
		Timestamp:   ts.Format(time.RFC3339),
		Footer:      options.Footer,
		Author:      options.Author,
		Fields:      options.Fields,
		Thumbnail:   options.Thumbnail,
		Image:       options.Image,
	}
}

// SendMessage sends a plain text message.
func (d *implDiscord) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{Content: content})
}

// SendEmbed sends a rich embed message.
func (d *implDiscord) SendEmbed(ctx context.Context, options MessageOptions) error {
	return d.send(ctx, WebhookPayload{
		Username:  options.Username,
		AvatarURL: options.AvatarURL,
		Embeds:    []Embed{d.buildEmbed(options)},
	})
}

// SendError sends an error message with the error detail attached.
func (d *implDiscord) SendError(ctx context.Context, title, description string, err error) error {
	options := MessageOptions{
		Type:        MessageTypeError,
		Level:       LevelHigh,
		Title:       title,
		Description: description,
	}
	if err != nil {
		options.Fields = []EmbedField{{Name: "Error", Value: err.Error()}}
	}
	return d.SendEmbed(ctx, options)
}

// SendSuccess sends a success message.
func (d *implDiscord) SendSuccess(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeSuccess,
		Title:       title,
		Description: description,
	})
}

// SendWarning sends a warning message.
func (d *implDiscord) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeWarning,
		Level:       LevelNormal,
		Title:       title,
		Description: description,
	})
}

// SendInfo sends an informational message.
func (d *implDiscord) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
	})
}

// ReportBug reports an unexpected failure to the bug channel.
func (d *implDiscord) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Level:       LevelUrgent,
		Title:       "Bug Report",
		Description: message,
	})
}

// Close releases idle connections.
func (d *implDiscord) Close() error {
	d.client.CloseIdleConnections()
	return nil
}
