package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type mailpitMessages struct {
	Total    int `json:"total"`
	Messages []struct {
		Subject string `json:"Subject"`
		To      []struct {
			Address string `json:"Address"`
		} `json:"To"`
		Attachments int `json:"Attachments"`
	} `json:"messages"`
}

// mustStartMailpitContainer starts a throwaway SMTP server and returns the
// SMTP port and the base URL of its HTTP API.
func mustStartMailpitContainer(t *testing.T) (string, int, string) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "axllent/mailpit:latest",
			ExposedPorts: []string{"1025/tcp", "8025/tcp"},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("1025/tcp"),
				wait.ForListeningPort("8025/tcp"),
			).WithDeadline(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to start mailpit container")
		t.Fatalf("could not start mailpit container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to terminate mailpit container")
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	smtpPort, err := container.MappedPort(ctx, "1025/tcp")
	require.NoError(t, err)
	apiPort, err := container.MappedPort(ctx, "8025/tcp")
	require.NoError(t, err)

	port, err := strconv.Atoi(smtpPort.Port())
	require.NoError(t, err)

	log.Info().
		Str("host", host).
		Int("smtp_port", port).
		Msg("mailpit container started successfully")

	return host, port, fmt.Sprintf("http://%s:%s", host, apiPort.Port())
}

func TestSMTPSender_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping SMTP integration test in short mode")
	}

	host, port, apiURL := mustStartMailpitContainer(t)

	sender, err := NewSMTPSender(SMTPConfig{Host: host, Port: port, TLS: "none"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, sender.Verify(ctx))
	require.NoError(t, sender.Send(ctx, testMessage()))

	resp, err := http.Get(apiURL + "/api/v1/messages")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got mailpitMessages
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	require.Equal(t, 1, got.Total)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "Test Subject", got.Messages[0].Subject)
	require.Len(t, got.Messages[0].To, 1)
	assert.Equal(t, "user@example.com", got.Messages[0].To[0].Address)
	assert.Equal(t, 1, got.Messages[0].Attachments)
}

func TestSMTPSender_VerifyUnreachable(t *testing.T) {
	sender, err := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: 1, TLS: "none"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = sender.Verify(ctx)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "smtp", pe.Provider)
}
