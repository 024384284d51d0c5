package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mbarnoyev/skill-exchange/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKafkaWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeKafkaWriter) Close() error { return nil }

func TestOTPMailFacade_SendOTPEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes an event keyed by email", func(t *testing.T) {
		writer := &fakeKafkaWriter{}
		facade := NewOTPMailFacade(writer)

		err := facade.SendOTPEmail(ctx, "alice@example.com", "123456", 10*time.Minute)
		require.NoError(t, err)
		require.Len(t, writer.messages, 1)

		msg := writer.messages[0]
		assert.Equal(t, []byte("alice@example.com"), msg.Key)

		var event models.OTPEmail
		require.NoError(t, json.Unmarshal(msg.Value, &event))
		assert.Equal(t, "alice@example.com", event.Email)
		assert.Equal(t, "123456", event.Code)
		assert.Equal(t, 10, event.TTLMinutes)
		assert.NotZero(t, event.IssuedAt)
	})

	t.Run("broker failure propagates", func(t *testing.T) {
		writer := &fakeKafkaWriter{err: errors.New("broker unreachable")}
		facade := NewOTPMailFacade(writer)

		err := facade.SendOTPEmail(ctx, "alice@example.com", "123456", 10*time.Minute)
		assert.Error(t, err)
	})

	t.Run("missing writer is a no-op", func(t *testing.T) {
		facade := NewOTPMailFacade(nil)

		err := facade.SendOTPEmail(ctx, "alice@example.com", "123456", 10*time.Minute)
		assert.NoError(t, err)
	})
}
