package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// OTPMailFacade publishes OTP delivery events for the notification worker
// that sends the actual emails.
type OTPMailFacade struct {
	writer KafkaWriter
}

// NewOTPMailFacade creates a new facade with a Kafka writer.
func NewOTPMailFacade(writer KafkaWriter) *OTPMailFacade {
	return &OTPMailFacade{writer: writer}
}

// SendOTPEmail publishes an OTP mail event keyed by recipient address.
func (f *OTPMailFacade) SendOTPEmail(ctx context.Context, email, code string, ttl time.Duration) error {
	if f.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping OTP mail", "email", email)
		return nil
	}

	event := models.OTPEmail{
		Email:      email,
		Code:       code,
		TTLMinutes: int(ttl.Minutes()),
		IssuedAt:   time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(email),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	logger.Log.Infow("OTP mail event published", "email", email)
	return nil
}
