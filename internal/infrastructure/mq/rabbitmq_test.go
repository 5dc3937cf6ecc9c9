package mq

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"file-registry-api/config"
	"file-registry-api/internal/domain/event"
)

func TestRabbitMQ_PublishNeverBlocks(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := New(config.MQ{}, zap.New(core))

	owner := uuid.New()
	for i := 0; i < bufferSize; i++ {
		r.Publish(event.New(event.FileUploaded, owner, nil))
	}
	require.Equal(t, 0, logs.Len())
	assert.Len(t, r.in, bufferSize)

	dropped := event.New(event.FileDeleted, owner, nil)
	r.Publish(dropped)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, string(event.FileDeleted), fields["action"])
	assert.Equal(t, dropped.ID.String(), fields["event_id"])
	assert.Len(t, r.in, bufferSize)
}

func TestNop_Publish(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop{}.Publish(event.New(event.UserRegistered, uuid.New(), event.UserPayload{Username: "alice"}))
	})
}
