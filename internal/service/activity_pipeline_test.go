package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"supernote-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End to end over the in-process bus: publish an activity message, wait for
// the consumer to persist it, read it back through the note service.
func TestActivityPipeline(t *testing.T) {
	factory := newTestFactory(t)
	alice := seedUser(t, factory, "alice")
	ctx := context.Background()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := NewPublisherService(pubSub, "TEST_ACTIVITY")
	consumer := NewConsumerService(pubSub, "TEST_ACTIVITY", factory)
	require.NoError(t, consumer.Consume(ctx))

	payload, err := json.Marshal(dto.PublishActivityMessage{
		UserId:  alice.Id,
		Action:  "note.created",
		Subject: "Thermodynamics",
		Detail:  "Summarized and saved",
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	noteSvc := NewNoteService(factory, newTestAiService(&stubProvider{}), nil, publisher, nil, nopLogger{})

	var logs []*dto.ActivityLogResponse
	require.Eventually(t, func() bool {
		logs, err = noteSvc.Activity(ctx, alice.Id)
		return err == nil && len(logs) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "note.created", logs[0].Action)
	assert.Equal(t, "Thermodynamics", logs[0].Subject)
	assert.Equal(t, "Summarized and saved", logs[0].Detail)
}
