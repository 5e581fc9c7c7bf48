//go:build integration

package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	audit "surveygate/pkg/platform/audit"
	"surveygate/pkg/testutil/containers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestStore_RoundTripThroughRedpanda(t *testing.T) {
	broker := containers.NewRedpandaContainer(t)
	const topic = "survey-audit-it"

	client, err := NewClient([]string{broker.SeedBroker}, topic)
	require.NoError(t, err)
	defer client.Close()

	store := New(client, topic)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	require.NoError(t, store.Append(ctx, audit.Event{
		UserID:   77,
		SurveyID: 5,
		Action:   string(audit.EventSurveyAccessDenied),
		Reason:   "not_eligible",
	}))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker.SeedBroker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.Empty(t, fetches.Errors())

	var records []*kgo.Record
	fetches.EachRecord(func(r *kgo.Record) { records = append(records, r) })
	require.Len(t, records, 1)

	var event audit.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &event))
	assert.EqualValues(t, 77, event.UserID)
	assert.Equal(t, "not_eligible", event.Reason)
}
