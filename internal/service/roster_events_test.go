package service

import (
	"context"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"mergington.dev/backend/internal/infra"
)

func TestRosterEventsNilSafe(t *testing.T) {
	var events *RosterEvents
	events.Publish(context.Background(), RosterEventSignup, "Chess Club", "a@mergington.edu")
	NewRosterEvents(nil).Publish(context.Background(), RosterEventSignup, "Chess Club", "a@mergington.edu")
}

func TestRosterEventsJetStream(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()
	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)

	nc, err := nats.Connect(srv.ClientURL())
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	js, err := nc.JetStream()
	require.NoError(t, err)
	_, err = js.AddStream(&nats.StreamConfig{
		Name:       infra.RosterStreamName,
		Subjects:   []string{infra.RosterSubjectPrefix + "*"},
		Duplicates: time.Minute,
	})
	require.NoError(t, err)

	sub, err := js.SubscribeSync(infra.RosterSubjectPrefix + "*")
	require.NoError(t, err)

	NewRosterEvents(js).Publish(context.Background(), RosterEventUnregister, "Gym Class", "john@mergington.edu")

	msg, err := sub.NextMsg(time.Second * 5)
	require.NoError(t, err)
	assert.Equal(t, "ROSTER.unregister", msg.Subject)
	assert.NotEmpty(t, msg.Header.Get(nats.MsgIdHdr))
	assert.Equal(t, "unregister", gjson.GetBytes(msg.Data, "type").String())
	assert.Equal(t, "Gym Class", gjson.GetBytes(msg.Data, "activity").String())
	assert.Equal(t, "john@mergington.edu", gjson.GetBytes(msg.Data, "email").String())
}
