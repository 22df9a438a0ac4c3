// Package jetstream holds helpers for publishing JSON messages to NATS JetStream.
package jetstream

import (
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/oklog/ulid/v2"
)

// NewMsg encodes v as JSON into a message for subject. The returned id is set as
// the Nats-Msg-Id header so the stream can drop redelivered duplicates.
func NewMsg(subject string, v any) (msg *nats.Msg, id string, err error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, "", err
	}

	id = ulid.Make().String()
	msg = nats.NewMsg(subject)
	msg.Data = data
	msg.Header.Set(nats.MsgIdHdr, id)
	return msg, id, nil
}
