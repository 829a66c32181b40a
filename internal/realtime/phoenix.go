package realtime

import (
	"encoding/json"
)

const (
	eventJoin            = "phx_join"
	eventReply           = "phx_reply"
	eventError           = "phx_error"
	eventClose           = "phx_close"
	eventHeartbeat       = "heartbeat"
	eventPostgresChanges = "postgres_changes"

	heartbeatTopic = "phoenix"
	protocolVsn    = "1.0.0"
)

// phoenixMessage is one frame of the Phoenix channel protocol. Ref is null
// on server pushes.
type phoenixMessage struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     *string         `json:"ref"`
}

type joinPayload struct {
	Config joinConfig `json:"config"`
}

type joinConfig struct {
	PostgresChanges []postgresChangesFilter `json:"postgres_changes"`
}

type postgresChangesFilter struct {
	Event  string `json:"event"`
	Schema string `json:"schema"`
	Table  string `json:"table"`
}

type replyPayload struct {
	Status   string          `json:"status"`
	Response json.RawMessage `json:"response"`
}

type changePayload struct {
	Data struct {
		Type   string `json:"type"`
		Table  string `json:"table"`
		Schema string `json:"schema"`
	} `json:"data"`
}

func channelTopic(schema, table string) string {
	return "realtime:" + schema + ":" + table
}
