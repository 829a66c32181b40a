package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"netops-dashboard/internal/events"
	"netops-dashboard/internal/shared/configs"
	"netops-dashboard/internal/shared/loggers"
	"netops-dashboard/internal/streams"

	"github.com/gorilla/websocket"
)

const (
	defaultSchema            = "public"
	defaultHeartbeatInterval = 30 * time.Second
	minReconnectDelay        = 100 * time.Millisecond
	writeWait                = 10 * time.Second
)

var errJoinRejected = errors.New("channel join rejected")

// Subscriber listens for row changes on the watched table and turns each
// one into a realtime refresh trigger. The connection is re-established
// after a fixed delay whenever it drops.
//
//go:generate mockgen -source=subscriber.go -destination=./mocks/subscriber_mock.go -package=mocks
type Subscriber interface {
	Start(ctx context.Context)
	Stop()
}

type subscriber struct {
	endpoint          string
	topic             string
	table             string
	heartbeatInterval time.Duration
	reconnectDelay    time.Duration

	producer streams.RefreshTriggerProducer
	dialer   *websocket.Dialer

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewSubscriber(cfg configs.RealtimeConfig, apiKey string, producer streams.RefreshTriggerProducer, logger loggers.Logger) (Subscriber, error) {
	endpoint, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid realtime url: %w", err)
	}
	query := endpoint.Query()
	if apiKey != "" {
		query.Set("apikey", apiKey)
	}
	query.Set("vsn", protocolVsn)
	endpoint.RawQuery = query.Encode()

	heartbeat := time.Duration(cfg.HeartbeatInterval) * time.Second
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeatInterval
	}

	return &subscriber{
		endpoint:          endpoint.String(),
		topic:             channelTopic(defaultSchema, cfg.Table),
		table:             cfg.Table,
		heartbeatInterval: heartbeat,
		reconnectDelay:    max(time.Duration(cfg.ReconnectDelay)*time.Second, minReconnectDelay),
		producer:          producer,
		dialer:            websocket.DefaultDialer,
		stopCh:            make(chan struct{}),
		logger:            logger,
	}, nil
}

func (s *subscriber) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			err := s.session(ctx)
			metricRealtimeConnected.WithLabelValues().Set(0)
			if s.stopped(ctx) {
				return
			}
			s.logger.Warn().Err(err).Dur("retry_in", s.reconnectDelay).Msg("realtime connection lost")
			metricRealtimeReconnectsTotal.WithLabelValues().Inc()

			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-time.After(s.reconnectDelay):
			}
		}
	}()
}

func (s *subscriber) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *subscriber) stopped(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	case <-s.stopCh:
		return true
	default:
		return false
	}
}

// session runs one connection until it fails or the subscriber stops.
func (s *subscriber) session(ctx context.Context) error {
	conn, _, err := s.dialer.DialContext(ctx, s.endpoint, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)

	var writeMu sync.Mutex
	var ref int
	send := func(topic, event string, payload any) (string, error) {
		writeMu.Lock()
		defer writeMu.Unlock()

		ref++
		r := strconv.Itoa(ref)
		data, err := json.Marshal(payload)
		if err != nil {
			return "", err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return r, conn.WriteJSON(phoenixMessage{Topic: topic, Event: event, Payload: data, Ref: &r})
	}

	joinRef, err := send(s.topic, eventJoin, joinPayload{Config: joinConfig{
		PostgresChanges: []postgresChangesFilter{{Event: "*", Schema: defaultSchema, Table: s.table}},
	}})
	if err != nil {
		return fmt.Errorf("join: %w", err)
	}

	go func() {
		ticker := time.NewTicker(s.heartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				conn.Close()
				return
			case <-s.stopCh:
				conn.Close()
				return
			case <-ticker.C:
				if _, err := send(heartbeatTopic, eventHeartbeat, struct{}{}); err != nil {
					conn.Close()
					return
				}
			}
		}
	}()

	for {
		var msg phoenixMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("read: %w", err)
		}
		metricRealtimeMessagesTotal.WithLabelValues(msg.Event).Inc()

		switch msg.Event {
		case eventReply:
			if msg.Topic != s.topic || msg.Ref == nil || *msg.Ref != joinRef {
				continue
			}
			var reply replyPayload
			_ = json.Unmarshal(msg.Payload, &reply)
			if reply.Status != "ok" {
				return fmt.Errorf("%w: %s", errJoinRejected, string(reply.Response))
			}
			metricRealtimeConnected.WithLabelValues().Set(1)
			s.logger.Info().Str(loggers.FieldTable, s.table).Msg("realtime channel joined")
		case eventPostgresChanges:
			s.onChange(ctx, msg.Payload)
		case eventError, eventClose:
			if msg.Topic == s.topic {
				return fmt.Errorf("channel %s: %s", msg.Event, string(msg.Payload))
			}
		}
	}
}

func (s *subscriber) onChange(ctx context.Context, payload json.RawMessage) {
	var change changePayload
	if err := json.Unmarshal(payload, &change); err != nil {
		s.logger.Debug().Err(err).Msg("unreadable change payload")
		return
	}
	table := change.Data.Table
	if table == "" {
		table = s.table
	}

	event, coalesced, err := s.producer.Produce(ctx, events.RefreshReasonRealtime, change.Data.Type+" "+table)
	if err != nil {
		return
	}
	s.logger.Debug().
		Str(loggers.FieldTriggerID, event.TriggerID).
		Str(loggers.FieldTable, table).
		Bool("coalesced", coalesced).
		Msg("realtime change received")
}
