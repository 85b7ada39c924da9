// Package messagingadapter backs the ports.Messaging capability with NATS
// subjects: a global broadcast channel, per-agent private subjects, and a
// cooperation-event subject the evolution coordinator subscribes to. It
// also fans decision events out to websocket clients for the API's live
// feed.
package messagingadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"

	"github.com/axobase/egde/ports"
)

// NATS subjects.
const (
	SubjectBroadcast   = "agents.broadcast"
	SubjectCooperation = "agents.cooperation"
)

func privateSubject(agentID string) string {
	return fmt.Sprintf("agent.%s.private", agentID)
}

// CooperationEvent is the payload published on SubjectCooperation.
type CooperationEvent struct {
	FromAgentID  string `json:"fromAgentId"`
	PeerAgentID  string `json:"peerAgentId"`
	Interactions int    `json:"interactions"`
}

// Messenger encapsulates a NATS connection and implements ports.Messaging
// for one agent identity.
type Messenger struct {
	nc      *nats.Conn
	agentID string
}

// NewMessenger connects to NATS and binds the connection to one agent id
// (the id stamped on cooperation events it publishes).
func NewMessenger(url, agentID string) (*Messenger, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return &Messenger{nc: nc, agentID: agentID}, nil
}

// Broadcast publishes a message to the global subject. Best-effort: the
// survival loop swallows messaging failures.
func (m *Messenger) Broadcast(ctx context.Context, msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return ports.NewPortFailure("messaging", err)
	}
	if err := m.nc.Publish(SubjectBroadcast, data); err != nil {
		return ports.NewPortFailure("messaging", err)
	}
	return nil
}

// SendMessage publishes directly to a peer's private subject.
func (m *Messenger) SendMessage(ctx context.Context, peer string, msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return ports.NewPortFailure("messaging", err)
	}
	if err := m.nc.Publish(privateSubject(peer), data); err != nil {
		return ports.NewPortFailure("messaging", err)
	}
	return nil
}

// RecordCooperation publishes a cooperation event for the coordinator.
func (m *Messenger) RecordCooperation(ctx context.Context, peer string, interactions int) error {
	data, err := json.Marshal(CooperationEvent{
		FromAgentID:  m.agentID,
		PeerAgentID:  peer,
		Interactions: interactions,
	})
	if err != nil {
		return ports.NewPortFailure("messaging", err)
	}
	if err := m.nc.Publish(SubjectCooperation, data); err != nil {
		return ports.NewPortFailure("messaging", err)
	}
	return nil
}

// SubscribeBroadcast subscribes to the global subject.
func (m *Messenger) SubscribeBroadcast(handler nats.MsgHandler) (*nats.Subscription, error) {
	return m.nc.Subscribe(SubjectBroadcast, handler)
}

// SubscribePrivate subscribes to this agent's private subject.
func (m *Messenger) SubscribePrivate(handler nats.MsgHandler) (*nats.Subscription, error) {
	return m.nc.Subscribe(privateSubject(m.agentID), handler)
}

// SubscribeCooperation routes cooperation events into the given handler;
// the serve command uses this to feed the evolution coordinator's ledger.
func (m *Messenger) SubscribeCooperation(handler func(CooperationEvent)) (*nats.Subscription, error) {
	return m.nc.Subscribe(SubjectCooperation, func(msg *nats.Msg) {
		var ev CooperationEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			log.Printf("Invalid cooperation event: %v", err)
			return
		}
		handler(ev)
	})
}

// Close drops the NATS connection.
func (m *Messenger) Close() {
	if m.nc != nil {
		m.nc.Close()
	}
}

var _ ports.Messaging = (*Messenger)(nil)
