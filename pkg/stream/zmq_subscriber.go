//go:build zmq

package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	zmq "github.com/pebbe/zmq4"
)

// ZMQSubscriber is a BatchSource that receives update batches published
// over a ZeroMQ PUB/SUB socket, one JSON-encoded wireBatch per message.
type ZMQSubscriber struct {
	socket *zmq.Socket
	topic  string
	mu     sync.Mutex
}

// NewZMQSubscriber connects to a primary's PUB endpoint and subscribes
// to topic.
func NewZMQSubscriber(endpoint, topic string) (*ZMQSubscriber, error) {
	sock, err := zmq.NewSocket(zmq.SUB)
	if err != nil {
		return nil, fmt.Errorf("creating SUB socket: %w", err)
	}
	if err := sock.Connect(endpoint); err != nil {
		_ = sock.Close()
		return nil, fmt.Errorf("connecting to %s: %w", endpoint, err)
	}
	if err := sock.SetSubscribe(topic); err != nil {
		_ = sock.Close()
		return nil, fmt.Errorf("subscribing to %s: %w", topic, err)
	}
	return &ZMQSubscriber{socket: sock, topic: topic}, nil
}

// Next blocks until a batch arrives or ctx is canceled.
func (z *ZMQSubscriber) Next(ctx context.Context) (Batch, error) {
	z.mu.Lock()
	defer z.mu.Unlock()

	type result struct {
		payload []byte
		err     error
	}
	done := make(chan result, 1)
	go func() {
		payload, err := z.socket.RecvBytes(0)
		done <- result{payload, err}
	}()

	select {
	case <-ctx.Done():
		return Batch{}, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return Batch{}, fmt.Errorf("receiving batch: %w", r.err)
		}
		var w wireBatch
		if err := json.Unmarshal(r.payload, &w); err != nil {
			return Batch{}, fmt.Errorf("decoding batch: %w", err)
		}
		return w.toBatch(), nil
	}
}

// Close releases the underlying socket.
func (z *ZMQSubscriber) Close() error {
	return z.socket.Close()
}
