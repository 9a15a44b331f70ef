//go:build nng

package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/sub"

	// Register transports.
	_ "go.nanomsg.org/mangos/v3/transport/all"
)

// NNGSubscriber is a BatchSource that receives update batches over an
// NNG SUB socket, one JSON-encoded batch per message.
type NNGSubscriber struct {
	socket mangos.Socket
	mu     sync.Mutex
}

// NewNNGSubscriber dials a primary's SUB-compatible publish endpoint.
func NewNNGSubscriber(endpoint string) (*NNGSubscriber, error) {
	sock, err := sub.NewSocket()
	if err != nil {
		return nil, fmt.Errorf("creating SUB socket: %w", err)
	}
	if err := sock.Dial(endpoint); err != nil {
		_ = sock.Close()
		return nil, fmt.Errorf("dialing %s: %w", endpoint, err)
	}
	if err := sock.SetOption(mangos.OptionSubscribe, []byte("")); err != nil {
		_ = sock.Close()
		return nil, fmt.Errorf("subscribing: %w", err)
	}
	return &NNGSubscriber{socket: sock}, nil
}

// Next blocks until a batch arrives or ctx is canceled.
func (n *NNGSubscriber) Next(ctx context.Context) (Batch, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	type result struct {
		payload []byte
		err     error
	}
	done := make(chan result, 1)
	go func() {
		payload, err := n.socket.Recv()
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
func (n *NNGSubscriber) Close() error {
	return n.socket.Close()
}
