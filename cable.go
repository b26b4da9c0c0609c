package slicingdice

import (
	"context"
	"time"
)

// InsertCable batches entities sent through it into few insert requests.
//
// Configure the exported fields before calling Start. Every entity queued
// with Send is delivered by a later flush; a flush happens when BatchSize
// entities are pending, when BatchInterval elapses with pending entities,
// and when the cable is closed.
type InsertCable struct {
	c *Client

	sends  []*insertSend
	sendCh chan *insertSend

	// BatchSize is the number of pending entities that triggers a flush.
	// Zero flushes every send immediately.
	BatchSize int
	// BatchInterval is the longest a pending entity waits before a flush.
	BatchInterval time.Duration
	// AutoCreate is propagated as the "auto-create" list of each insert
	// payload, naming what the service may create on the fly.
	AutoCreate []string
}

type insertSend struct {
	entityID string
	attrs    any

	err chan error
}

// InsertCable creates a new cable inserting through this client.
func (c *Client) InsertCable() *InsertCable {
	return &InsertCable{
		c:             c,
		sends:         make([]*insertSend, 0),
		sendCh:        make(chan *insertSend),
		BatchSize:     1000,        // the service takes up to 1000 entities per insert
		BatchInterval: time.Second, // default to 1 second
	}
}

// Start runs the cable's background loop until Close is called.
func (c *InsertCable) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(c.BatchInterval)
		defer ticker.Stop()

		stop, tick := false, false
		for {
			if tick || stop || c.full() {
				if len(c.sends) > 0 {
					c.flush(ctx)
				}
				tick = false
			}

			if stop {
				return
			}

			select {
			case <-ticker.C:
				if len(c.sends) > 0 {
					tick = true
				}
			case s, more := <-c.sendCh:
				if !more {
					stop = true
					continue
				}
				c.sends = append(c.sends, s)
			}
		}
	}()
}

func (c *InsertCable) full() bool {
	return len(c.sends) > 0 && len(c.sends) >= c.BatchSize
}

// flush hands the pending sends to a goroutine that merges them into one
// insert payload. A later send for an entity already in the batch overwrites
// the earlier one, as the payload maps entity IDs to their values.
func (c *InsertCable) flush(ctx context.Context) {
	sends := c.sends
	c.sends = nil

	go func() {
		payload := make(map[string]any, len(sends)+1)
		for _, s := range sends {
			payload[s.entityID] = s.attrs
		}
		if len(c.AutoCreate) > 0 {
			payload["auto-create"] = c.AutoCreate
		}

		_, err := c.c.Insert(ctx, payload)
		for _, s := range sends {
			if err != nil {
				s.err <- err
			}
			close(s.err)
		}
	}()
}

// Send queues one entity for insertion and returns a channel reporting the
// outcome of the flush that carried it. The channel yields nil on success.
func (c *InsertCable) Send(entityID string, attrs any) <-chan error {
	s := &insertSend{
		entityID: entityID,
		attrs:    attrs,
		err:      make(chan error, 1),
	}
	c.sendCh <- s
	return s.err
}

// Close flushes the remaining entities and stops the cable. Flush outcomes
// keep arriving on the channels Send returned.
func (c *InsertCable) Close() {
	close(c.sendCh)
}
