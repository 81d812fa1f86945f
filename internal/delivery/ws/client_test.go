package ws

import (
	"sync"
	"sync/atomic"
	"testing"

	"restops/config"
	domainerrors "restops/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func newTestClient(bufferSize int) *client {
	cfg := *config.Defaults().WebSocket
	cfg.SendBufferSize = bufferSize

	return newClient(nil, cfg, newDiscardLogger())
}

func TestClient_SendAfterCloseIsRejected(t *testing.T) {
	c := newTestClient(8)
	c.Close("bye")

	for range 100 {
		err := c.Send("notification", map[string]string{"message": "late"})
		assert.ErrorIs(t, err, domainerrors.ErrTransportUnavailable)
	}
	assert.Empty(t, c.send)
	assert.Equal(t, "bye", c.reason())
}

func TestClient_SendFailsWhenBufferFull(t *testing.T) {
	c := newTestClient(1)

	assert.NoError(t, c.Send("notification", "first"))
	assert.ErrorIs(t, c.Send("notification", "second"), domainerrors.ErrTransportUnavailable)
}

func TestClient_AcceptedFramesAreFlushedOnClose(t *testing.T) {
	const senders = 64
	c := newTestClient(senders * 4)

	// Mirrors the write pump: once done closes, drain what is queued.
	flushed := make(chan int)
	go func() {
		<-c.done
		n := 0
		for {
			select {
			case <-c.send:
				n++
			default:
				flushed <- n

				return
			}
		}
	}()

	var accepted atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})
	for range senders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for range 4 {
				if c.Send("notification", "hello") == nil {
					accepted.Add(1)
				}
			}
		}()
	}

	close(start)
	c.Close("")
	wg.Wait()

	assert.Equal(t, int(accepted.Load()), <-flushed)
	assert.Empty(t, c.send)
}
