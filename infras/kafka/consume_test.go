package kafka

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader returns its messages and errors in order, then blocks until ctx is done.
type scriptedReader struct {
	steps []func() (kafkaGo.Message, error)
	calls atomic.Int32
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafkaGo.Message, error) {
	idx := int(r.calls.Add(1)) - 1
	if idx < len(r.steps) {
		return r.steps[idx]()
	}

	<-ctx.Done()

	return kafkaGo.Message{}, ctx.Err()
}

type failingReader struct {
	calls atomic.Int32
}

func (r *failingReader) ReadMessage(_ context.Context) (kafkaGo.Message, error) {
	r.calls.Add(1)

	return kafkaGo.Message{}, errors.New("broker unreachable")
}

type countingBackOff struct {
	interval time.Duration
	next     int
	resets   int
}

func (b *countingBackOff) NextBackOff() time.Duration {
	b.next++

	return b.interval
}

func (b *countingBackOff) Reset() {
	b.resets++
}

func keyed(key string) func() (kafkaGo.Message, error) {
	return func() (kafkaGo.Message, error) {
		return kafkaGo.Message{Key: []byte(key)}, nil
	}
}

func readError() (kafkaGo.Message, error) {
	return kafkaGo.Message{}, errors.New("rebalance in progress")
}

func TestConsume_PausesBetweenFailedReads(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()

	reader := &failingReader{}

	err := consume(ctx, reader, "hotelsys.reservations", backoff.NewConstantBackOff(100*time.Millisecond), func(kafkaGo.Message) {})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, reader.calls.Load(), int32(2))
	assert.LessOrEqual(t, reader.calls.Load(), int32(4))
}

func TestConsume_CancelDuringPauseReturns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := &failingReader{}
	done := make(chan error, 1)

	go func() {
		done <- consume(ctx, reader, "hotelsys.reservations", backoff.NewConstantBackOff(time.Hour), func(kafkaGo.Message) {})
	}()

	assert.Eventually(t, func() bool { return reader.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consume did not return after cancel")
	}

	assert.Equal(t, int32(1), reader.calls.Load())
}

func TestConsume_DeliversMessagesAndResetsBackOff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{steps: []func() (kafkaGo.Message, error){
		keyed("R1"),
		readError,
		keyed("R2"),
	}}
	retry := &countingBackOff{interval: time.Millisecond}

	var keys []string
	handler := func(msg kafkaGo.Message) {
		keys = append(keys, string(msg.Key))
		if len(keys) == 2 {
			cancel()
		}
	}

	err := consume(ctx, reader, "hotelsys.reservations", retry, handler)

	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R2"}, keys)
	assert.Equal(t, 1, retry.next)
	assert.Equal(t, 2, retry.resets)
}
