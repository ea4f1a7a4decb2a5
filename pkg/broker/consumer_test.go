package broker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type readResult struct {
	m   kafka.Message
	err error
}

// stubReader replays a fixed sequence of reads, then signals end of
// stream.
type stubReader struct {
	results []readResult
}

func (r *stubReader) ReadMessage(_ context.Context) (kafka.Message, error) {
	if len(r.results) == 0 {
		return kafka.Message{}, io.EOF
	}

	next := r.results[0]
	r.results = r.results[1:]

	return next.m, next.err
}

func (r *stubReader) Close() error {
	return nil
}

func TestConsumer_ReadErrorDoesNotDispatch(t *testing.T) {
	t.Parallel()

	c := &Consumer{
		l: slog.Default(),
		r: &stubReader{results: []readResult{
			{err: errors.New("broker unavailable")},
			{m: kafka.Message{Topic: "employee.created", Value: []byte(`{"employee_id":5}`)}},
		}},
		wg:            &sync.WaitGroup{},
		topicHandlers: make(map[string]func(context.Context, kafka.Message) error),
	}

	var handled []kafka.Message

	c.Handle("employee.created", func(_ context.Context, m kafka.Message) error {
		handled = append(handled, m)
		return nil
	})

	c.Consume(context.Background())
	c.Close()

	// The failed read is logged and skipped; only the real message
	// reaches the handler.
	require.Len(t, handled, 1)
	require.Equal(t, "employee.created", handled[0].Topic)
	require.JSONEq(t, `{"employee_id":5}`, string(handled[0].Value))
}

func TestConsumer_UnknownTopicSkipped(t *testing.T) {
	t.Parallel()

	c := &Consumer{
		l: slog.Default(),
		r: &stubReader{results: []readResult{
			{m: kafka.Message{Topic: "unknown.topic"}},
		}},
		wg:            &sync.WaitGroup{},
		topicHandlers: make(map[string]func(context.Context, kafka.Message) error),
	}

	called := false

	c.Handle("employee.created", func(context.Context, kafka.Message) error {
		called = true
		return nil
	})

	c.Consume(context.Background())
	c.Close()

	require.False(t, called)
}
