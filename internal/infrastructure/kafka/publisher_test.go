package kafka

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafkago.Message
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestPublisher_EscribeEventoConClaveYCabecera(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisher(w, 8, nil)
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	p.Publish(context.Background(), usecase.EntityChange{Entity: "product", ID: 7, Action: usecase.ActionUpdated, At: at})
	p.Close()

	require.Len(t, w.msgs, 1)
	m := w.msgs[0]
	assert.Equal(t, "product:7", string(m.Key))
	assert.Equal(t, "updated", string(m.Headers[0].Value))
	var got usecase.EntityChange
	require.NoError(t, json.Unmarshal(m.Value, &got))
	assert.Equal(t, int64(7), got.ID)
	assert.True(t, w.closed)
}

func TestPublisher_CloseEsIdempotente(t *testing.T) {
	p := NewPublisher(&fakeWriter{}, 1, nil)
	p.Close()
	p.Close()
}
