// Package kafka publica los eventos de cambio de entidades con segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
	"github.com/jhoicas/ecommerce-backoffice/pkg/logger"
	kafkago "github.com/segmentio/kafka-go"
)

var _ usecase.ChangePublisher = (*Publisher)(nil)

// messageWriter lo cumple *kafkago.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher encola eventos y los escribe desde una goroutine. Si la cola está llena el evento se descarta.
type Publisher struct {
	w       messageWriter
	inbox   chan kafkago.Message
	log     *logger.Logger
	once    sync.Once
	closeCh chan struct{}
}

// NewWriter writer asíncrono con balanceo por clave (entidad:id).
func NewWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		Async:        true,
	}
}

// NewPublisher arranca el drenado de la cola. Cerrar con Close.
func NewPublisher(w messageWriter, buf int, log *logger.Logger) *Publisher {
	if log == nil {
		log = logger.Nop()
	}
	p := &Publisher{
		w:       w,
		inbox:   make(chan kafkago.Message, buf),
		log:     log,
		closeCh: make(chan struct{}),
	}
	go p.loop()
	return p
}

func (p *Publisher) loop() {
	defer close(p.closeCh)
	for m := range p.inbox {
		if err := p.w.WriteMessages(context.Background(), m); err != nil {
			p.log.Error().Err(err).Str("key", string(m.Key)).Msg("kafka write")
		}
	}
	if err := p.w.Close(); err != nil {
		p.log.Error().Err(err).Msg("kafka close")
	}
}

// Publish serializa el cambio y lo encola sin bloquear.
func (p *Publisher) Publish(_ context.Context, change usecase.EntityChange) {
	value, err := json.Marshal(change)
	if err != nil {
		p.log.Error().Err(err).Msg("serializar evento")
		return
	}
	msg := kafkago.Message{
		Key:   []byte(change.Entity + ":" + strconv.FormatInt(change.ID, 10)),
		Value: value,
		Time:  change.At,
		Headers: []kafkago.Header{
			{Key: "action", Value: []byte(change.Action)},
		},
	}
	select {
	case p.inbox <- msg:
	default:
		p.log.Warn().Str("entity", change.Entity).Int64("id", change.ID).Msg("cola de eventos llena, evento descartado")
	}
}

// Close vacía la cola y cierra el writer. Publish no debe llamarse después.
func (p *Publisher) Close() {
	p.once.Do(func() { close(p.inbox) })
	<-p.closeCh
}
