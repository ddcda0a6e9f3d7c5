package backoffice

import (
	"sync"

	"github.com/rs/zerolog"
)

// Notifier rutina única de presentación de errores. Nunca bloquea ni propaga el error.
type Notifier interface {
	Notify(op string, err error)
}

// LogNotifier registra los errores en zerolog.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier crea el notificador sobre el logger dado.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(op string, err error) {
	n.log.Error().Err(err).Str("op", op).Msg("operación fallida")
}

// Notification un error notificado.
type Notification struct {
	Op  string
	Err error
}

// RecordingNotifier guarda las notificaciones (tests).
type RecordingNotifier struct {
	mu     sync.Mutex
	events []Notification
}

func (n *RecordingNotifier) Notify(op string, err error) {
	n.mu.Lock()
	n.events = append(n.events, Notification{Op: op, Err: err})
	n.mu.Unlock()
}

// Events copia de las notificaciones recibidas.
func (n *RecordingNotifier) Events() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.events...)
}

// Ops operaciones notificadas, en orden.
func (n *RecordingNotifier) Ops() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.events))
	for i, e := range n.events {
		out[i] = e.Op
	}
	return out
}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return NewLogNotifier(zerolog.Nop())
	}
	return n
}
