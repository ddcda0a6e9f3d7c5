// Package clock abstrae la hora actual para que los sellos de fecha del servidor sean testeables.
package clock

import (
	"sync"
	"time"
)

// Clock fuente de la hora actual.
type Clock interface {
	Now() time.Time
}

// RealClock devuelve la hora del sistema en UTC.
type RealClock struct{}

// Now hora actual en UTC.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock reloj controlable para tests. Seguro para uso concurrente.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake crea un FakeClock fijado en t.
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

func (f *FakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Set fija el reloj en t.
func (f *FakeClock) Set(t time.Time) {
	f.mu.Lock()
	f.now = t
	f.mu.Unlock()
}

// Advance adelanta el reloj d.
func (f *FakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}
