package idgen

import (
	"fmt"
	"sync"
	"time"
)

// Generator produz ids "<prefixo>-<epoch ms>". Dentro de um processo
// os valores são estritamente crescentes: duas chamadas no mesmo
// milissegundo recebem last+1.
type Generator struct {
	prefix string
	now    func() time.Time

	mu   sync.Mutex
	last int64
}

func New(prefix string, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{prefix: prefix, now: now}
}

func NewAppointmentIDs() *Generator {
	return New("APT", nil)
}

func NewSpecialistIDs() *Generator {
	return New("specialist", nil)
}

func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.now().UnixMilli()
	if v <= g.last {
		v = g.last + 1
	}
	g.last = v

	return fmt.Sprintf("%s-%d", g.prefix, v)
}
