package booking

import (
	"context"
	"sync"
	"time"
)

const DefaultPaymentWindow = 5 * time.Minute

// PaymentCountdown decrementa uma vez por tick e chama onExpire
// exatamente uma vez ao chegar a zero. Depois de Stop ou da expiração
// nenhum tick tem efeito e o contador não pode ser retomado.
type PaymentCountdown struct {
	interval time.Duration
	onExpire func()

	mu        sync.Mutex
	remaining int
	fired     bool
	stopped   bool
	cancel    context.CancelFunc
}

func NewPaymentCountdown(window, interval time.Duration, onExpire func()) *PaymentCountdown {
	if interval <= 0 {
		interval = time.Second
	}
	ticks := int(window / interval)
	if ticks < 1 {
		ticks = 1
	}
	return &PaymentCountdown{
		interval:  interval,
		onExpire:  onExpire,
		remaining: ticks,
	}
}

// Tick avança o contador em uma unidade. Devolve true no tick que expirou.
func (c *PaymentCountdown) Tick() bool {
	c.mu.Lock()
	if c.fired || c.stopped {
		c.mu.Unlock()
		return false
	}

	c.remaining--
	if c.remaining > 0 {
		c.mu.Unlock()
		return false
	}

	c.fired = true
	cb := c.onExpire
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if cb != nil {
		cb()
	}
	return true
}

// Start roda o ticker até expirar, Stop ou o cancelamento de ctx.
func (c *PaymentCountdown) Start(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil || c.fired || c.stopped {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if c.Tick() {
					return
				}
			}
		}
	}()
}

// Stop encerra o contador. Devolve false quando ele já tinha expirado.
func (c *PaymentCountdown) Stop() bool {
	c.mu.Lock()
	if c.fired {
		c.mu.Unlock()
		return false
	}
	c.stopped = true
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	return true
}

// Remaining é o tempo restante até a expiração.
func (c *PaymentCountdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Duration(c.remaining) * c.interval
}

func (c *PaymentCountdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fired
}
