package upload

import (
	"sync"
	"time"
)

// Progress simulates upload progress while the real remote call is in
// flight: a repeating timer advances the percentage in steps of 5 and
// parks at 95 until the call settles. Stop may be called from any path
// (success or failure) and only the first call takes effect, so the timer
// can never leak past the operation.
type Progress struct {
	mu      sync.Mutex
	pct     int
	settled bool
	done    chan struct{}
	once    sync.Once

	onChange func(pct int)
}

// StartProgress begins the simulation. onChange, when non-nil, is invoked
// with every new percentage value, including the final one set by Stop.
func StartProgress(interval time.Duration, onChange func(pct int)) *Progress {
	p := &Progress{
		done:     make(chan struct{}),
		onChange: onChange,
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.advance()
			case <-p.done:
				return
			}
		}
	}()

	return p
}

func (p *Progress) advance() {
	p.mu.Lock()
	if p.settled || p.pct >= 95 {
		p.mu.Unlock()
		return
	}
	p.pct += 5
	pct := p.pct
	cb := p.onChange
	p.mu.Unlock()

	if cb != nil {
		cb(pct)
	}
}

// Stop settles the simulation exactly once. On success the percentage jumps
// to 100; on failure it resets to 0.
func (p *Progress) Stop(success bool) {
	p.once.Do(func() {
		close(p.done)

		p.mu.Lock()
		p.settled = true
		if success {
			p.pct = 100
		} else {
			p.pct = 0
		}
		pct := p.pct
		cb := p.onChange
		p.mu.Unlock()

		if cb != nil {
			cb(pct)
		}
	})
}

// Value returns the current simulated percentage.
func (p *Progress) Value() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pct
}
