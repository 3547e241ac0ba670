// Package profiling captures CPU profiles and execution traces when the frame
// loop runs slow.
package profiling

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"
	"sync"
	"time"
)

var (
	// ErrCooldown is returned when a capture was taken too recently
	ErrCooldown = errors.New("profile capture on cooldown")

	// ErrBusy is returned while a capture is still running
	ErrBusy = errors.New("profile capture already running")
)

// Profiler writes a CPU profile and an execution trace side by side. At most
// one capture runs at a time and captures are spaced by a cooldown.
type Profiler struct {
	mu       sync.Mutex
	busy     bool
	last     time.Time
	cooldown time.Duration
	duration time.Duration
	dir      string
	log      *slog.Logger
	wg       sync.WaitGroup
}

// Option customizes a Profiler
type Option func(*Profiler)

// WithCooldown sets the minimum spacing between captures
func WithCooldown(d time.Duration) Option {
	return func(p *Profiler) { p.cooldown = d }
}

// WithDuration sets how long each capture records
func WithDuration(d time.Duration) Option {
	return func(p *Profiler) { p.duration = d }
}

// New creates a profiler writing into dir, creating it if needed
func New(dir string, logger *slog.Logger, opts ...Option) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	p := &Profiler{
		cooldown: 10 * time.Second,
		duration: 5 * time.Second,
		dir:      dir,
		log:      logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Capture starts a background capture tagged with reason and returns at once
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.busy {
		return ErrBusy
	}
	if !p.last.IsZero() && time.Since(p.last) < p.cooldown {
		return ErrCooldown
	}
	p.busy = true
	p.last = time.Now()

	base := fmt.Sprintf("slow-step-%s-%s", p.last.Format("20060102-150405"), sanitize(reason))
	p.log.Info("capturing profile", "base", base, "duration", p.duration)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.busy = false
			p.mu.Unlock()
		}()

		var inner sync.WaitGroup
		inner.Add(2)
		go func() {
			defer inner.Done()
			if err := p.captureCPU(base); err != nil {
				p.log.Warn("cpu profile failed", "err", err)
			}
		}()
		go func() {
			defer inner.Done()
			if err := p.captureTrace(base); err != nil {
				p.log.Warn("trace failed", "err", err)
			}
		}()
		inner.Wait()
		p.logMemStats(base)
	}()
	return nil
}

// Wait blocks until any running capture has been written
func (p *Profiler) Wait() {
	p.wg.Wait()
}

// Dir returns the directory captures are written to
func (p *Profiler) Dir() string {
	return p.dir
}

func (p *Profiler) captureCPU(base string) error {
	path := filepath.Join(p.dir, base+".cpu.prof")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.duration)
	pprof.StopCPUProfile()

	p.log.Info("cpu profile saved", "path", path)
	return nil
}

func (p *Profiler) captureTrace(base string) error {
	path := filepath.Join(p.dir, base+".trace")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.duration)
	trace.Stop()

	p.log.Info("trace saved", "path", path)
	return nil
}

func (p *Profiler) logMemStats(base string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info("capture finished",
		"base", base,
		"alloc_kb", m.Alloc/1024,
		"sys_kb", m.Sys/1024,
		"num_gc", m.NumGC,
		"heap_objects", m.HeapObjects,
		"hint", "go tool pprof -http=:8080 "+filepath.Join(p.dir, base+".cpu.prof"))
}

// sanitize keeps reason usable inside a file name
func sanitize(reason string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, reason)
}
