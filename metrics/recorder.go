// Package metrics exports simulation activity to Prometheus.
package metrics

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"thunderstrike/game"
)

const namespace = "thunderstrike"

// Recorder turns step results into Prometheus series. It is fed from the
// frame loop and holds no reference to the simulation.
type Recorder struct {
	steps        prometheus.Counter
	spawned      *prometheus.CounterVec
	killed       *prometheus.CounterVec
	rammed       prometheus.Counter
	playerDamage prometheus.Counter
	particles    prometheus.Counter
	transitions  *prometheus.CounterVec
	entities     *prometheus.GaugeVec
	score        prometheus.Gauge
	stepDuration prometheus.Histogram
}

// NewRecorder creates the collectors and registers them with reg
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Simulation steps executed.",
		}),
		spawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_spawned_total",
			Help:      "Enemies that entered the arena, by kind.",
		}, []string{"kind"}),
		killed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_killed_total",
			Help:      "Enemies destroyed by the player, by kind.",
		}, []string{"kind"}),
		rammed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_rammed_total",
			Help:      "Standard enemies consumed by contact with the player.",
		}),
		playerDamage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_damage_total",
			Help:      "Hit points the player has lost.",
		}),
		particles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "particles_emitted_total",
			Help:      "Explosion particles emitted.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Screen transitions requested by the simulation.",
		}, []string{"transition"}),
		entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Live entities after the last step.",
		}, []string{"type"}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Score after the last step.",
		}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Wall time spent in one simulation step.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
	}

	for _, c := range []prometheus.Collector{
		r.steps, r.spawned, r.killed, r.rammed, r.playerDamage,
		r.particles, r.transitions, r.entities, r.score, r.stepDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Observe records one step. Results from frames where nothing stepped
// (a zero StepResult) are ignored.
func (r *Recorder) Observe(res game.StepResult, elapsed time.Duration) {
	if res.World == nil {
		return
	}
	r.steps.Inc()
	r.stepDuration.Observe(elapsed.Seconds())

	for _, ev := range res.Events {
		switch ev.Kind {
		case game.EventEnemySpawned, game.EventBossSpawned:
			r.spawned.WithLabelValues(ev.Enemy.String()).Inc()
		case game.EventEnemyKilled:
			r.killed.WithLabelValues(ev.Enemy.String()).Inc()
		case game.EventEnemyRammed:
			r.rammed.Inc()
		case game.EventPlayerHit:
			r.playerDamage.Add(ev.Amount)
		case game.EventExplosion:
			r.particles.Add(float64(ev.Count))
		}
	}
	if res.Transition != game.TransitionNone {
		r.transitions.WithLabelValues(res.Transition.String()).Inc()
	}

	w := res.World
	r.entities.WithLabelValues("enemies").Set(float64(len(w.Enemies)))
	r.entities.WithLabelValues("bullets").Set(float64(len(w.Bullets)))
	r.entities.WithLabelValues("particles").Set(float64(len(w.Particles)))
	r.score.Set(float64(res.Score))
}

// Transition counts a transition that did not come out of a step, such as
// the victory fired by the timer poll.
func (r *Recorder) Transition(t game.Transition) {
	if t == game.TransitionNone {
		return
	}
	r.transitions.WithLabelValues(t.String()).Inc()
}

// Serve exposes the registry on addr under /metrics. It returns immediately;
// the server runs until it is shut down.
func Serve(addr string, gatherer prometheus.Gatherer, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("metrics endpoint listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics endpoint failed", "err", err)
		}
	}()
	return srv
}
