package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

// Yard — счётчики операций площадки.
type Yard struct {
	GateIn      *prometheus.CounterVec
	GateOut     prometheus.Counter
	Relocations prometheus.Counter
	Snapshots   *prometheus.CounterVec
	Slots       prometheus.Gauge
	Occupied    prometheus.Gauge
}

func New(reg prometheus.Registerer) *Yard {
	m := &Yard{
		GateIn: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "yard_gate_in_total",
			Help: "Containers received at the gate.",
		}, []string{"load"}),
		GateOut: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "yard_gate_out_total",
			Help: "Containers released from the yard.",
		}),
		Relocations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "yard_relocations_total",
			Help: "Manual relocations inside the yard.",
		}),
		Snapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "yard_snapshot_writes_total",
			Help: "Snapshot writes by key and result.",
		}, []string{"key", "result"}),
		Slots: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "yard_slots_total",
			Help: "Slots in the current yard layout.",
		}),
		Occupied: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "yard_slots_occupied",
			Help: "Slots holding a container.",
		}),
	}
	reg.MustRegister(m.GateIn, m.GateOut, m.Relocations, m.Snapshots, m.Slots, m.Occupied)
	return m
}

// Observe — наблюдатель сессии; вызывается после каждой мутации.
func (m *Yard) Observe(e app.Event) {
	switch e.Kind {
	case app.EventGateIn:
		if e.GateIn != nil {
			m.GateIn.WithLabelValues(string(e.GateIn.Container.Load())).Inc()
		}
	case app.EventGateOut:
		m.GateOut.Inc()
	case app.EventRelocation:
		m.Relocations.Inc()
	case app.EventSnapshot:
		m.Snapshots.WithLabelValues(string(e.Key), "ok").Inc()
	case app.EventSnapshotErr:
		m.Snapshots.WithLabelValues(string(e.Key), "error").Inc()
	}
}

// SetOccupancy обновляет датчики сетки.
func (m *Yard) SetOccupancy(slots []yard.Slot) {
	m.Slots.Set(float64(len(slots)))
	m.Occupied.Set(float64(yard.Occupied(slots)))
}

// Attach подписывает метрики на сессию и держит датчики в актуальном состоянии.
func Attach(s *app.Session, m *Yard) {
	_, slots := s.Slots()
	m.SetOccupancy(slots)
	s.Subscribe(func(e app.Event) {
		m.Observe(e)
		switch e.Kind {
		case app.EventGateIn, app.EventGateOut, app.EventRemoved, app.EventSettings:
			_, slots := s.Slots()
			m.SetOccupancy(slots)
		}
	})
}
