package notifications

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"barabom/internal/platform/logger"
)

// Generator periodically emits a synthetic demo notification, mirroring the
// demo feed of the product. Off unless started explicitly; Stop is
// idempotent. Dropped ticks need no recovery.
type Generator struct {
	svc      *Service
	log      logger.Logger
	interval time.Duration
	rand     *rand.Rand

	mu   sync.Mutex
	stop chan struct{}
}

func NewGenerator(svc *Service, interval time.Duration, log logger.Logger) *Generator {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Generator{
		svc:      svc,
		log:      log,
		interval: interval,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *Generator) Start(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stop != nil {
		return
	}
	g.stop = make(chan struct{})

	go g.run(ctx, g.stop)
}

func (g *Generator) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stop == nil {
		return
	}
	close(g.stop)
	g.stop = nil
}

func (g *Generator) run(ctx context.Context, stop chan struct{}) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			g.emit(ctx)
		}
	}
}

func (g *Generator) emit(ctx context.Context) {
	set, err := g.svc.Settings(ctx)
	if err != nil {
		g.log.Warn("notifications: generator settings read failed", map[string]any{"err": err.Error()})
		return
	}

	roll := g.rand.Float64()
	switch {
	case roll < 0.3 && set.Medication:
		_, err = g.svc.Add(ctx, "초코의 투약 시간이 다가오고 있습니다 💊", TypeMedication)
	case roll < 0.6 && set.Report:
		_, err = g.svc.Add(ctx, "개린이집에서 새 일지를 작성했습니다", TypeReport)
	case set.Activity:
		_, err = g.svc.Add(ctx, "김엄마님이 새 기록을 추가했습니다", TypeInfo)
	}
	if err != nil {
		g.log.Warn("notifications: generator emit failed", map[string]any{"err": err.Error()})
	}
}
