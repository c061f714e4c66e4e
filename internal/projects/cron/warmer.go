package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/service"
)

type Warmer struct {
	svc *service.ProjectService
}

func NewWarmer(svc *service.ProjectService) *Warmer {
	return &Warmer{svc: svc}
}

// Start schedules a periodic re-warm of the dashboard snapshot so the cache
// never goes stale for longer than the interval even without mutations.
func (w *Warmer) Start() {
	c := cron.New()

	_, err := c.AddFunc("@every 5m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := w.svc.RefreshDashboard(ctx); err != nil {
			log.Printf("Dashboard warm failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (dashboard warm every 5m)")
	c.Start()
}
