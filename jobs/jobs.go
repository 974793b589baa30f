package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"IrisCare/repositories"
)

// StartDailyScheduler runs the visit reminder sweep shortly after midnight
// every day. The returned cron can be stopped on shutdown.
func StartDailyScheduler(patients repositories.PatientRepository) *cron.Cron {
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("5 0 * * *", func() {
		RunReminderSweep(context.Background(), patients)
	}); err != nil {
		log.Printf("Failed to schedule reminder sweep: %v", err)
		return scheduler
	}
	scheduler.Start()
	return scheduler
}

// RunReminderSweep logs every patient whose next scheduled visit falls on the
// current day, so the front desk can confirm appointments in the morning.
func RunReminderSweep(ctx context.Context, patients repositories.PatientRepository) {
	today := time.Now().Format("2006-01-02")
	count := 0
	for _, patient := range patients.List(ctx) {
		if patient.NextVisit == nil || patient.NextVisit.Date != today {
			continue
		}
		count++
		log.Printf("Visit reminder: %s (%s) at %s today", patient.FullName, patient.ID, patient.NextVisit.Time)
	}
	log.Printf("Reminder sweep complete: %d visit(s) scheduled for %s", count, today)
}
