// Package scheduler derives reminder schedules from firearm expiry dates and
// application processing time, keeps the persisted schedule consistent with
// the notification capability, and self-heals the whole set on a daily cron.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linesmerrill/firearm-tracker-api/calendar"
	"github.com/linesmerrill/firearm-tracker-api/databases"
	"github.com/linesmerrill/firearm-tracker-api/models"
	"github.com/linesmerrill/firearm-tracker-api/notify"
)

// reminderOffsets are the days-before-expiry at which a firearm licence
// reminder fires. Offsets already in the past are skipped; a record whose
// offsets have all passed simply gets no reminders.
var reminderOffsets = []int{365, 180, 90, 60, 30, 14, 7, 3, 1}

// applicationReminderFloor is the working-days-pending value at which an
// application gets a reminder projected for its SLA crossing date.
const applicationReminderFloor = 88

// reminderHour is the local hour of day at which reminders fire
const reminderHour = 9

var sast = time.FixedZone("SAST", 2*60*60)

// Scheduler owns the reminder schedules for firearms and applications
type Scheduler struct {
	cron       *cron.Cron
	FDB        databases.FirearmDatabase
	ADB        databases.ApplicationDatabase
	FSchedDB   databases.ScheduleDatabase
	ASchedDB   databases.ScheduleDatabase
	CounterDB  databases.CounterDatabase
	SettingsDB databases.SettingsDatabase
	Notifier   notify.Notifier
	Mailer     OverdueMailer
	instanceID string

	// mu serialises every schedule mutation so a cancel/create pair for one
	// record can never interleave with another call and leave duplicate live
	// reminders behind.
	mu  sync.Mutex
	now func() time.Time
}

// NewScheduler creates a new scheduler instance
func NewScheduler(
	fDB databases.FirearmDatabase,
	aDB databases.ApplicationDatabase,
	fSchedDB databases.ScheduleDatabase,
	aSchedDB databases.ScheduleDatabase,
	counterDB databases.CounterDatabase,
	settingsDB databases.SettingsDatabase,
	notifier notify.Notifier,
	mailer OverdueMailer,
) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		FDB:        fDB,
		ADB:        aDB,
		FSchedDB:   fSchedDB,
		ASchedDB:   aSchedDB,
		CounterDB:  counterDB,
		SettingsDB: settingsDB,
		Notifier:   notifier,
		Mailer:     mailer,
		instanceID: uuid.New().String(),
		now:        time.Now,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Reconcile both schedules daily at 4 AM UTC (6 AM SAST)
	_, err := s.cron.AddFunc("0 4 * * *", s.runDailyReconciliation)
	if err != nil {
		zap.S().Errorw("failed to register reconciliation job", "error", err)
	}

	s.cron.Start()
	zap.S().Infow("Reminder scheduler started", "instance", s.instanceID)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Reminder scheduler stopped")
}

func (s *Scheduler) runDailyReconciliation() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := s.RescheduleAll(ctx); err != nil {
		zap.S().Errorw("daily firearm reminder reconciliation failed", "error", err)
	}
	if err := s.ScheduleApplications(ctx); err != nil {
		zap.S().Errorw("daily application reminder rebuild failed", "error", err)
	}
}

// ScheduleForFirearm cancels any reminders currently held for the firearm
// and registers a fresh set at the fixed offsets before its expiry date.
// Only offsets still in the future are scheduled; a record whose expiry has
// passed gets zero reminders, which is not an error.
func (s *Scheduler) ScheduleForFirearm(ctx context.Context, firearm models.Firearm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduleFirearmLocked(ctx, firearm)
}

func (s *Scheduler) scheduleFirearmLocked(ctx context.Context, firearm models.Firearm) error {
	recordID := firearm.ID.Hex()

	if _, err := s.cancelLocked(ctx, s.FSchedDB, recordID); err != nil {
		return fmt.Errorf("failed to cancel existing reminders: %w", err)
	}

	enabled, err := s.SettingsDB.IsEnabled(ctx, recordID)
	if err != nil {
		zap.S().Warnw("failed to load notification setting, assuming enabled",
			"recordID", recordID, "error", err)
		enabled = true
	}
	if !enabled {
		return nil
	}

	now := s.now()
	expiry := firearm.Details.ExpiryDate.Time()

	var due []time.Time
	var dueOffsets []int
	for _, offset := range reminderOffsets {
		fireAt := reminderInstant(expiry.AddDate(0, 0, -offset))
		if fireAt.After(now) {
			due = append(due, fireAt)
			dueOffsets = append(dueOffsets, offset)
		}
	}
	if len(due) == 0 {
		return nil
	}

	ids, err := s.CounterDB.NextReminderIDs(ctx, len(due))
	if err != nil {
		return fmt.Errorf("failed to issue reminder ids: %w", err)
	}

	reminders := make([]notify.Reminder, len(due))
	for i := range due {
		title, body := expiryReminderCopy(firearm.Details.Title, dueOffsets[i])
		reminders[i] = notify.Reminder{
			ID:     ids[i],
			Title:  title,
			Body:   body,
			FireAt: due[i],
		}
	}

	entry := models.ScheduleEntry{
		RecordID:      recordID,
		Title:         firearm.Details.Title,
		ReferenceDate: firearm.Details.ExpiryDate,
		ReminderIDs:   ids,
	}
	// persist before registering so every live reminder id is always covered
	// by a tracked entry that cancellation and reconciliation can find
	if err := s.FSchedDB.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("failed to persist schedule entry: %w", err)
	}
	if err := s.Notifier.Schedule(reminders); err != nil {
		// sweep any partial registration, then drop the entry it belonged to
		_ = s.Notifier.Cancel(ids)
		if derr := s.FSchedDB.DeleteByRecordID(ctx, recordID); derr != nil {
			zap.S().Errorw("failed to remove schedule entry after registration failure",
				"recordID", recordID, "error", derr)
		}
		return fmt.Errorf("failed to register reminders: %w", err)
	}

	zap.S().Infow("firearm reminders scheduled",
		"recordID", recordID,
		"count", len(reminders),
	)
	return nil
}

// CancelForFirearm removes this firearm's reminders from the notification
// capability and the persisted schedule. Other records are untouched.
func (s *Scheduler) CancelForFirearm(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.cancelLocked(ctx, s.FSchedDB, recordID)
	return err
}

// CancelApplication removes a single application's pending reminder
func (s *Scheduler) CancelApplication(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.cancelLocked(ctx, s.ASchedDB, recordID)
	return err
}

// cancelLocked cancels whatever the schedule tracks for the record and
// returns the removed entry, nil when nothing was tracked.
func (s *Scheduler) cancelLocked(ctx context.Context, schedDB databases.ScheduleDatabase, recordID string) (*models.ScheduleEntry, error) {
	entry, err := schedDB.FindByRecordID(ctx, recordID)
	if err != nil {
		// nothing tracked for this record
		return nil, nil
	}
	if err := s.Notifier.Cancel(entry.ReminderIDs); err != nil {
		return nil, err
	}
	return entry, schedDB.DeleteByRecordID(ctx, recordID)
}

// RescheduleAll cancels every tracked firearm reminder and rebuilds the
// schedule from the current firearm records. The persisted schedule is a
// derived cache, so this is safe to run proactively on every startup; one
// record's failure never aborts the rest.
func (s *Scheduler) RescheduleAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.FSchedDB.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load firearm schedule: %w", err)
	}
	var stale []int
	for _, entry := range entries {
		stale = append(stale, entry.ReminderIDs...)
	}
	if err := s.Notifier.Cancel(stale); err != nil {
		return fmt.Errorf("failed to cancel tracked reminders: %w", err)
	}
	if err := s.FSchedDB.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear firearm schedule: %w", err)
	}

	firearms, err := s.FDB.Find(ctx, map[string]interface{}{})
	if err != nil {
		return fmt.Errorf("failed to load firearm records: %w", err)
	}

	failures := 0
	for _, firearm := range firearms {
		if err := s.scheduleFirearmLocked(ctx, firearm); err != nil {
			zap.S().Errorw("failed to schedule reminders for firearm, continuing",
				"recordID", firearm.ID.Hex(),
				"error", err,
			)
			failures++
		}
	}

	zap.S().Infow("firearm reminder reconciliation complete",
		"records", len(firearms),
		"failures", failures,
	)
	return nil
}

// ScheduleApplications fully replaces the application reminder set. Working
// days pending is a moving target recomputed from now, so the whole set is
// cancelled and rebuilt on every call.
func (s *Scheduler) ScheduleApplications(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.ASchedDB.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load application schedule: %w", err)
	}
	var stale []int
	for _, entry := range entries {
		stale = append(stale, entry.ReminderIDs...)
	}
	if err := s.Notifier.Cancel(stale); err != nil {
		return fmt.Errorf("failed to cancel tracked reminders: %w", err)
	}
	if err := s.ASchedDB.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear application schedule: %w", err)
	}

	// carry the one-shot alert marker across the rebuild
	alerted := make(map[string]bool, len(entries))
	for _, entry := range entries {
		alerted[entry.RecordID] = entry.OverdueAlertSent
	}

	applications, err := s.ADB.Find(ctx, map[string]interface{}{})
	if err != nil {
		return fmt.Errorf("failed to load application records: %w", err)
	}

	for _, application := range applications {
		if err := s.scheduleApplicationLocked(ctx, application, alerted[application.ID.Hex()]); err != nil {
			zap.S().Errorw("failed to schedule reminder for application, continuing",
				"recordID", application.ID.Hex(),
				"error", err,
			)
		}
	}
	return nil
}

// ScheduleApplication refreshes the reminder for a single application,
// replacing whatever the schedule currently holds for it.
func (s *Scheduler) ScheduleApplication(ctx context.Context, application models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, err := s.cancelLocked(ctx, s.ASchedDB, application.ID.Hex())
	if err != nil {
		return fmt.Errorf("failed to cancel existing reminder: %w", err)
	}
	return s.scheduleApplicationLocked(ctx, application, prev != nil && prev.OverdueAlertSent)
}

func (s *Scheduler) scheduleApplicationLocked(ctx context.Context, application models.Application, alertSent bool) error {
	now := s.now()
	pending := calendar.WorkingDaysBetween(application.Details.DateApplied.Time(), now)
	if pending < applicationReminderFloor {
		return nil
	}

	title := application.Details.Title
	if title == "" {
		title = "Your firearm application"
	}

	var fireAt time.Time
	var subject, body string
	if pending >= 90 {
		// already at or past the SLA: remind immediately
		fireAt = now.Add(time.Minute)
		subject = "Application overdue"
		body = fmt.Sprintf("%s has been pending for %d working days. SAPS has exceeded the 90 working day limit.", title, pending)

		// the email alert fires once per application, not on every rebuild
		if s.Mailer != nil && !alertSent {
			if err := s.Mailer.SendOverdueAlert(title, pending); err != nil {
				zap.S().Errorw("failed to send overdue alert email", "error", err)
			} else {
				alertSent = true
			}
		}
	} else {
		// project the exact calendar date on which the pending count reaches
		// the SLA boundary, walking working days forward from tomorrow
		crossing := calendar.DateAtWorkingDayCount(now.AddDate(0, 0, 1), 90-pending)
		fireAt = reminderInstant(crossing)
		subject = "Application reaching the SLA limit"
		body = fmt.Sprintf("%s reaches 90 working days pending today. Consider following up with SAPS.", title)
	}

	ids, err := s.CounterDB.NextReminderIDs(ctx, 1)
	if err != nil {
		return fmt.Errorf("failed to issue reminder id: %w", err)
	}

	recordID := application.ID.Hex()
	entry := models.ScheduleEntry{
		RecordID:         recordID,
		Title:            title,
		ReferenceDate:    application.Details.DateApplied,
		ReminderIDs:      ids,
		OverdueAlertSent: alertSent,
	}
	// persist before registering, same discipline as the firearm schedule
	if err := s.ASchedDB.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("failed to persist schedule entry: %w", err)
	}

	err = s.Notifier.Schedule([]notify.Reminder{{
		ID:     ids[0],
		Title:  subject,
		Body:   body,
		FireAt: fireAt,
	}})
	if err != nil {
		_ = s.Notifier.Cancel(ids)
		if derr := s.ASchedDB.DeleteByRecordID(ctx, recordID); derr != nil {
			zap.S().Errorw("failed to remove schedule entry after registration failure",
				"recordID", recordID, "error", derr)
		}
		return fmt.Errorf("failed to register reminder: %w", err)
	}
	return nil
}

// reminderInstant pins a reminder to the standard delivery hour on its day
func reminderInstant(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), reminderHour, 0, 0, 0, sast)
}

// expiryReminderCopy returns the title and body for a firearm expiry
// reminder, with tone escalating as the expiry date approaches.
func expiryReminderCopy(title string, daysOut int) (string, string) {
	switch {
	case daysOut >= 90:
		return "Licence renewal notice",
			fmt.Sprintf("%s expires in %d days. No action needed yet.", title, daysOut)
	case daysOut >= 30:
		return "Licence renewal required",
			fmt.Sprintf("%s expires in %d days. Submit your renewal at least 90 days before expiry.", title, daysOut)
	case daysOut >= 7:
		return "URGENT: licence renewal",
			fmt.Sprintf("%s expires in %d days. Renew immediately to avoid lapsing.", title, daysOut)
	default:
		return "CRITICAL: licence expiring",
			fmt.Sprintf("%s expires in %d days. An expired licence means the firearm must be surrendered.", title, daysOut)
	}
}
