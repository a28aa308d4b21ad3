package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ScheduleEntry maps a record to the reminder ids currently registered with
// the notification capability on its behalf. One collection tracks firearm
// expiry reminders and a separate one tracks application pending reminders.
// The persisted entry is a rebuildable cache of what is registered, not a
// source of truth; RescheduleAll reconstructs it from the records at any time.
type ScheduleEntry struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	RecordID      string             `json:"recordID" bson:"recordID"`
	Title         string             `json:"title" bson:"title"`
	ReferenceDate primitive.DateTime `json:"referenceDate" bson:"referenceDate"`
	ReminderIDs   []int              `json:"reminderIDs" bson:"reminderIDs"`
	// OverdueAlertSent marks that the one-shot overdue email for this
	// application already went out; rebuilds carry it forward
	OverdueAlertSent bool               `json:"overdueAlertSent,omitempty" bson:"overdueAlertSent,omitempty"`
	UpdatedAt        primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// NotificationSetting stores the per-record "notifications enabled" flag.
// A record with no stored setting is treated as enabled.
type NotificationSetting struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	RecordID string             `json:"recordID" bson:"recordID"`
	Enabled  bool               `json:"enabled" bson:"enabled"`
}

// ReminderCounter is the persisted high-water mark for reminder identifiers.
// It is seeded above a reserved range so ids can never collide with any other
// identifier space the delivery capability uses.
type ReminderCounter struct {
	ID    string `json:"_id" bson:"_id"`
	Value int    `json:"value" bson:"value"`
}
