package project

import "time"

// Reminder is a standalone note owned by a project.
type Reminder struct {
	Text  string
	Due   *time.Time
	Done  bool
	Index int
}

// ReminderList is an ordered collection of reminders.
type ReminderList struct {
	reminders []*Reminder
}

// Len returns the number of reminders.
func (l *ReminderList) Len() int {
	return len(l.reminders)
}

// Get returns the reminder at a 1-based index.
func (l *ReminderList) Get(index int) (*Reminder, error) {
	if index < 1 || index > len(l.reminders) {
		return nil, indexError(EntityReminder, index)
	}
	return l.reminders[index-1], nil
}

// All returns copies of the reminders in insertion order.
func (l *ReminderList) All() []Reminder {
	out := make([]Reminder, len(l.reminders))
	for i, r := range l.reminders {
		out[i] = *r
	}
	return out
}

func (l *ReminderList) add(r *Reminder) {
	r.Index = len(l.reminders) + 1
	l.reminders = append(l.reminders, r)
}
