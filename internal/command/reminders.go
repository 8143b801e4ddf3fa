package command

import (
	"errors"

	"github.com/nibzard/archduke-go/internal/datetime"
	"github.com/nibzard/archduke-go/internal/project"
)

func (d *Dispatcher) addReminder(args string) Outcome {
	f := ParseFields(args, "d/")
	r := project.Reminder{Text: f.Preamble}
	if v, ok := f.Get("d/"); ok {
		due, err := datetime.Parse(v)
		if err != nil {
			return rejected("Please enter the reminder date as dd/MM/yyyy.")
		}
		r.Due = &due
	}
	added, err := d.project.AddReminder(r)
	if errors.Is(err, project.ErrMissingDescription) {
		return rejected("Failed to add reminder. Please enter the reminder text.")
	}
	if err != nil {
		return rejection(err)
	}
	return applied(ReminderAdded{Reminder: added, Count: d.project.NumReminders()})
}

func (d *Dispatcher) viewReminders(string) Outcome {
	return applied(ReminderList{Reminders: d.project.Reminders()})
}

func (d *Dispatcher) viewReminder(args string) Outcome {
	index, _, err := leadingIndex(args, project.EntityReminder)
	if err != nil {
		return rejection(err)
	}
	r, err := d.project.Reminder(index)
	if err != nil {
		return rejection(err)
	}
	return applied(ReminderView{Reminder: r})
}

func (d *Dispatcher) markReminder(args string) Outcome {
	return d.setReminderDone(args, true)
}

func (d *Dispatcher) unmarkReminder(args string) Outcome {
	return d.setReminderDone(args, false)
}

func (d *Dispatcher) setReminderDone(args string, done bool) Outcome {
	index, _, err := leadingIndex(args, project.EntityReminder)
	if err != nil {
		return rejection(err)
	}
	r, err := d.project.MarkReminder(index, done)
	if err != nil {
		return rejection(err)
	}
	return applied(ReminderMarked{Reminder: r})
}
