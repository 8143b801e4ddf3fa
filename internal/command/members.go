package command

import (
	"errors"

	"github.com/nibzard/archduke-go/internal/project"
)

var memberMarkers = []string{"n/", "p/", "e/"}

func (d *Dispatcher) addMember(args string) Outcome {
	f := ParseFields(args, memberMarkers...)
	name := f.Preamble
	if v, ok := f.Get("n/"); ok {
		name = v
	}
	m := project.Member{Name: name}
	m.Phone, _ = f.Get("p/")
	m.Email, _ = f.Get("e/")

	added, err := d.project.AddMember(m)
	if errors.Is(err, project.ErrMissingName) {
		return rejected(MsgAddMemberFailed)
	}
	if err != nil {
		return rejection(err)
	}
	return applied(MemberAdded{Member: added, Count: d.project.NumMembers()})
}

func (d *Dispatcher) editMember(args string) Outcome {
	index, rest, err := leadingIndex(args, project.EntityMember)
	if err != nil {
		return rejection(err)
	}
	f := ParseFields(rest, memberMarkers...)
	var u project.MemberUpdate
	if v, ok := f.Get("n/"); ok {
		u.Name = &v
	}
	if v, ok := f.Get("p/"); ok {
		u.Phone = &v
	}
	if v, ok := f.Get("e/"); ok {
		u.Email = &v
	}

	fields, err := d.project.EditMember(index, u)
	if err != nil {
		return rejection(err)
	}
	m, _ := d.project.Member(index)
	return applied(MemberEdited{Member: m, Fields: fields})
}

func (d *Dispatcher) deleteMember(args string) Outcome {
	index, _, err := leadingIndex(args, project.EntityMember)
	if err != nil {
		return rejection(err)
	}
	removed, err := d.project.RemoveMember(index)
	if err != nil {
		return rejection(err)
	}
	return applied(MemberRemoved{Index: index, Member: removed})
}

func (d *Dispatcher) viewMembers(string) Outcome {
	return applied(MemberList{Members: d.project.Members()})
}

func (d *Dispatcher) viewAssignments(string) Outcome {
	return applied(MemberAssignments{Entries: d.project.MembersIndividualTaskList()})
}
