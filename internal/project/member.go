package project

import "strings"

// Member is a person on a project.
type Member struct {
	Name  string
	Phone string
	Email string
	// Index is the 1-based position of the member within its project.
	Index int
}

// MemberUpdate holds the fields of a partial member edit.
// Nil fields are left unchanged.
type MemberUpdate struct {
	Name  *string
	Phone *string
	Email *string
}

// IsZero returns true if the update changes nothing.
func (u MemberUpdate) IsZero() bool {
	return u.Name == nil && u.Phone == nil && u.Email == nil
}

// Details returns the member's contact details in display order.
func (m *Member) Details() []string {
	details := []string{m.Name}
	if m.Phone != "" {
		details = append(details, "Phone: "+m.Phone)
	}
	if m.Email != "" {
		details = append(details, "Email: "+m.Email)
	}
	return details
}

// apply applies the update and returns the names of the changed fields.
func (m *Member) apply(u MemberUpdate) []string {
	var applied []string
	if u.Name != nil {
		m.Name = *u.Name
		applied = append(applied, "name")
	}
	if u.Phone != nil {
		m.Phone = *u.Phone
		applied = append(applied, "phone")
	}
	if u.Email != nil {
		m.Email = *u.Email
		applied = append(applied, "email")
	}
	return applied
}

// MemberList is an ordered collection of members with contiguous 1-based indices.
type MemberList struct {
	members []*Member
}

// Len returns the number of members.
func (l *MemberList) Len() int {
	return len(l.members)
}

// Get returns the member at a 1-based index.
func (l *MemberList) Get(index int) (*Member, error) {
	if index < 1 || index > len(l.members) {
		return nil, indexError(EntityMember, index)
	}
	return l.members[index-1], nil
}

// All returns a copy of the members in insertion order.
func (l *MemberList) All() []Member {
	out := make([]Member, len(l.members))
	for i, m := range l.members {
		out[i] = *m
	}
	return out
}

func (l *MemberList) add(m *Member) {
	m.Index = len(l.members) + 1
	l.members = append(l.members, m)
}

func (l *MemberList) remove(index int) *Member {
	removed := l.members[index-1]
	l.members = append(l.members[:index-1], l.members[index:]...)
	for i := index - 1; i < len(l.members); i++ {
		l.members[i].Index = i + 1
	}
	return removed
}

func validName(name string) bool {
	return strings.TrimSpace(name) != ""
}
