package model

import (
	"strings"

	"github.com/google/uuid"
)

// CastMemberType is the role a cast member plays.
type CastMemberType string

const (
	CastMemberTypeActor    CastMemberType = "ACTOR"
	CastMemberTypeDirector CastMemberType = "DIRECTOR"
)

func (t CastMemberType) IsValid() bool {
	return t == CastMemberTypeActor || t == CastMemberTypeDirector
}

func (t CastMemberType) String() string {
	return string(t)
}

// ParseCastMemberType accepts the type name case-insensitively.
func ParseCastMemberType(s string) CastMemberType {
	return CastMemberType(strings.ToUpper(strings.TrimSpace(s)))
}

// CastMember is an actor or director credited on videos.
type CastMember struct {
	Entity
	Name string
	Type CastMemberType
}

var _ Aggregate = (*CastMember)(nil)

// NewCastMember creates a CastMember. A uuid.Nil id is replaced by a generated one.
func NewCastMember(id uuid.UUID, name string, memberType CastMemberType) (*CastMember, error) {
	m := &CastMember{
		Entity: NewEntity(id),
		Name:   name,
		Type:   memberType,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *CastMember) Validate() error {
	n := NewNotification()
	validateName(n, m.Name)
	if !m.Type.IsValid() {
		n.AddError("Type must be a valid CastMemberType: ACTOR or DIRECTOR")
	}
	return n.Err()
}

// Update replaces name and type. The member is unchanged when the result is invalid.
func (m *CastMember) Update(name string, memberType CastMemberType) error {
	next := *m
	next.Name = name
	next.Type = memberType
	if err := next.Validate(); err != nil {
		return err
	}
	*m = next
	return nil
}
