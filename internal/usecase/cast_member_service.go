package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
)

// CreateCastMemberInput contains the input parameters for creating a cast member.
type CreateCastMemberInput struct {
	Name string
	Type model.CastMemberType
}

// UpdateCastMemberInput contains the fields to change; nil fields are left as they are.
type UpdateCastMemberInput struct {
	ID   uuid.UUID
	Name *string
	Type *model.CastMemberType
}

// CastMemberService defines the cast member use cases.
type CastMemberService interface {
	CreateCastMember(ctx context.Context, input CreateCastMemberInput) (*model.CastMember, error)
	UpdateCastMember(ctx context.Context, input UpdateCastMemberInput) error
	DeleteCastMember(ctx context.Context, id uuid.UUID) error
	GetCastMember(ctx context.Context, id uuid.UUID) (*model.CastMember, error)
	ListCastMembers(ctx context.Context, input ListInput) (*ListOutput[*model.CastMember], error)
}

type castMemberService struct {
	repo     repository.CastMemberRepository
	pageSize int
}

// NewCastMemberService creates a new CastMemberService instance.
func NewCastMemberService(repo repository.CastMemberRepository, cfg Config) CastMemberService {
	return &castMemberService{repo: repo, pageSize: cfg.pageSize()}
}

func (s *castMemberService) CreateCastMember(ctx context.Context, input CreateCastMemberInput) (*model.CastMember, error) {
	member, err := model.NewCastMember(uuid.Nil, input.Name, input.Type)
	if err != nil {
		return nil, invalid(ErrInvalidCastMember, err)
	}

	if err := s.repo.Save(ctx, member); err != nil {
		return nil, fmt.Errorf("save cast member: %w", err)
	}
	return member, nil
}

func (s *castMemberService) UpdateCastMember(ctx context.Context, input UpdateCastMemberInput) error {
	member, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return lookupError(err, ErrCastMemberNotFound, input.ID)
	}

	name, memberType := member.Name, member.Type
	if input.Name != nil {
		name = *input.Name
	}
	if input.Type != nil {
		memberType = *input.Type
	}
	if err := member.Update(name, memberType); err != nil {
		return invalid(ErrInvalidCastMember, err)
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return fmt.Errorf("update cast member: %w", err)
	}
	return nil
}

func (s *castMemberService) DeleteCastMember(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return lookupError(err, ErrCastMemberNotFound, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete cast member: %w", err)
	}
	return nil
}

func (s *castMemberService) GetCastMember(ctx context.Context, id uuid.UUID) (*model.CastMember, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrCastMemberNotFound, id)
	}
	return member, nil
}

var castMemberOrderings = orderings[*model.CastMember]{
	"name": func(a, b *model.CastMember) int { return strings.Compare(a.Name, b.Name) },
	"type": func(a, b *model.CastMember) int { return strings.Compare(string(a.Type), string(b.Type)) },
	"id":   func(a, b *model.CastMember) int { return strings.Compare(a.ID.String(), b.ID.String()) },
}

func (s *castMemberService) ListCastMembers(ctx context.Context, input ListInput) (*ListOutput[*model.CastMember], error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cast members: %w", err)
	}
	return paginate(members, castMemberOrderings, "name", input, s.pageSize)
}
