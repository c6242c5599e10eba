package service

import (
	"context"
	"fmt"
	"time"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository"
)

var (
	ErrUnitNotFound   = repository.ErrUnitNotFound
	ErrPersonNotFound = repository.ErrPersonNotFound
	ErrMemberNotFound = repository.ErrMemberNotFound
	ErrAlreadyMember  = repository.ErrAlreadyMember
)

type DirectoryRepository interface {
	ListUnits(ctx context.Context) ([]domain.ServiceUnit, error)
	GetUnit(ctx context.Context, id uint) (domain.ServiceUnit, error)
	CreateUnit(ctx context.Context, unit domain.ServiceUnit) (domain.ServiceUnit, error)
	UpdateUnit(ctx context.Context, unit domain.ServiceUnit) (domain.ServiceUnit, error)
	DeleteUnit(ctx context.Context, id uint) error
	ListPersons(ctx context.Context) ([]domain.Person, error)
	GetPerson(ctx context.Context, id uint) (domain.Person, error)
	CreatePerson(ctx context.Context, person domain.Person) (domain.Person, error)
	UpdatePerson(ctx context.Context, person domain.Person) (domain.Person, error)
	DeletePerson(ctx context.Context, id uint) error
	ListMembers(ctx context.Context) ([]domain.Member, error)
	GetMember(ctx context.Context, personID uint) (domain.Member, error)
	EnrollMember(ctx context.Context, personID uint, joinedAt time.Time) (domain.Member, error)
	DeleteMember(ctx context.Context, personID uint) error
	ListPersonUnits(ctx context.Context) ([]repository.PersonUnit, error)
}

type DirectoryService struct {
	repo DirectoryRepository
}

func NewDirectoryService(repo DirectoryRepository) *DirectoryService {
	return &DirectoryService{
		repo: repo,
	}
}

func (s *DirectoryService) ListUnits(ctx context.Context) ([]domain.ServiceUnit, error) {
	units, err := s.repo.ListUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListUnits -> %w", err)
	}

	return units, nil
}

func (s *DirectoryService) GetUnit(ctx context.Context, id uint) (domain.ServiceUnit, error) {
	unit, err := s.repo.GetUnit(ctx, id)
	if err != nil {
		return domain.ServiceUnit{}, fmt.Errorf("s.repo.GetUnit -> %w", err)
	}

	return unit, nil
}

func (s *DirectoryService) CreateUnit(ctx context.Context, unit domain.ServiceUnit) (domain.ServiceUnit, error) {
	created, err := s.repo.CreateUnit(ctx, unit)
	if err != nil {
		return domain.ServiceUnit{}, fmt.Errorf("s.repo.CreateUnit -> %w", err)
	}

	return created, nil
}

func (s *DirectoryService) UpdateUnit(ctx context.Context, unit domain.ServiceUnit) (domain.ServiceUnit, error) {
	updated, err := s.repo.UpdateUnit(ctx, unit)
	if err != nil {
		return domain.ServiceUnit{}, fmt.Errorf("s.repo.UpdateUnit -> %w", err)
	}

	return updated, nil
}

func (s *DirectoryService) DeleteUnit(ctx context.Context, id uint) error {
	if err := s.repo.DeleteUnit(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteUnit -> %w", err)
	}

	return nil
}

func (s *DirectoryService) ListPersons(ctx context.Context) ([]domain.Person, error) {
	persons, err := s.repo.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListPersons -> %w", err)
	}

	return persons, nil
}

func (s *DirectoryService) GetPerson(ctx context.Context, id uint) (domain.Person, error) {
	person, err := s.repo.GetPerson(ctx, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.GetPerson -> %w", err)
	}

	return person, nil
}

func (s *DirectoryService) CreatePerson(ctx context.Context, person domain.Person) (domain.Person, error) {
	if person.UnitID != nil {
		if _, err := s.repo.GetUnit(ctx, *person.UnitID); err != nil {
			return domain.Person{}, fmt.Errorf("s.repo.GetUnit -> %w", err)
		}
	}

	created, err := s.repo.CreatePerson(ctx, person)
	if err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.CreatePerson -> %w", err)
	}

	return created, nil
}

func (s *DirectoryService) UpdatePerson(ctx context.Context, person domain.Person) (domain.Person, error) {
	if person.UnitID != nil {
		if _, err := s.repo.GetUnit(ctx, *person.UnitID); err != nil {
			return domain.Person{}, fmt.Errorf("s.repo.GetUnit -> %w", err)
		}
	}

	updated, err := s.repo.UpdatePerson(ctx, person)
	if err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.UpdatePerson -> %w", err)
	}

	return updated, nil
}

func (s *DirectoryService) DeletePerson(ctx context.Context, id uint) error {
	if err := s.repo.DeletePerson(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeletePerson -> %w", err)
	}

	return nil
}

func (s *DirectoryService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListMembers -> %w", err)
	}

	return members, nil
}

func (s *DirectoryService) GetMember(ctx context.Context, personID uint) (domain.Member, error) {
	member, err := s.repo.GetMember(ctx, personID)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.GetMember -> %w", err)
	}

	return member, nil
}

func (s *DirectoryService) EnrollMember(ctx context.Context, personID uint) (domain.Member, error) {
	member, err := s.repo.EnrollMember(ctx, personID, time.Now())
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.EnrollMember -> %w", err)
	}

	return member, nil
}

func (s *DirectoryService) DeleteMember(ctx context.Context, personID uint) error {
	if err := s.repo.DeleteMember(ctx, personID); err != nil {
		return fmt.Errorf("s.repo.DeleteMember -> %w", err)
	}

	return nil
}
