package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository/dao"
)

var (
	ErrUnitNotFound   = dao.ErrUnitNotFound
	ErrPersonNotFound = dao.ErrPersonNotFound
	ErrMemberNotFound = dao.ErrMemberNotFound
	ErrAlreadyMember  = dao.ErrAlreadyMember
)

type DirectoryDAO interface {
	ListUnits(ctx context.Context) ([]dao.ServiceUnit, error)
	FindUnitByID(ctx context.Context, id uint) (dao.ServiceUnit, error)
	InsertUnit(ctx context.Context, unit dao.ServiceUnit) (dao.ServiceUnit, error)
	UpdateUnit(ctx context.Context, unit dao.ServiceUnit) (dao.ServiceUnit, error)
	DeleteUnit(ctx context.Context, id uint) error
	ListPersons(ctx context.Context) ([]dao.Person, error)
	FindPersonByID(ctx context.Context, id uint) (dao.Person, error)
	InsertPerson(ctx context.Context, person dao.Person) (dao.Person, error)
	UpdatePerson(ctx context.Context, person dao.Person) (dao.Person, error)
	DeletePerson(ctx context.Context, id uint) error
	ListMembers(ctx context.Context) ([]dao.Member, error)
	FindMemberByID(ctx context.Context, personID uint) (dao.Member, error)
	Enroll(ctx context.Context, personID uint, joinedAt time.Time) (dao.Member, error)
	DeleteMember(ctx context.Context, personID uint) error
	ListPersonUnits(ctx context.Context) ([]dao.PersonUnitRow, error)
}

type DirectoryRepository struct {
	dao DirectoryDAO
}

func NewDirectoryRepository(dao DirectoryDAO) *DirectoryRepository {
	return &DirectoryRepository{
		dao: dao,
	}
}

func (r *DirectoryRepository) unitDomainToDao(u domain.ServiceUnit) dao.ServiceUnit {
	return dao.ServiceUnit{
		ID:          u.ID,
		Description: u.Description,
		Region:      u.Region,
	}
}

func (r *DirectoryRepository) unitDaoToDomain(u dao.ServiceUnit) domain.ServiceUnit {
	return domain.ServiceUnit{
		ID:          u.ID,
		Description: u.Description,
		Region:      u.Region,
	}
}

func (r *DirectoryRepository) personDomainToDao(p domain.Person) dao.Person {
	return dao.Person{
		ID:            p.ID,
		LastName:      p.LastName,
		FirstName:     p.FirstName,
		BirthDate:     p.BirthDate,
		ServiceUnitID: p.UnitID,
		Address:       p.Address,
		Phone:         p.Phone,
		Email:         p.Email,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (r *DirectoryRepository) personDaoToDomain(p dao.Person) domain.Person {
	return domain.Person{
		ID:        p.ID,
		LastName:  p.LastName,
		FirstName: p.FirstName,
		BirthDate: p.BirthDate,
		UnitID:    p.ServiceUnitID,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *DirectoryRepository) memberDaoToDomain(m dao.Member) domain.Member {
	return domain.Member{
		Person:   r.personDaoToDomain(m.Person),
		JoinedAt: m.JoinedAt,
	}
}

func (r *DirectoryRepository) ListUnits(ctx context.Context) ([]domain.ServiceUnit, error) {
	units, err := r.dao.ListUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListUnits -> %w", err)
	}

	result := make([]domain.ServiceUnit, len(units))
	for i, u := range units {
		result[i] = r.unitDaoToDomain(u)
	}

	return result, nil
}

func (r *DirectoryRepository) GetUnit(ctx context.Context, id uint) (domain.ServiceUnit, error) {
	unit, err := r.dao.FindUnitByID(ctx, id)
	if err != nil {
		return domain.ServiceUnit{}, fmt.Errorf("r.dao.FindUnitByID -> %w", err)
	}

	return r.unitDaoToDomain(unit), nil
}

func (r *DirectoryRepository) CreateUnit(ctx context.Context, unit domain.ServiceUnit) (domain.ServiceUnit, error) {
	created, err := r.dao.InsertUnit(ctx, r.unitDomainToDao(unit))
	if err != nil {
		return domain.ServiceUnit{}, fmt.Errorf("r.dao.InsertUnit -> %w", err)
	}

	return r.unitDaoToDomain(created), nil
}

func (r *DirectoryRepository) UpdateUnit(ctx context.Context, unit domain.ServiceUnit) (domain.ServiceUnit, error) {
	updated, err := r.dao.UpdateUnit(ctx, r.unitDomainToDao(unit))
	if err != nil {
		return domain.ServiceUnit{}, fmt.Errorf("r.dao.UpdateUnit -> %w", err)
	}

	return r.unitDaoToDomain(updated), nil
}

func (r *DirectoryRepository) DeleteUnit(ctx context.Context, id uint) error {
	if err := r.dao.DeleteUnit(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteUnit -> %w", err)
	}

	return nil
}

func (r *DirectoryRepository) ListPersons(ctx context.Context) ([]domain.Person, error) {
	persons, err := r.dao.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPersons -> %w", err)
	}

	result := make([]domain.Person, len(persons))
	for i, p := range persons {
		result[i] = r.personDaoToDomain(p)
	}

	return result, nil
}

func (r *DirectoryRepository) GetPerson(ctx context.Context, id uint) (domain.Person, error) {
	person, err := r.dao.FindPersonByID(ctx, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.FindPersonByID -> %w", err)
	}

	return r.personDaoToDomain(person), nil
}

func (r *DirectoryRepository) CreatePerson(ctx context.Context, person domain.Person) (domain.Person, error) {
	created, err := r.dao.InsertPerson(ctx, r.personDomainToDao(person))
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.InsertPerson -> %w", err)
	}

	return r.personDaoToDomain(created), nil
}

func (r *DirectoryRepository) UpdatePerson(ctx context.Context, person domain.Person) (domain.Person, error) {
	updated, err := r.dao.UpdatePerson(ctx, r.personDomainToDao(person))
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.UpdatePerson -> %w", err)
	}

	return r.personDaoToDomain(updated), nil
}

func (r *DirectoryRepository) DeletePerson(ctx context.Context, id uint) error {
	if err := r.dao.DeletePerson(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeletePerson -> %w", err)
	}

	return nil
}

func (r *DirectoryRepository) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := r.dao.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListMembers -> %w", err)
	}

	result := make([]domain.Member, len(members))
	for i, m := range members {
		result[i] = r.memberDaoToDomain(m)
	}

	return result, nil
}

func (r *DirectoryRepository) GetMember(ctx context.Context, personID uint) (domain.Member, error) {
	member, err := r.dao.FindMemberByID(ctx, personID)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindMemberByID -> %w", err)
	}

	return r.memberDaoToDomain(member), nil
}

func (r *DirectoryRepository) EnrollMember(ctx context.Context, personID uint, joinedAt time.Time) (domain.Member, error) {
	member, err := r.dao.Enroll(ctx, personID, joinedAt)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.Enroll -> %w", err)
	}

	return r.memberDaoToDomain(member), nil
}

func (r *DirectoryRepository) DeleteMember(ctx context.Context, personID uint) error {
	if err := r.dao.DeleteMember(ctx, personID); err != nil {
		return fmt.Errorf("r.dao.DeleteMember -> %w", err)
	}

	return nil
}

type PersonUnit struct {
	PersonID  uint
	LastName  string
	FirstName string
	UnitID    *uint
	UnitName  string
	Region    string
}

func (r *DirectoryRepository) ListPersonUnits(ctx context.Context) ([]PersonUnit, error) {
	rows, err := r.dao.ListPersonUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPersonUnits -> %w", err)
	}

	result := make([]PersonUnit, len(rows))
	for i, row := range rows {
		result[i] = PersonUnit{
			PersonID:  row.PersonID,
			LastName:  row.LastName,
			FirstName: row.FirstName,
			UnitID:    row.UnitID,
			UnitName:  row.UnitName,
			Region:    row.Region,
		}
	}

	return result, nil
}
