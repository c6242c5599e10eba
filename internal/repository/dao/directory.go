package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUnitNotFound   = errors.New("service unit not found")
	ErrPersonNotFound = errors.New("person not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrAlreadyMember  = errors.New("person is already a member")
)

type DirectoryDAO struct {
	db *gorm.DB
}

func NewDirectoryDAO(db *gorm.DB) *DirectoryDAO {
	return &DirectoryDAO{
		db: db,
	}
}

func (d *DirectoryDAO) ListUnits(ctx context.Context) ([]ServiceUnit, error) {
	var units []ServiceUnit

	result := d.db.WithContext(ctx).Order("id ASC").Find(&units)
	if result.Error != nil {
		return nil, result.Error
	}

	return units, nil
}

func (d *DirectoryDAO) FindUnitByID(ctx context.Context, id uint) (ServiceUnit, error) {
	var unit ServiceUnit

	result := d.db.WithContext(ctx).First(&unit, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ServiceUnit{}, ErrUnitNotFound
		}

		return ServiceUnit{}, result.Error
	}

	return unit, nil
}

func (d *DirectoryDAO) InsertUnit(ctx context.Context, unit ServiceUnit) (ServiceUnit, error) {
	result := d.db.WithContext(ctx).Create(&unit)
	if result.Error != nil {
		return ServiceUnit{}, result.Error
	}

	return unit, nil
}

func (d *DirectoryDAO) UpdateUnit(ctx context.Context, unit ServiceUnit) (ServiceUnit, error) {
	result := d.db.WithContext(ctx).Model(&ServiceUnit{}).
		Where("id = ?", unit.ID).
		Updates(map[string]interface{}{
			"description": unit.Description,
			"region":      unit.Region,
		})
	if result.Error != nil {
		return ServiceUnit{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ServiceUnit{}, ErrUnitNotFound
	}

	return d.FindUnitByID(ctx, unit.ID)
}

func (d *DirectoryDAO) DeleteUnit(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&ServiceUnit{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUnitNotFound
	}

	return nil
}

func (d *DirectoryDAO) ListPersons(ctx context.Context) ([]Person, error) {
	var persons []Person

	result := d.db.WithContext(ctx).Order("last_name ASC, first_name ASC").Find(&persons)
	if result.Error != nil {
		return nil, result.Error
	}

	return persons, nil
}

func (d *DirectoryDAO) FindPersonByID(ctx context.Context, id uint) (Person, error) {
	var person Person

	result := d.db.WithContext(ctx).First(&person, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Person{}, ErrPersonNotFound
		}

		return Person{}, result.Error
	}

	return person, nil
}

func (d *DirectoryDAO) InsertPerson(ctx context.Context, person Person) (Person, error) {
	result := d.db.WithContext(ctx).Create(&person)
	if result.Error != nil {
		return Person{}, result.Error
	}

	return person, nil
}

func (d *DirectoryDAO) UpdatePerson(ctx context.Context, person Person) (Person, error) {
	result := d.db.WithContext(ctx).Model(&Person{}).
		Where("id = ?", person.ID).
		Updates(map[string]interface{}{
			"last_name":       person.LastName,
			"first_name":      person.FirstName,
			"birth_date":      person.BirthDate,
			"service_unit_id": person.ServiceUnitID,
			"address":         person.Address,
			"phone":           person.Phone,
			"email":           person.Email,
		})
	if result.Error != nil {
		return Person{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Person{}, ErrPersonNotFound
	}

	return d.FindPersonByID(ctx, person.ID)
}

func (d *DirectoryDAO) DeletePerson(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Person{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

func (d *DirectoryDAO) ListMembers(ctx context.Context) ([]Member, error) {
	var members []Member

	result := d.db.WithContext(ctx).Preload("Person").Order("person_id ASC").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *DirectoryDAO) FindMemberByID(ctx context.Context, personID uint) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).Preload("Person").First(&member, "person_id = ?", personID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

// Enroll promotes an existing person to membership.
func (d *DirectoryDAO) Enroll(ctx context.Context, personID uint, joinedAt time.Time) (Member, error) {
	var member Member

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var person Person
		if err := tx.First(&person, personID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPersonNotFound
			}

			return err
		}

		var count int64
		if err := tx.Model(&Member{}).Where("person_id = ?", personID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyMember
		}

		member = Member{
			PersonID: personID,
			JoinedAt: joinedAt,
		}

		return tx.Create(&member).Error
	})
	if err != nil {
		return Member{}, err
	}

	return d.FindMemberByID(ctx, personID)
}

func (d *DirectoryDAO) DeleteMember(ctx context.Context, personID uint) error {
	result := d.db.WithContext(ctx).Delete(&Member{}, "person_id = ?", personID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

type PersonUnitRow struct {
	PersonID  uint
	LastName  string
	FirstName string
	UnitID    *uint
	UnitName  string
	Region    string
}

// ListPersonUnits resolves every person, member or not, to their current
// unit assignment.
func (d *DirectoryDAO) ListPersonUnits(ctx context.Context) ([]PersonUnitRow, error) {
	var rows []PersonUnitRow

	err := d.db.WithContext(ctx).Model(&Person{}).
		Select(`people.id AS person_id,
			people.last_name,
			people.first_name,
			people.service_unit_id AS unit_id,
			COALESCE(service_units.description, '') AS unit_name,
			COALESCE(service_units.region, '') AS region`).
		Joins("LEFT JOIN service_units ON service_units.id = people.service_unit_id").
		Order("people.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
