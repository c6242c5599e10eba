package dao

import "time"

type ServiceUnit struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"not null"`
	Region      string `gorm:"not null"`
}

type Person struct {
	ID            uint   `gorm:"primaryKey"`
	LastName      string `gorm:"not null"`
	FirstName     string `gorm:"not null"`
	BirthDate     time.Time
	ServiceUnitID *uint        `gorm:"index"`
	ServiceUnit   *ServiceUnit `gorm:"foreignKey:ServiceUnitID"`
	Address       string
	Phone         string
	Email         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Member promotes a person to membership; it shares the person's id.
type Member struct {
	PersonID uint   `gorm:"primaryKey"`
	Person   Person `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	JoinedAt time.Time
}

type Activity struct {
	ID          uint      `gorm:"primaryKey"`
	Date        time.Time `gorm:"not null;index"`
	Description string
	Priority    int     `gorm:"not null"`
	Region      string  `gorm:"not null;index"`
	Cotisation  float64 `gorm:"not null;type:decimal(10,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Attendance rows come in two shapes: member rows (member_id only) and
// guest rows (person_id plus the accompanying member in member_id). The
// member uniqueness per activity is checked at insert time because the
// accompanying member legitimately appears on several guest rows.
type Attendance struct {
	ID         uint     `gorm:"primaryKey"`
	ActivityID uint     `gorm:"not null;index;uniqueIndex:idx_attendance_person,priority:1"`
	Activity   Activity `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
	MemberID   *uint    `gorm:"index"`
	PersonID   *uint    `gorm:"uniqueIndex:idx_attendance_person,priority:2"`
	CreatedAt  time.Time
}

type Payment struct {
	ID           uint       `gorm:"primaryKey"`
	AttendanceID uint       `gorm:"not null;index"`
	Attendance   Attendance `gorm:"foreignKey:AttendanceID;constraint:OnDelete:CASCADE"`
	Date         time.Time  `gorm:"not null"`
	Amount       float64    `gorm:"not null;type:decimal(10,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DiscountTier struct {
	ID              uint    `gorm:"primaryKey"`
	MinParticipants int     `gorm:"not null;unique"`
	Percentage      float64 `gorm:"not null;type:decimal(5,2)"`
	Description     string  `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CotisationBounds is a singleton table: zero or one row.
type CotisationBounds struct {
	ID        uint    `gorm:"primaryKey"`
	Lower     float64 `gorm:"not null;type:decimal(10,2)"`
	Upper     float64 `gorm:"not null;type:decimal(10,2)"`
	UpdatedAt time.Time
}
