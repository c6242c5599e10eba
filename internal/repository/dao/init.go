package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&ServiceUnit{},
		&Person{},
		&Member{},
		&Activity{},
		&Attendance{},
		&Payment{},
		&DiscountTier{},
		&CotisationBounds{},
	)
}
