package postgres

import (
	driver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and migrates the two tables. TranslateError is
// required so unique-index violations surface as gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(driver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&UserModel{}, &ScoreModel{}); err != nil {
		return nil, err
	}

	return db, nil
}
