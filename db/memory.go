package db

import (
	"github.com/jinzhu/gorm"
)

// OpenMemory returns a migrated, private in-memory sqlite database.
// The pool is pinned to one connection because every sqlite :memory: connection
// is a separate database.
func OpenMemory() (*gorm.DB, error) {
	database, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	database.DB().SetMaxOpenConns(1)
	if err := Migrate(database); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
