package common

import (
	"log"
	"rbs/src/db"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB wires a sqlmock connection into the package-level db instance
// so engine transactions run against scripted expectations.
func newMockDB() sqlmock.Sqlmock {
	sdb, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sdb}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	db.NewDB(gormDB)
	return mock
}
