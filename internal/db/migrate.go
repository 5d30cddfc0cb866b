package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies all pending migrations found in dir. It reports
// changed=false when the schema is already up to date.
func Migrate(connString string, dir string) (changed bool, err error) {
	m, err := migrate.New("file://"+dir, connString)
	if err != nil {
		return false, err
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
