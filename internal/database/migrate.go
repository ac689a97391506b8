package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql" // mysql migration driver
	_ "github.com/golang-migrate/migrate/v4/source/file"    // file:// migration source
)

// Migrate applies the versioned change scripts found in dir. The chain
// is linear: each NNNN_name.up.sql has a matching NNNN_name.down.sql
// and scripts run strictly in version order. direction is "up" or
// "down"; an already-current schema is not an error.
func Migrate(dir, user, pass, host, port, name, direction string) error {
	// dsn already carries a query string, so extend it rather than start one
	url := fmt.Sprintf("mysql://%s&multiStatements=true", dsn(user, pass, host, port, name))
	m, err := migrate.New("file://"+dir, url)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		return fmt.Errorf("unknown direction %q (want up or down)", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
