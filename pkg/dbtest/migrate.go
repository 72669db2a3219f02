package dbtest

import (
	"fmt"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
)

// MigrateFromFile executes all SQL queries from the files over a database
// connection.
func MigrateFromFile(db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		fileBytes, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.Exec(string(fileBytes)); err != nil {
			return fmt.Errorf("db.Exec(%s): %w", fileName, err)
		}
	}

	return nil
}

// Connect opens the database named by the dsnEnv variable, applies the
// migrations and truncates tables once the test is done. The test is
// skipped when dsnEnv is empty.
func Connect(t testing.TB, dsnEnv string, migrations []string, tables ...string) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("%s is not set", dsnEnv)
	}

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Fatalf("sqlx.Connect: %v", err)
	}

	if err = MigrateFromFile(db, migrations...); err != nil {
		db.Close()
		t.Fatalf("MigrateFromFile: %v", err)
	}

	t.Cleanup(func() {
		for _, table := range tables {
			if _, err := db.Exec("TRUNCATE TABLE " + table); err != nil {
				t.Errorf("truncate %s: %v", table, err)
			}
		}

		db.Close()
	})

	return db
}
