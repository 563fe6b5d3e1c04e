package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The upsert queries lean on constraints the migrations must create:
// ON CONFLICT (name, user_id) needs the subjects unique constraint, and
// class deletion detaches students only through the SET NULL FK.
func TestInitMigrationBacksRepositoryQueries(t *testing.T) {
	up := readMigration(t, "000001_init.up.sql")

	assert.Contains(t, up, "UNIQUE (name, user_id)",
		"subject inserts use ON CONFLICT (name, user_id)")
	assert.Contains(t, up, "FOREIGN KEY (class_id) REFERENCES classes(id) ON DELETE SET NULL",
		"class deletion must detach students, not cascade")

	for _, table := range []string{"users", "classes", "students", "journals", "attendance", "scores", "counseling", "subjects"} {
		assert.Contains(t, up, "CREATE TABLE IF NOT EXISTS "+table, table)
	}
}

func TestInitMigrationDownDropsEveryTable(t *testing.T) {
	down := readMigration(t, "000001_init.down.sql")

	for _, table := range []string{"users", "classes", "students", "journals", "attendance", "scores", "counseling", "subjects"} {
		assert.Contains(t, down, "DROP TABLE IF EXISTS "+table, table)
	}
}

func readMigration(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "migrations", name))
	require.NoError(t, err)
	return strings.ReplaceAll(string(data), "\r\n", "\n")
}
