package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/reginayiwang/movement-breaks/migrations"
)

// setupPostgresContainer starts a postgres container and applies the schema
// migrations. All repository tests share the same schema, so one helper
// serves them all.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	goose.SetBaseFS(migrations.Migrations)
	assert.NoError(t, goose.SetDialect("pgx"))
	assert.NoError(t, goose.Up(db.DB, "."))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// seedUser inserts a user row and returns its id.
func seedUser(t *testing.T, db *sqlx.DB, username string) (userID string) {
	t.Helper()
	err := db.Get(&userID,
		`INSERT INTO users (username, password_hash) VALUES ($1, 'hash') RETURNING user_id`, username)
	assert.NoError(t, err)
	return userID
}

// seedEquipment inserts an equipment row and returns its id.
func seedEquipment(t *testing.T, db *sqlx.DB, name string) (equipmentID string) {
	t.Helper()
	err := db.Get(&equipmentID,
		`INSERT INTO equipment (name) VALUES ($1) RETURNING equipment_id`, name)
	assert.NoError(t, err)
	return equipmentID
}

// seedTarget inserts a target row and returns its id.
func seedTarget(t *testing.T, db *sqlx.DB, name string) (targetID string) {
	t.Helper()
	err := db.Get(&targetID,
		`INSERT INTO targets (name) VALUES ($1) RETURNING target_id`, name)
	assert.NoError(t, err)
	return targetID
}

// seedExercise inserts an exercise row and returns its id.
func seedExercise(t *testing.T, db *sqlx.DB, name, equipmentID, targetID string) (exerciseID string) {
	t.Helper()
	err := db.Get(&exerciseID,
		`INSERT INTO exercises (name, gif_url, instructions, equipment_id, target_id)
		 VALUES ($1, 'http://example.com/'||$1||'.gif', '["step one"]'::jsonb, $2, $3)
		 RETURNING exercise_id`, name, equipmentID, targetID)
	assert.NoError(t, err)
	return exerciseID
}
