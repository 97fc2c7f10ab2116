package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/dbx"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// exerciseJSON is the element shape inside the users.log jsonb array.
type exerciseJSON struct {
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
}

// PostgresRepository stores each user as one row with the log kept in a
// jsonb array, mirroring the document layout used with MongoDB.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (id, username)
		 VALUES ($1, $2)
		 RETURNING count
		 `

	created := &models.User{ID: primitive.NewObjectID().Hex(), Username: user.Username}
	err := r.db.QueryRowContext(ctx, query, created.ID, created.Username).Scan(&created.Count)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, username, count FROM users
		 WHERE id = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Username, &user.Count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query :=
		`SELECT id, username, count FROM users
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Count); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// AppendExercise concatenates the entry onto the jsonb log and increments
// count in a single UPDATE, which Postgres applies atomically per row.
func (r *PostgresRepository) AppendExercise(ctx context.Context, id string, exercise models.Exercise) (*models.User, error) {
	query :=
		`UPDATE users SET log = log || jsonb_build_array($2::jsonb), count = count + 1
		 WHERE id = $1
		 RETURNING id, username, count
		 `

	entry, err := json.Marshal(exerciseJSON{
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode exercise: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRowContext(ctx, query, id, string(entry)).Scan(&user.ID, &user.Username, &user.Count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// QueryLog unnests the log with its ordinal position, filters and limits
// in SQL, then regroups the rows. NULL bounds and a NULL limit disable the
// corresponding stage.
func (r *PostgresRepository) QueryLog(ctx context.Context, id string, q models.LogQuery) (*models.UserLog, error) {
	query :=
		`SELECT u.id, u.username, u.count,
		        e.value->>'description', (e.value->>'duration')::int, (e.value->>'date')::timestamptz
		 FROM users u
		 CROSS JOIN LATERAL jsonb_array_elements(u.log) WITH ORDINALITY AS e(value, ord)
		 WHERE u.id = $1
		   AND ($2::timestamptz IS NULL OR (e.value->>'date')::timestamptz >= $2::timestamptz)
		   AND ($3::timestamptz IS NULL OR (e.value->>'date')::timestamptz < $3::timestamptz)
		 ORDER BY e.ord
		 LIMIT $4
		 `

	var lower, upper, limit any
	if lo, ok := q.Lower(); ok {
		lower = lo
	}
	if hi, ok := q.Upper(); ok {
		upper = hi
	}
	if q.HasLimit() {
		limit = *q.Limit
	}

	rows, err := r.db.QueryContext(ctx, query, id, lower, upper, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result *models.UserLog
	for rows.Next() {
		var (
			uid, username string
			count         int
			ex            models.Exercise
		)
		if err := rows.Scan(&uid, &username, &count, &ex.Description, &ex.Duration, &ex.Date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if result == nil {
			result = &models.UserLog{Status: models.LogFound, ID: uid, Username: username, Count: count, Query: q}
		}
		ex.Date = ex.Date.UTC()
		result.Log = append(result.Log, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if result == nil {
		return nil, common.ErrorNotFound
	}

	return result, nil
}
