package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// Project is a saved drivetrain design: the architecture, the input set and
// the last evaluation result, stored as JSON documents.
type Project struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Name      string          `json:"name"`
	Config    json.RawMessage `json:"config"`
	Input     json.RawMessage `json:"input"`
	Output    json.RawMessage `json:"output"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error)

	SaveProject(ctx context.Context, userID int, name string, config, input, output json.RawMessage) (int, error)
	ListProjects(ctx context.Context, userID int) ([]Project, error)
	GetProject(ctx context.Context, userID, projectID int) (Project, error)
	DeleteProject(ctx context.Context, userID, projectID int) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, '') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description)
	return p, err
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error) {
	var p Profile
	query := `UPDATE users SET login=COALESCE(NULLIF($2,''), login), description=$3
	          WHERE id=$1 RETURNING id, login, email, COALESCE(description, '')`
	err := r.db.QueryRowContext(ctx, query, id, login, description).Scan(&p.ID, &p.Login, &p.Email, &p.Description)
	return p, err
}

func (r *PostgresUserRepository) SaveProject(ctx context.Context, userID int, name string, config, input, output json.RawMessage) (int, error) {
	var id int
	query := `INSERT INTO projects (user_id, name, config, input, output)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, name, config, input, output).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListProjects(ctx context.Context, userID int) ([]Project, error) {
	query := `SELECT id, user_id, name, config, input, output, created_at
	          FROM projects WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Config, &p.Input, &p.Output, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PostgresUserRepository) GetProject(ctx context.Context, userID, projectID int) (Project, error) {
	var p Project
	query := `SELECT id, user_id, name, config, input, output, created_at
	          FROM projects WHERE id=$1 AND user_id=$2`
	err := r.db.QueryRowContext(ctx, query, projectID, userID).
		Scan(&p.ID, &p.UserID, &p.Name, &p.Config, &p.Input, &p.Output, &p.CreatedAt)
	return p, err
}

func (r *PostgresUserRepository) DeleteProject(ctx context.Context, userID, projectID int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id=$1 AND user_id=$2", projectID, userID)
	return err
}
