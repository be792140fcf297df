package pgrepo

import (
	"context"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, created_at, updated_at, email, full_name, role, encrypted_password`

// CreateUser inserts a user. Returns domain.ErrDuplicateKey on an email
// conflict, domain.ErrUnknown otherwise.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO users (email, full_name, role, encrypted_password)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		args.Email, args.FullName, args.Role, args.EncryptedPassword)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

// FindByEmail returns domain.ErrRecordNotFound when no user carries the email.
func (u *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Email,
		&user.FullName,
		&user.Role,
		&user.EncryptedPassword,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
