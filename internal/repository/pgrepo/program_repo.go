package pgrepo

import (
	"context"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

type ProgramRepository struct {
	db uow.DBTX
}

func NewProgramRepository(db uow.DBTX) *ProgramRepository {
	return &ProgramRepository{db: db}
}

const programColumns = `id, created_at, updated_at, name, description, category, location, price, active`

func (p *ProgramRepository) CreateProgram(ctx context.Context, args repoargs.CreateProgram) (*domain.Program, error) {
	row := p.db.QueryRow(ctx, `
		INSERT INTO programs (name, description, category, location, price, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+programColumns,
		args.Name, args.Description, args.Category, args.Location, args.Price, args.Active)

	program, err := scanProgram(row)
	if err != nil {
		return nil, convertErr(err, "creating program `%s`", args.Name)
	}
	return program, nil
}

func (p *ProgramRepository) FindByID(ctx context.Context, id int64) (*domain.Program, error) {
	row := p.db.QueryRow(ctx, `SELECT `+programColumns+` FROM programs WHERE id = $1`, id)

	program, err := scanProgram(row)
	if err != nil {
		return nil, convertErr(err, "finding program by id %d", id)
	}
	return program, nil
}

// List returns programs newest first, optionally filtered by the active flag.
func (p *ProgramRepository) List(ctx context.Context, filter repoargs.ProgramFilter) ([]domain.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs`
	var queryArgs []any
	if filter.Active != nil {
		query += ` WHERE active = $1`
		queryArgs = append(queryArgs, *filter.Active)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := p.db.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "listing programs")
	}
	defer rows.Close()

	var programs []domain.Program
	for rows.Next() {
		program, scanErr := scanProgram(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning program row")
		}
		programs = append(programs, *program)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing programs")
	}
	return programs, nil
}

// UpdateProgram overwrites only the fields set in args (COALESCE keeps the rest).
func (p *ProgramRepository) UpdateProgram(ctx context.Context, args repoargs.UpdateProgram) (*domain.Program, error) {
	row := p.db.QueryRow(ctx, `
		UPDATE programs
		SET name        = COALESCE($2, name),
		    description = COALESCE($3, description),
		    category    = COALESCE($4, category),
		    location    = COALESCE($5, location),
		    price       = COALESCE($6, price),
		    active      = COALESCE($7, active),
		    updated_at  = now()
		WHERE id = $1
		RETURNING `+programColumns,
		args.ID, args.Name, args.Description, args.Category, args.Location, args.Price, args.Active)

	program, err := scanProgram(row)
	if err != nil {
		return nil, convertErr(err, "updating program %d", args.ID)
	}
	return program, nil
}

func (p *ProgramRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM programs WHERE active`).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting active programs")
	}
	return count, nil
}

func scanProgram(row rowScanner) (*domain.Program, error) {
	var program domain.Program
	err := row.Scan(
		&program.ID,
		&program.CreatedAt,
		&program.UpdatedAt,
		&program.Name,
		&program.Description,
		&program.Category,
		&program.Location,
		&program.Price,
		&program.Active,
	)
	if err != nil {
		return nil, err
	}
	return &program, nil
}
