package service

import (
	"context"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

type ProgramService struct {
	uow         uow.UOW
	programRepo ProgramRepository
}

func NewProgramService(u uow.UOW) (*ProgramService, error) {
	programRepo, err := uow.GetRepositoryAs[ProgramRepository](u, uow.RepositoryName(repoargs.ProgramRepoName))
	if err != nil {
		return nil, err
	}
	return &ProgramService{
		uow:         u,
		programRepo: programRepo,
	}, nil
}

func (p *ProgramService) Create(ctx context.Context, args repoargs.CreateProgram) (*domain.Program, error) {
	program, err := p.programRepo.CreateProgram(ctx, args)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return program, nil
}

// List returns programs newest first, optionally filtered by the active flag.
func (p *ProgramService) List(ctx context.Context, filter repoargs.ProgramFilter) ([]domain.Program, error) {
	programs, err := p.programRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return programs, nil
}

// Update overwrites only the fields set in args. Returns
// domain.ErrRecordNotFound for an unknown program.
func (p *ProgramService) Update(ctx context.Context, args repoargs.UpdateProgram) (*domain.Program, error) {
	program, err := p.programRepo.UpdateProgram(ctx, args)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return program, nil
}
