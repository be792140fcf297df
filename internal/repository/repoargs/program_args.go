package repoargs

import "github.com/shopspring/decimal"

type CreateProgram struct {
	Name        string
	Description string
	Category    string
	Location    string
	Price       decimal.Decimal
	Active      bool
}

// UpdateProgram updates only the non-nil fields.
type UpdateProgram struct {
	ID          int64
	Name        *string
	Description *string
	Category    *string
	Location    *string
	Price       *decimal.Decimal
	Active      *bool
}

type ProgramFilter struct {
	Active *bool
}
