package disburse

import "errors"

var (
	ErrNoPayouts = errors.New("no payouts")
)
