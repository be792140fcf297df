package service

import (
	"fmt"

	"github.com/kursusin/affiliate-backend/internal/service/psswd"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

type AppServices struct {
	UserService         *UserService
	AffiliateService    *AffiliateService
	ProgramService      *ProgramService
	RegistrationService *RegistrationService
	PayoutService       *PayoutService
	StatsService        *StatsService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.PasswordHash(""))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	affiliateService, affiliateServiceErr := NewAffiliateService(unitOfWork)
	if affiliateServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", affiliateServiceErr.Error())
	}

	programService, programServiceErr := NewProgramService(unitOfWork)
	if programServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", programServiceErr.Error())
	}

	registrationService, registrationServiceErr := NewRegistrationService(unitOfWork)
	if registrationServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", registrationServiceErr.Error())
	}

	payoutService, payoutServiceErr := NewPayoutService(unitOfWork)
	if payoutServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", payoutServiceErr.Error())
	}

	statsService, statsServiceErr := NewStatsService(unitOfWork)
	if statsServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", statsServiceErr.Error())
	}

	return &AppServices{
		UserService:         userService,
		AffiliateService:    affiliateService,
		ProgramService:      programService,
		RegistrationService: registrationService,
		PayoutService:       payoutService,
		StatsService:        statsService,
	}, nil
}
