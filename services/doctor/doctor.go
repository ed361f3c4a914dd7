package doctor

import (
	"context"
	"fmt"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DoctorService manages doctor profiles and the availability templates they
// own. Template invariants are enforced here, at edit time, so slot listing
// never has to fail on a bad template.
type DoctorService interface {
	Register(ctx context.Context, doctor models.Doctor) (*models.Doctor, error)
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	UpdateAvailability(ctx context.Context, id string, template models.AvailabilityTemplate) (*models.Doctor, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
}

// DefaultDoctorService implements DoctorService.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Register(ctx context.Context, doctor models.Doctor) (*models.Doctor, error) {
	if err := doctor.Availability.Validate(); err != nil {
		utils.GetLogger().Debug("rejected availability template", zap.Error(err))
		return nil, scheduling.ErrInvalidTemplate
	}
	doctor.ID = uuid.New().String()
	if err := s.Repo.Create(ctx, &doctor); err != nil {
		return nil, fmt.Errorf("failed to register doctor: %w", err)
	}
	return &doctor, nil
}

func (s *DefaultDoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultDoctorService) UpdateAvailability(ctx context.Context, id string, template models.AvailabilityTemplate) (*models.Doctor, error) {
	if err := template.Validate(); err != nil {
		utils.GetLogger().Debug("rejected availability template", zap.String("doctorID", id), zap.Error(err))
		return nil, scheduling.ErrInvalidTemplate
	}
	if err := s.Repo.UpdateAvailability(ctx, id, template); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultDoctorService) UpdateFCMToken(ctx context.Context, id, token string) error {
	return s.Repo.UpdateFCMToken(ctx, id, token)
}
