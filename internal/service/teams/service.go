package teams

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/teams/models"
)

// Service сервис для работы с командами пользователя
type Service struct {
	teamRepo TeamRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса команд
func NewService(teamRepository TeamRepository, logger Logger) *Service {
	return &Service{
		teamRepo: teamRepository,
		logger:   logger,
	}
}

// Create создает новую команду
func (s *Service) Create(ctx context.Context, req *models.CreateTeamRequest) (*models.TeamResponse, error) {
	s.logger.Info("Create: creating team name=%q for user=%d", req.Name, req.UserID)

	if req.Name == "" || len(req.Name) > domain.MaxTeamNameLength {
		return nil, fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, domain.MaxTeamNameLength)
	}
	for _, email := range req.Emails {
		if _, err := mail.ParseAddress(email); err != nil {
			s.logger.Warn("Create: invalid team member email %q for user=%d", email, req.UserID)
			return nil, fmt.Errorf("%w: invalid member email %q", ErrInvalidInput, email)
		}
	}

	team := &domain.Team{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Emails:      req.Emails,
	}

	created, err := s.teamRepo.Create(ctx, team)
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created team id=%d for user=%d", created.ID, req.UserID)
	return models.FromDomainTeam(created), nil
}

// ListByUser получает все команды пользователя
func (s *Service) ListByUser(ctx context.Context, userID int64) (*models.TeamListResponse, error) {
	s.logger.Info("ListByUser: fetching teams for user=%d", userID)

	teams, err := s.teamRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTeamList(teams), nil
}
