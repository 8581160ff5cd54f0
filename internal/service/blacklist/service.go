package blacklist

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	blacklistRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/blacklist"
	"github.com/m04kA/SMC-SchedulingService/internal/service/blacklist/models"
)

// Service сервис для работы с черным списком алиасов
// Все операции доступны только супер-администратору
type Service struct {
	blacklistRepo BlacklistRepository
	userRepo      UserRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса черного списка
func NewService(
	blacklistRepository BlacklistRepository,
	userRepository UserRepository,
	logger Logger,
) *Service {
	return &Service{
		blacklistRepo: blacklistRepository,
		userRepo:      userRepository,
		logger:        logger,
	}
}

// Add добавляет алиас в черный список
func (s *Service) Add(ctx context.Context, req *models.AddEntryRequest) (*models.EntryResponse, error) {
	s.logger.Info("Add: blocking alias=%s by admin=%d", req.Alias, req.UserID)

	if err := s.checkSuperAdmin(ctx, req.UserID); err != nil {
		s.logger.Warn("Add: access denied for user=%d", req.UserID)
		return nil, err
	}

	if req.Alias == "" || len(req.Alias) > domain.MaxAliasLength {
		return nil, fmt.Errorf("%w: alias must be 1-%d characters", ErrInvalidInput, domain.MaxAliasLength)
	}

	entry := &domain.AliasBlacklistEntry{
		Alias:     req.Alias,
		Reason:    req.Reason,
		CreatedBy: req.UserID,
	}

	created, err := s.blacklistRepo.Add(ctx, entry)
	if err != nil {
		if errors.Is(err, blacklistRepo.ErrAliasAlreadyBlocked) {
			s.logger.Warn("Add: alias=%s already blocked", req.Alias)
			return nil, ErrAliasAlreadyBlocked
		}
		s.logger.Error("Add: repository error for alias=%s: %v", req.Alias, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: successfully blocked alias=%s, entry id=%d", req.Alias, created.ID)
	return models.FromDomainEntry(created), nil
}

// Remove удаляет алиас из черного списка
func (s *Service) Remove(ctx context.Context, req *models.RemoveEntryRequest) error {
	s.logger.Info("Remove: unblocking alias=%s by admin=%d", req.Alias, req.UserID)

	if err := s.checkSuperAdmin(ctx, req.UserID); err != nil {
		s.logger.Warn("Remove: access denied for user=%d", req.UserID)
		return err
	}

	if err := s.blacklistRepo.Remove(ctx, req.Alias); err != nil {
		if errors.Is(err, blacklistRepo.ErrEntryNotFound) {
			s.logger.Warn("Remove: alias=%s not found in blacklist", req.Alias)
			return ErrEntryNotFound
		}
		s.logger.Error("Remove: repository error for alias=%s: %v", req.Alias, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: successfully unblocked alias=%s", req.Alias)
	return nil
}

// List получает все записи черного списка
func (s *Service) List(ctx context.Context, userID int64) (*models.EntryListResponse, error) {
	s.logger.Info("List: fetching blacklist for admin=%d", userID)

	if err := s.checkSuperAdmin(ctx, userID); err != nil {
		s.logger.Warn("List: access denied for user=%d", userID)
		return nil, err
	}

	entries, err := s.blacklistRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d blacklist entries", len(entries))
	return models.FromDomainEntryList(entries), nil
}

// checkSuperAdmin проверяет, что пользователь является супер-администратором
func (s *Service) checkSuperAdmin(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ErrAccessDenied
	}
	if !user.IsSuperAdmin() {
		return ErrAccessDenied
	}
	return nil
}
