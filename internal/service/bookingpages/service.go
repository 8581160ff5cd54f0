package bookingpages

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	pageRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/bookingpage"
	calendarRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// Алиас страницы - часть публичного URL, допускаем только slug-символы
var aliasPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Service сервис для работы со страницами бронирования
type Service struct {
	pageRepo      PageRepository
	calendarRepo  CalendarRepository
	blacklistRepo BlacklistRepository
	userRepo      UserRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса страниц бронирования
func NewService(
	pageRepository PageRepository,
	calendarRepository CalendarRepository,
	blacklistRepository BlacklistRepository,
	userRepository UserRepository,
	logger Logger,
) *Service {
	return &Service{
		pageRepo:      pageRepository,
		calendarRepo:  calendarRepository,
		blacklistRepo: blacklistRepository,
		userRepo:      userRepository,
		logger:        logger,
	}
}

// Create создает новую страницу бронирования
// Страница создается неодобренной (is_approved=false) и становится публично
// доступной только после одобрения администратором
func (s *Service) Create(ctx context.Context, req *models.CreatePageRequest) (*models.PageResponse, error) {
	s.logger.Info("Create: creating page alias=%s for user=%d", req.Alias, req.UserID)

	page := &domain.BookingPage{
		UserID:                req.UserID,
		CalendarID:            req.CalendarID,
		Alias:                 req.Alias,
		IsApproved:            false,
		IsActive:              true,
		DurationMinutes:       ptr.Deref(req.DurationMinutes, domain.DefaultDurationMinutes),
		BufferBeforeMinutes:   ptr.Deref(req.BufferBeforeMinutes, domain.DefaultBufferMinutes),
		BufferAfterMinutes:    ptr.Deref(req.BufferAfterMinutes, domain.DefaultBufferMinutes),
		MaxBookingsPerVisitor: ptr.Deref(req.MaxBookingsPerVisitor, domain.DefaultMaxBookingsPerVisitor),
		Description:           req.Description,
	}

	if err := validatePageSettings(page); err != nil {
		s.logger.Warn("Create: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	// Проверяем черный список алиасов
	if err := s.checkAliasAllowed(ctx, page.Alias); err != nil {
		s.logger.Warn("Create: alias %q rejected for user=%d: %v", page.Alias, req.UserID, err)
		return nil, err
	}

	// Календарь должен существовать и принадлежать пользователю
	if err := s.checkCalendarOwnership(ctx, req.CalendarID, req.UserID); err != nil {
		return nil, err
	}

	created, err := s.pageRepo.Create(ctx, page)
	if err != nil {
		if errors.Is(err, pageRepo.ErrAliasTaken) {
			s.logger.Warn("Create: alias %q already taken for user=%d", page.Alias, req.UserID)
			return nil, ErrAliasTaken
		}
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created page id=%d for user=%d", created.ID, req.UserID)
	return models.FromDomainPage(created), nil
}

// GetPublicByAliases получает публичную информацию о странице по паре алиасов
// Неодобренные и отключенные страницы наружу не отдаются: для посетителя
// они неотличимы от несуществующих
func (s *Service) GetPublicByAliases(ctx context.Context, userAlias, pageAlias string) (*models.PublicPageResponse, error) {
	s.logger.Info("GetPublicByAliases: fetching public page %s/%s", userAlias, pageAlias)

	page, err := s.pageRepo.GetByAliases(ctx, userAlias, pageAlias)
	if err != nil {
		if errors.Is(err, pageRepo.ErrPageNotFound) {
			s.logger.Warn("GetPublicByAliases: page %s/%s not found", userAlias, pageAlias)
			return nil, ErrPageNotFound
		}
		s.logger.Error("GetPublicByAliases: repository error for %s/%s: %v", userAlias, pageAlias, err)
		return nil, fmt.Errorf("%w: GetPublicByAliases - repository error: %v", ErrInternal, err)
	}

	if !page.IsBookable() {
		s.logger.Warn("GetPublicByAliases: page %s/%s is not bookable", userAlias, pageAlias)
		return nil, ErrPageNotFound
	}

	owner, err := s.userRepo.GetByID(ctx, page.UserID)
	if err != nil {
		s.logger.Error("GetPublicByAliases: failed to get owner id=%d: %v", page.UserID, err)
		return nil, fmt.Errorf("%w: GetPublicByAliases - failed to get owner: %v", ErrInternal, err)
	}

	return &models.PublicPageResponse{
		UserAlias:       userAlias,
		PageAlias:       page.Alias,
		DurationMinutes: page.DurationMinutes,
		Description:     page.Description,
		Timezone:        owner.Timezone,
	}, nil
}

// GetByID получает страницу бронирования по ID
// Доступно владельцу страницы и супер-администратору
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.PageResponse, error) {
	s.logger.Info("GetByID: fetching page id=%d for user=%d", id, userID)

	page, err := s.getPage(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if page.UserID != userID {
		if err := s.checkSuperAdmin(ctx, userID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%d to page id=%d", userID, id)
			return nil, ErrAccessDenied
		}
	}

	return models.FromDomainPage(page), nil
}

// ListByUser получает все страницы бронирования пользователя
func (s *Service) ListByUser(ctx context.Context, userID int64) (*models.PageListResponse, error) {
	s.logger.Info("ListByUser: fetching pages for user=%d", userID)

	pages, err := s.pageRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: fetched %d pages for user=%d", len(pages), userID)
	return models.FromDomainPageList(pages), nil
}

// Update обновляет настройки страницы бронирования
// Доступно только владельцу страницы
func (s *Service) Update(ctx context.Context, pageID int64, req *models.UpdatePageRequest) (*models.PageResponse, error) {
	s.logger.Info("Update: updating page id=%d by user=%d", pageID, req.UserID)

	page, err := s.getPage(ctx, pageID, "Update")
	if err != nil {
		return nil, err
	}

	if page.UserID != req.UserID {
		s.logger.Warn("Update: access denied for user=%d to page id=%d", req.UserID, pageID)
		return nil, ErrAccessDenied
	}

	if req.Alias != nil && *req.Alias != page.Alias {
		if err := s.checkAliasAllowed(ctx, *req.Alias); err != nil {
			s.logger.Warn("Update: alias %q rejected for page id=%d: %v", *req.Alias, pageID, err)
			return nil, err
		}
		page.Alias = *req.Alias
	}

	if req.IsActive != nil {
		page.IsActive = *req.IsActive
	}
	if req.DurationMinutes != nil {
		page.DurationMinutes = *req.DurationMinutes
	}
	if req.BufferBeforeMinutes != nil {
		page.BufferBeforeMinutes = *req.BufferBeforeMinutes
	}
	if req.BufferAfterMinutes != nil {
		page.BufferAfterMinutes = *req.BufferAfterMinutes
	}
	if req.MaxBookingsPerVisitor != nil {
		page.MaxBookingsPerVisitor = *req.MaxBookingsPerVisitor
	}
	if req.Description != nil {
		page.Description = req.Description
	}

	if err := validatePageSettings(page); err != nil {
		s.logger.Warn("Update: validation failed for page id=%d: %v", pageID, err)
		return nil, err
	}

	if err := s.pageRepo.Update(ctx, page); err != nil {
		if errors.Is(err, pageRepo.ErrAliasTaken) {
			s.logger.Warn("Update: alias %q already taken for page id=%d", page.Alias, pageID)
			return nil, ErrAliasTaken
		}
		if errors.Is(err, pageRepo.ErrPageNotFound) {
			return nil, ErrPageNotFound
		}
		s.logger.Error("Update: repository error for page id=%d: %v", pageID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated page id=%d", pageID)
	return models.FromDomainPage(page), nil
}

// ListPending получает страницы, ожидающие одобрения
// Доступно только супер-администратору
func (s *Service) ListPending(ctx context.Context, userID int64) (*models.PageListResponse, error) {
	s.logger.Info("ListPending: fetching pending pages for admin=%d", userID)

	if err := s.checkSuperAdmin(ctx, userID); err != nil {
		s.logger.Warn("ListPending: access denied for user=%d", userID)
		return nil, err
	}

	pages, err := s.pageRepo.GetPending(ctx)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPending: fetched %d pending pages", len(pages))
	return models.FromDomainPageList(pages), nil
}

// Approve одобряет или отклоняет страницу бронирования
// Доступно только супер-администратору
func (s *Service) Approve(ctx context.Context, pageID int64, req *models.ApprovePageRequest) error {
	s.logger.Info("Approve: setting approved=%t for page id=%d by admin=%d", req.Approved, pageID, req.UserID)

	if err := s.checkSuperAdmin(ctx, req.UserID); err != nil {
		s.logger.Warn("Approve: access denied for user=%d", req.UserID)
		return err
	}

	if err := s.pageRepo.SetApproved(ctx, pageID, req.Approved); err != nil {
		if errors.Is(err, pageRepo.ErrPageNotFound) {
			s.logger.Warn("Approve: page id=%d not found", pageID)
			return ErrPageNotFound
		}
		s.logger.Error("Approve: repository error for page id=%d: %v", pageID, err)
		return fmt.Errorf("%w: Approve - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Approve: successfully set approved=%t for page id=%d", req.Approved, pageID)
	return nil
}

// Вспомогательные методы

func (s *Service) getPage(ctx context.Context, id int64, op string) (*domain.BookingPage, error) {
	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pageRepo.ErrPageNotFound) {
			s.logger.Warn("%s: page id=%d not found", op, id)
			return nil, ErrPageNotFound
		}
		s.logger.Error("%s: repository error for page id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return page, nil
}

// checkAliasAllowed проверяет формат алиаса и его отсутствие в черном списке
func (s *Service) checkAliasAllowed(ctx context.Context, alias string) error {
	if alias == "" || len(alias) > domain.MaxAliasLength {
		return fmt.Errorf("%w: alias must be 1-%d characters", ErrInvalidInput, domain.MaxAliasLength)
	}
	if !aliasPattern.MatchString(alias) {
		return fmt.Errorf("%w: alias must contain only lowercase letters, digits and hyphens", ErrInvalidInput)
	}

	blocked, err := s.blacklistRepo.Contains(ctx, alias)
	if err != nil {
		return fmt.Errorf("%w: checkAliasAllowed - repository error: %v", ErrInternal, err)
	}
	if blocked {
		return ErrAliasBlocked
	}

	return nil
}

// checkCalendarOwnership проверяет, что календарь существует и принадлежит пользователю
func (s *Service) checkCalendarOwnership(ctx context.Context, calendarID, userID int64) error {
	cal, err := s.calendarRepo.GetByID(ctx, calendarID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Warn("checkCalendarOwnership: calendar id=%d not found", calendarID)
			return ErrCalendarNotFound
		}
		s.logger.Error("checkCalendarOwnership: repository error for calendar id=%d: %v", calendarID, err)
		return fmt.Errorf("%w: checkCalendarOwnership - repository error: %v", ErrInternal, err)
	}

	if cal.UserID != userID {
		s.logger.Warn("checkCalendarOwnership: calendar id=%d does not belong to user=%d", calendarID, userID)
		return ErrAccessDenied
	}

	return nil
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

// validatePageSettings проверяет бизнес-ограничения настроек страницы
func validatePageSettings(page *domain.BookingPage) error {
	if page.DurationMinutes < domain.MinDurationMinutes || page.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if page.BufferBeforeMinutes < domain.MinBufferMinutes || page.BufferBeforeMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferBeforeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}

	if page.BufferAfterMinutes < domain.MinBufferMinutes || page.BufferAfterMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferAfterMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}

	if page.MaxBookingsPerVisitor < domain.MinBookingsPerVisitor || page.MaxBookingsPerVisitor > domain.MaxBookingsPerVisitor {
		return fmt.Errorf("%w: maxBookingsPerVisitor must be between %d and %d",
			ErrInvalidInput, domain.MinBookingsPerVisitor, domain.MaxBookingsPerVisitor)
	}

	if page.Description != nil && len(*page.Description) > domain.MaxNotesLength {
		return fmt.Errorf("%w: description is too long (max %d characters)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
