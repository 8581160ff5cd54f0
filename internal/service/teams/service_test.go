package teams

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/teams/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type mockTeamRepo struct {
	create      func(ctx context.Context, team *domain.Team) (*domain.Team, error)
	getByUserID func(ctx context.Context, userID int64) ([]*domain.Team, error)
}

func (m *mockTeamRepo) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	return m.create(ctx, team)
}

func (m *mockTeamRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.Team, error) {
	return m.getByUserID(ctx, userID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCreate(t *testing.T) {
	t.Run("team created with member emails", func(t *testing.T) {
		var created *domain.Team
		teams := &mockTeamRepo{create: func(ctx context.Context, team *domain.Team) (*domain.Team, error) {
			created = team
			out := *team
			out.ID = 1
			return &out, nil
		}}

		svc := NewService(teams, nopLogger{})
		resp, err := svc.Create(context.Background(), &models.CreateTeamRequest{
			UserID:      10,
			Name:        "Support",
			Description: ptr.Ptr("front line"),
			Emails:      []string{"alice@example.com", "bob@example.com"},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(10), created.UserID)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, resp.Emails)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		svc := NewService(&mockTeamRepo{}, nopLogger{})
		_, err := svc.Create(context.Background(), &models.CreateTeamRequest{
			UserID: 10,
			Name:   "",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("overlong name rejected", func(t *testing.T) {
		svc := NewService(&mockTeamRepo{}, nopLogger{})
		_, err := svc.Create(context.Background(), &models.CreateTeamRequest{
			UserID: 10,
			Name:   strings.Repeat("a", domain.MaxTeamNameLength+1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid member email rejected", func(t *testing.T) {
		svc := NewService(&mockTeamRepo{}, nopLogger{})
		_, err := svc.Create(context.Background(), &models.CreateTeamRequest{
			UserID: 10,
			Name:   "Support",
			Emails: []string{"not-an-email"},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("team without emails serializes empty list", func(t *testing.T) {
		teams := &mockTeamRepo{create: func(ctx context.Context, team *domain.Team) (*domain.Team, error) {
			out := *team
			out.ID = 2
			return &out, nil
		}}

		svc := NewService(teams, nopLogger{})
		resp, err := svc.Create(context.Background(), &models.CreateTeamRequest{
			UserID: 10,
			Name:   "Solo",
		})
		require.NoError(t, err)
		assert.NotNil(t, resp.Emails)
		assert.Empty(t, resp.Emails)
	})
}

func TestListByUser(t *testing.T) {
	t.Run("returns user teams", func(t *testing.T) {
		teams := &mockTeamRepo{getByUserID: func(ctx context.Context, userID int64) ([]*domain.Team, error) {
			return []*domain.Team{
				{ID: 1, UserID: userID, Name: "Support"},
				{ID: 2, UserID: userID, Name: "Sales"},
			}, nil
		}}

		svc := NewService(teams, nopLogger{})
		resp, err := svc.ListByUser(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, resp.Teams, 2)
		assert.Equal(t, "Support", resp.Teams[0].Name)
	})

	t.Run("no teams yields empty list", func(t *testing.T) {
		teams := &mockTeamRepo{getByUserID: func(ctx context.Context, userID int64) ([]*domain.Team, error) {
			return nil, nil
		}}

		svc := NewService(teams, nopLogger{})
		resp, err := svc.ListByUser(context.Background(), 10)
		require.NoError(t, err)
		assert.NotNil(t, resp.Teams)
		assert.Empty(t, resp.Teams)
	})
}
