package service

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByTeamID(ctx context.Context, teamID int) ([]domain.Member, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

type MockChoreoRepository struct {
	mock.Mock
}

func (m *MockChoreoRepository) Create(ctx context.Context, choreo *domain.Choreo) error {
	args := m.Called(ctx, choreo)
	return args.Error(0)
}

func (m *MockChoreoRepository) GetByID(ctx context.Context, id int) (*domain.Choreo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Choreo), args.Error(1)
}

type MockLineupRepository struct {
	mock.Mock
}

func (m *MockLineupRepository) Create(ctx context.Context, lineup *domain.Lineup) error {
	args := m.Called(ctx, lineup)
	return args.Error(0)
}

func (m *MockLineupRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockParticipationRepository struct {
	mock.Mock
}

func (m *MockParticipationRepository) Create(ctx context.Context, p *domain.Participation) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParticipationRepository) Delete(ctx context.Context, choreoID, memberID int) error {
	args := m.Called(ctx, choreoID, memberID)
	return args.Error(0)
}

func (m *MockParticipationRepository) ColorsInUse(ctx context.Context, choreoID int) ([]string, error) {
	args := m.Called(ctx, choreoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
