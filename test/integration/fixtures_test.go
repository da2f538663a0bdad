//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/metrics"
	"github.com/bagdasarian/choreo-timeline/internal/repository/postgres"
	"github.com/bagdasarian/choreo-timeline/internal/service"
	"github.com/bagdasarian/choreo-timeline/internal/timeline"
	"github.com/stretchr/testify/require"
)

type services struct {
	teams         service.TeamService
	choreos       service.ChoreoService
	lineups       service.LineupService
	positions     service.PositionService
	participation service.ParticipationService
}

func newServices(db *sql.DB) services {
	m := metrics.New()
	log := logging.Nop()

	teamRepo := postgres.NewTeamRepository(db)
	memberRepo := postgres.NewMemberRepository(db)
	choreoRepo := postgres.NewChoreoRepository(db)
	lineupRepo := postgres.NewLineupRepository(db)
	participationRepo := postgres.NewParticipationRepository(db)

	return services{
		teams: service.NewTeamService(teamRepo, m, log),
		choreos: service.NewChoreoService(choreoRepo, memberRepo,
			timeline.NewInterpolator(nil), timeline.NewCountGrid(8), 512, m, log),
		lineups:   service.NewLineupService(choreoRepo, lineupRepo, m, log),
		positions: service.NewPositionService(db, timeline.NewOrderingGuard(time.Now), m, log),
		participation: service.NewParticipationService(db, choreoRepo, memberRepo, participationRepo,
			timeline.NewColorAssigner(nil, rand.New(rand.NewSource(7))), m, log),
	}
}

// seedChoreo создает команду из трех человек и хореографию на 32 счёта,
// в которой участвуют первые двое
func seedChoreo(t *testing.T, ctx context.Context, s services) (*domain.Team, *domain.Choreo) {
	t.Helper()

	team, err := s.teams.CreateTeam(ctx, &domain.Team{
		Name: "Wildcats",
		Members: []domain.Member{
			{Name: "Alice", Abbreviation: "AL"},
			{Name: "Bob", Abbreviation: "BO"},
			{Name: "Carol", Abbreviation: "CA"},
		},
	})
	require.NoError(t, err)

	choreo, err := s.choreos.CreateChoreo(ctx, &domain.Choreo{
		Name:    "Finals",
		Counts:  32,
		MatType: domain.MatTypeCheer,
		TeamID:  team.ID,
	})
	require.NoError(t, err)

	for _, m := range team.Members[:2] {
		_, err := s.participation.AddParticipant(ctx, choreo.ID, m.ID, "")
		require.NoError(t, err)
	}

	return team, choreo
}
