package handler

import (
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/timeline"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func domainMemberToHTTP(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		Nickname:     m.Nickname,
		Abbreviation: m.Abbreviation,
	}
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	members := make([]MemberResponse, 0, len(team.Members))
	for i := range team.Members {
		members = append(members, domainMemberToHTTP(&team.Members[i]))
	}

	return TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		Members:   members,
		CreatedAt: formatTime(team.CreatedAt),
	}
}

func httpTeamToDomain(req TeamRequest) *domain.Team {
	members := make([]domain.Member, 0, len(req.Members))
	for _, member := range req.Members {
		members = append(members, domain.Member{
			Name:         member.Name,
			Nickname:     member.Nickname,
			Abbreviation: member.Abbreviation,
		})
	}

	return &domain.Team{
		Name:    req.Name,
		Members: members,
	}
}

func httpChoreoToDomain(req ChoreoRequest) *domain.Choreo {
	return &domain.Choreo{
		Name:    req.Name,
		Counts:  req.Counts,
		MatType: domain.MatType(req.MatType),
		TeamID:  req.TeamID,
	}
}

func domainChoreoToHTTP(c *domain.Choreo) ChoreoResponse {
	lineups := make([]LineupResponse, 0, len(c.Lineups))
	for i := range c.Lineups {
		lineups = append(lineups, domainLineupToHTTP(&c.Lineups[i]))
	}

	participants := make([]ParticipantResponse, 0, len(c.Participations))
	for i := range c.Participations {
		participants = append(participants, domainParticipationToHTTP(&c.Participations[i]))
	}

	return ChoreoResponse{
		ID:           c.ID,
		Name:         c.Name,
		Counts:       c.Counts,
		MatType:      string(c.MatType),
		TeamID:       c.TeamID,
		Lineups:      lineups,
		Participants: participants,
		CreatedAt:    formatTime(c.CreatedAt),
	}
}

func httpLineupToDomain(req LineupRequest) *domain.Lineup {
	positions := make([]domain.Position, 0, len(req.Positions))
	for _, p := range req.Positions {
		positions = append(positions, domain.Position{
			MemberID: p.MemberID,
			X:        p.X,
			Y:        p.Y,
		})
	}

	return &domain.Lineup{
		StartCount: req.StartCount,
		EndCount:   req.EndCount,
		Positions:  positions,
	}
}

func domainLineupToHTTP(l *domain.Lineup) LineupResponse {
	positions := make([]PositionResponse, 0, len(l.Positions))
	for i := range l.Positions {
		positions = append(positions, domainPositionToHTTP(&l.Positions[i]))
	}

	return LineupResponse{
		ID:         l.ID,
		ChoreoID:   l.ChoreoID,
		StartCount: l.StartCount,
		EndCount:   l.EndCount,
		Positions:  positions,
	}
}

func domainPositionToHTTP(p *domain.Position) PositionResponse {
	var stamp *string
	if p.TimeOfManualUpdate != nil {
		s := formatTime(*p.TimeOfManualUpdate)
		stamp = &s
	}

	return PositionResponse{
		ID:                 p.ID,
		LineupID:           p.LineupID,
		MemberID:           p.MemberID,
		X:                  p.X,
		Y:                  p.Y,
		TimeOfManualUpdate: stamp,
	}
}

func httpPositionUpdateToDomain(req PositionUpdateRequest) domain.PositionUpdate {
	return domain.PositionUpdate{
		X:                  req.X,
		Y:                  req.Y,
		TimeOfManualUpdate: req.TimeOfManualUpdate,
	}
}

func domainParticipationToHTTP(p *domain.Participation) ParticipantResponse {
	return ParticipantResponse{
		ChoreoID: p.ChoreoID,
		MemberID: p.MemberID,
		Color:    p.Color,
	}
}

func placementsToHTTP(placements []timeline.Placement) []PlacementResponse {
	result := make([]PlacementResponse, 0, len(placements))
	for _, p := range placements {
		var member *MemberResponse
		if p.Member != nil {
			m := domainMemberToHTTP(p.Member)
			member = &m
		}
		result = append(result, PlacementResponse{
			MemberID: p.MemberID,
			Member:   member,
			X:        p.X,
			Y:        p.Y,
		})
	}
	return result
}

func gridRowsToHTTP(rows []timeline.GridRow) []GridRowResponse {
	result := make([]GridRowResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, GridRowResponse{Bar: row.Bar, Counts: row.Counts})
	}
	return result
}
