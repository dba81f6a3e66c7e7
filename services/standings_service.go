package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/copaops/copa-system/models"
	"github.com/copaops/copa-system/repositories"
	"github.com/copaops/copa-system/storage"
)

type StandingsService interface {
	// CalculateGroupStandings derives the ranked group table from the
	// completed matches of the group. Standings are never persisted; every
	// call recomputes from the match log. A group with no members yields
	// an empty slice, not an error.
	CalculateGroupStandings(ctx context.Context, groupID int) ([]models.TeamStanding, error)
}

type standingsService struct {
	groupRepo repositories.GroupRepository
	matchRepo repositories.MatchRepository
	uploader  storage.FileUploader
}

func NewStandingsService(
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
) StandingsService {
	return &standingsService{
		groupRepo: groupRepo,
		matchRepo: matchRepo,
		uploader:  uploader,
	}
}

func (s *standingsService) CalculateGroupStandings(ctx context.Context, groupID int) ([]models.TeamStanding, error) {
	teams, err := s.groupRepo.ListTeams(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of group %d: %w", groupID, err)
	}
	if len(teams) == 0 {
		return []models.TeamStanding{}, nil
	}

	// One zeroed accumulator per member team; the slice keeps membership
	// order so full ties rank in input order after the stable sort.
	table := make([]models.TeamStanding, len(teams))
	index := make(map[int]int, len(teams))
	for i, team := range teams {
		table[i] = models.TeamStanding{
			TeamID:        team.ID,
			TeamName:      team.Name,
			TeamShortName: team.ShortName,
			TeamLogoURL:   s.logoURL(team.LogoKey),
		}
		index[team.ID] = i
	}

	matches, err := s.matchRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of group %d: %w", groupID, err)
	}

	for _, match := range matches {
		if !match.IsCompleted() {
			continue
		}

		homeIdx, homeOK := index[match.HomeTeamID]
		awayIdx, awayOK := index[match.AwayTeamID]
		if !homeOK || !awayOK {
			// Stale group assignment: the match references a team that has
			// since left the group. Skip rather than corrupt the table.
			continue
		}

		home, away := &table[homeIdx], &table[awayIdx]
		homeScore, awayScore := *match.HomeScore, *match.AwayScore

		home.MatchesPlayed++
		away.MatchesPlayed++
		home.GoalsFor += homeScore
		home.GoalsAgainst += awayScore
		away.GoalsFor += awayScore
		away.GoalsAgainst += homeScore

		switch {
		case homeScore > awayScore:
			home.Wins++
			home.Points += 3
			away.Losses++
		case homeScore < awayScore:
			away.Wins++
			away.Points += 3
			home.Losses++
		default:
			home.Draws++
			away.Draws++
			home.Points++
			away.Points++
		}
	}

	for i := range table {
		table[i].GoalDiff = table[i].GoalsFor - table[i].GoalsAgainst
	}

	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		return rankKey{a.Points, a.GoalDiff, a.GoalsFor}.beats(rankKey{b.Points, b.GoalDiff, b.GoalsFor})
	})

	return table, nil
}

func (s *standingsService) logoURL(logoKey *string) *string {
	if logoKey == nil || s.uploader == nil {
		return nil
	}
	url := s.uploader.GetPublicURL(*logoKey)
	return &url
}
