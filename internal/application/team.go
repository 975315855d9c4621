package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"leaguebot/internal/domain"
	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/input"
	"leaguebot/internal/ports/output"
)

var _ input.TeamUseCase = (*TeamService)(nil)

type TeamService struct {
	teams    output.TeamRepository
	settings output.GuildSettingsRepository
	roles    output.RoleManager
	notifier output.Notifier
}

func NewTeamService(
	teams output.TeamRepository,
	settings output.GuildSettingsRepository,
	roles output.RoleManager,
	notifier output.Notifier,
) *TeamService {
	return &TeamService{
		teams:    teams,
		settings: settings,
		roles:    roles,
		notifier: notifier,
	}
}

func (s *TeamService) AddTeam(ctx context.Context, actor entities.Actor, guildID, name, leaderID, roleID string) (*entities.Team, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrPermissionDenied
	}
	name = strings.TrimSpace(name)
	teams, err := s.teams.List(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	if findTeam(teams, name) != nil {
		return nil, fmt.Errorf("team %q: %w", name, domain.ErrTeamExists)
	}
	team := &entities.Team{GuildID: guildID, Name: name, LeaderID: leaderID, RoleID: roleID, Members: []string{}}
	if err := s.teams.Save(ctx, team); err != nil {
		return nil, fmt.Errorf("save team: %w", err)
	}
	slog.InfoContext(ctx, "team created", "guild", guildID, "team", name, "leader", leaderID)
	return team, nil
}

func (s *TeamService) RemoveTeam(ctx context.Context, actor entities.Actor, guildID, name string) (*entities.Team, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrPermissionDenied
	}
	teams, err := s.teams.List(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	team := findTeam(teams, strings.TrimSpace(name))
	if team == nil {
		return nil, fmt.Errorf("team %q: %w", name, domain.ErrNotFound)
	}
	if err := s.teams.Delete(ctx, guildID, team.Name); err != nil {
		return nil, fmt.Errorf("delete team: %w", err)
	}
	slog.InfoContext(ctx, "team removed", "guild", guildID, "team", team.Name)
	return team, nil
}

// Kick removes userID from the team the caller leads and revokes its role.
// The caller must be an administrator and a team leader.
func (s *TeamService) Kick(ctx context.Context, actor entities.Actor, guildID, userID string) (*entities.Team, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrPermissionDenied
	}
	teams, err := s.teams.List(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	team := ledTeam(teams, actor.UserID)
	if team == nil {
		return nil, fmt.Errorf("%s leads no team: %w", actor.UserID, domain.ErrPermissionDenied)
	}
	if !team.RemoveMember(userID) {
		return nil, fmt.Errorf("%s on %q: %w", userID, team.Name, domain.ErrNotFound)
	}
	if err := s.teams.Save(ctx, team); err != nil {
		return nil, fmt.Errorf("save team: %w", err)
	}
	bestEffort(ctx, "revoke team role", func(ctx context.Context) error {
		return s.roles.RemoveRole(ctx, guildID, userID, team.RoleID)
	})
	slog.InfoContext(ctx, "member kicked", "guild", guildID, "team", team.Name, "user", userID)
	return team, nil
}

func (s *TeamService) ListTeams(ctx context.Context, guildID string) ([]entities.Team, error) {
	teams, err := s.teams.List(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// Sign adds userID to the team led by the caller. A user may be on one team per
// guild; signing someone already rostered fails with a DuplicateMembershipError.
func (s *TeamService) Sign(ctx context.Context, actor entities.Actor, guildID, userID string) (*entities.Team, error) {
	teams, err := s.teams.List(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	team := ledTeam(teams, actor.UserID)
	if team == nil {
		return nil, fmt.Errorf("%s leads no team: %w", actor.UserID, domain.ErrPermissionDenied)
	}
	for i := range teams {
		if teams[i].HasMember(userID) {
			return nil, &domain.DuplicateMembershipError{Team: teams[i].Name}
		}
	}

	team.Members = append(team.Members, userID)
	if err := s.teams.Save(ctx, team); err != nil {
		return nil, fmt.Errorf("save team: %w", err)
	}

	bestEffort(ctx, "grant team role", func(ctx context.Context) error {
		return s.roles.AddRole(ctx, guildID, userID, team.RoleID)
	})
	bestEffort(ctx, "sign notice", func(ctx context.Context) error {
		settings, err := s.settings.Get(ctx, guildID)
		if err != nil || settings.SignChannelID == "" {
			return err
		}
		return s.notifier.NotifySigning(ctx, settings.SignChannelID, team, userID)
	})
	slog.InfoContext(ctx, "player signed", "guild", guildID, "team", team.Name, "user", userID)
	return team, nil
}

func findTeam(teams []entities.Team, name string) *entities.Team {
	for i := range teams {
		if teams[i].Name == name {
			return &teams[i]
		}
	}
	return nil
}

func ledTeam(teams []entities.Team, leaderID string) *entities.Team {
	for i := range teams {
		if teams[i].LeaderID == leaderID {
			return &teams[i]
		}
	}
	return nil
}
