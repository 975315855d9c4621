package jsonstore

import (
	"context"
	"slices"
	"sort"
	"sync"

	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/output"
)

var _ output.TeamRepository = (*TeamRepository)(nil)

type teamRecord struct {
	LeaderID string   `json:"leaderId"`
	RoleID   string   `json:"roleId"`
	Members  []string `json:"members"`
}

// TeamRepository stores {guildId: {teamName: {...}}}.
type TeamRepository struct {
	path string

	mu  sync.Mutex
	doc map[string]map[string]teamRecord
}

// NewTeamRepository loads path, creating an empty document when it does not exist.
func NewTeamRepository(path string) (*TeamRepository, error) {
	r := &TeamRepository{path: path, doc: make(map[string]map[string]teamRecord)}
	if err := load(path, &r.doc); err != nil {
		return nil, err
	}
	if r.doc == nil {
		r.doc = make(map[string]map[string]teamRecord)
	}
	return r, nil
}

func (r *TeamRepository) List(_ context.Context, guildID string) ([]entities.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	teams := make([]entities.Team, 0, len(r.doc[guildID]))
	for name, t := range r.doc[guildID] {
		members := slices.Clone(t.Members)
		if members == nil {
			members = []string{}
		}
		teams = append(teams, entities.Team{
			GuildID:  guildID,
			Name:     name,
			LeaderID: t.LeaderID,
			RoleID:   t.RoleID,
			Members:  members,
		})
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

func (r *TeamRepository) Save(_ context.Context, team *entities.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc[team.GuildID] == nil {
		r.doc[team.GuildID] = make(map[string]teamRecord)
	}
	members := slices.Clone(team.Members)
	if members == nil {
		members = []string{}
	}
	r.doc[team.GuildID][team.Name] = teamRecord{LeaderID: team.LeaderID, RoleID: team.RoleID, Members: members}
	return save(r.path, r.doc)
}

func (r *TeamRepository) Delete(_ context.Context, guildID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.doc[guildID], name)
	return save(r.path, r.doc)
}
