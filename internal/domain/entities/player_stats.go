package entities

// Stat names, in the order the valuation report lists them.
const (
	StatTackles  = "tackles"
	StatInters   = "inters"
	StatSaves    = "saves"
	StatGoals    = "goals"
	StatPasses   = "passes"
	StatAssists  = "assists"
	StatDribbles = "dribbles"
	StatShots    = "shots"
	StatGames    = "games"
)

// StatOrder is the order of the nine weighted statistics.
var StatOrder = []string{
	StatTackles, StatInters, StatSaves, StatGoals, StatPasses,
	StatAssists, StatDribbles, StatShots, StatGames,
}

// StatWeights is the dollar value of one unit of each statistic.
var StatWeights = map[string]int64{
	StatTackles:  200,
	StatInters:   100,
	StatSaves:    500,
	StatGoals:    600,
	StatPasses:   250,
	StatAssists:  400,
	StatDribbles: 100,
	StatShots:    300,
	StatGames:    200,
}

// PlayerType classifies a player from the category split of their value.
type PlayerType string

const (
	PlayerDefensiveSpecialist PlayerType = "defensive_specialist"
	PlayerOffensivePowerhouse PlayerType = "offensive_powerhouse"
	PlayerElitePlaymaker      PlayerType = "elite_playmaker"
	PlayerTwoWay              PlayerType = "two_way"
	PlayerDefensivePlaymaker  PlayerType = "defensive_playmaker"
	PlayerCreativeAttacker    PlayerType = "creative_attacker"
	PlayerComplete            PlayerType = "complete"
)

// PlayerStats are the raw counts submitted to /value.
type PlayerStats struct {
	Tackles  int64
	Inters   int64
	Saves    int64
	Goals    int64
	Passes   int64
	Assists  int64
	Dribbles int64
	Shots    int64
	Games    int64
}

// Get returns the count for a stat name.
func (p PlayerStats) Get(stat string) int64 {
	switch stat {
	case StatTackles:
		return p.Tackles
	case StatInters:
		return p.Inters
	case StatSaves:
		return p.Saves
	case StatGoals:
		return p.Goals
	case StatPasses:
		return p.Passes
	case StatAssists:
		return p.Assists
	case StatDribbles:
		return p.Dribbles
	case StatShots:
		return p.Shots
	case StatGames:
		return p.Games
	}
	return 0
}

// Contribution is count * weight for one stat.
func (p PlayerStats) Contribution(stat string) int64 {
	return p.Get(stat) * StatWeights[stat]
}

// Value is the weighted sum of all nine statistics.
func (p PlayerStats) Value() int64 {
	var total int64
	for _, stat := range StatOrder {
		total += p.Contribution(stat)
	}
	return total
}

// Category totals as shown in the report. Games count towards playmaking.
func (p PlayerStats) DefensiveValue() int64 {
	return p.Contribution(StatTackles) + p.Contribution(StatInters) + p.Contribution(StatSaves)
}

func (p PlayerStats) OffensiveValue() int64 {
	return p.Contribution(StatGoals) + p.Contribution(StatShots) + p.Contribution(StatDribbles)
}

func (p PlayerStats) PlaymakerValue() int64 {
	return p.Contribution(StatAssists) + p.Contribution(StatPasses) + p.Contribution(StatGames)
}

// Percent returns part as a rounded percentage of the total value; 0 when the value is 0.
func (p PlayerStats) Percent(part int64) int {
	total := p.Value()
	if total == 0 {
		return 0
	}
	return int((float64(part)*100)/float64(total) + 0.5)
}

// Type classifies the player. Unlike the category totals, the playmaker share
// here excludes games played.
func (p PlayerStats) Type() PlayerType {
	total := p.Value()
	if total == 0 {
		return PlayerComplete
	}
	share := func(v int64) float64 { return float64(v) * 100 / float64(total) }
	def := share(p.DefensiveValue())
	off := share(p.OffensiveValue())
	play := share(p.Contribution(StatAssists) + p.Contribution(StatPasses))

	switch {
	case def > 50:
		return PlayerDefensiveSpecialist
	case off > 50:
		return PlayerOffensivePowerhouse
	case play > 50:
		return PlayerElitePlaymaker
	case def >= 33 && off >= 33:
		return PlayerTwoWay
	case def >= 33 && play >= 33:
		return PlayerDefensivePlaymaker
	case off >= 33 && play >= 33:
		return PlayerCreativeAttacker
	default:
		return PlayerComplete
	}
}

// PerGame divides a stat by the number of games, treating 0 games as 1.
func (p PlayerStats) PerGame(stat string) float64 {
	games := p.Games
	if games <= 0 {
		games = 1
	}
	return float64(p.Get(stat)) / float64(games)
}

// ValuePerGame is the total value divided by games played (0 games counts as 1).
func (p PlayerStats) ValuePerGame() int64 {
	games := p.Games
	if games <= 0 {
		games = 1
	}
	return int64(float64(p.Value())/float64(games) + 0.5)
}
