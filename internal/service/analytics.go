package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/engine"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/keys"
)

// LeaderboardStats lists the accepted leaderboard keys in display order.
var LeaderboardStats = []string{
	constants.LeaderboardDefaultKey,
	game.StatHP,
	game.StatAttack,
	game.StatDefense,
	game.StatSpecialAttack,
	game.StatSpecialDefense,
}

type GameStats struct {
	TotalLLMs    int                `json:"totalLLMs"`
	Companies    []string           `json:"companies"`
	Types        []game.ElementType `json:"types"`
	AverageStats game.StatBlock     `json:"averageStats"`
}

// ComputeGameStats aggregates the roster: unique companies and types (primary
// and secondary) in first-seen order, and each stat averaged and rounded.
func ComputeGameStats(cat *game.Catalog) GameStats {
	all := cat.All()
	out := GameStats{TotalLLMs: len(all), Companies: []string{}, Types: []game.ElementType{}}
	if len(all) == 0 {
		return out
	}
	seenCompany := map[string]bool{}
	seenType := map[game.ElementType]bool{}
	var sum game.StatBlock
	for _, c := range all {
		if !seenCompany[c.Company] {
			seenCompany[c.Company] = true
			out.Companies = append(out.Companies, c.Company)
		}
		for _, t := range []game.ElementType{c.Type, c.SecondaryType} {
			if t != "" && !seenType[t] {
				seenType[t] = true
				out.Types = append(out.Types, t)
			}
		}
		sum.HP += c.Stats.HP
		sum.Attack += c.Stats.Attack
		sum.Defense += c.Stats.Defense
		sum.SpecialAttack += c.Stats.SpecialAttack
		sum.SpecialDefense += c.Stats.SpecialDefense
		sum.Speed += c.Stats.Speed
	}
	n := float64(len(all))
	avg := func(v int) int { return int(math.Round(float64(v) / n)) }
	out.AverageStats = game.StatBlock{
		HP:             avg(sum.HP),
		Attack:         avg(sum.Attack),
		Defense:        avg(sum.Defense),
		SpecialAttack:  avg(sum.SpecialAttack),
		SpecialDefense: avg(sum.SpecialDefense),
		Speed:          avg(sum.Speed),
	}
	return out
}

type LeaderboardEntry struct {
	Rank      int              `json:"rank"`
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Company   string           `json:"company"`
	Type      game.ElementType `json:"type"`
	StatValue int              `json:"statValue"`
	Stats     game.StatBlock   `json:"stats"`
}

func statValue(c game.CharacterDefinition, stat string) (int, bool) {
	if stat == constants.LeaderboardDefaultKey {
		return c.Stats.Total(), true
	}
	return c.Stats.Value(stat)
}

func validLeaderboardStat(stat string) bool {
	for _, s := range LeaderboardStats {
		if s == stat {
			return true
		}
	}
	return false
}

// Leaderboard ranks the roster by stat, highest first. An empty stat means
// the total. Ties keep catalog order.
func Leaderboard(cat *game.Catalog, stat string) ([]LeaderboardEntry, error) {
	if stat == "" {
		stat = constants.LeaderboardDefaultKey
	}
	if !validLeaderboardStat(stat) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStat, stat)
	}
	all := cat.All()
	out := make([]LeaderboardEntry, 0, len(all))
	for _, c := range all {
		v, _ := statValue(c, stat)
		out = append(out, LeaderboardEntry{
			ID:        c.ID,
			Name:      c.Name,
			Company:   c.Company,
			Type:      c.Type,
			StatValue: v,
			Stats:     c.Stats,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StatValue > out[j].StatValue })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

type MatchupSide struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Type          game.ElementType `json:"type"`
	TotalStats    int              `json:"totalStats"`
	TypeAdvantage float64          `json:"typeAdvantage"`
	WinChance     int              `json:"winChance"`
	Strengths     []game.NamedStat `json:"strengths"`
}

type Matchup struct {
	Key        string      `json:"key"`
	LLM1       MatchupSide `json:"llm1"`
	LLM2       MatchupSide `json:"llm2"`
	Prediction string      `json:"prediction"`
	Confidence int         `json:"confidence"`
}

// topStats returns the n highest stats, ties broken by declaration order.
func topStats(s game.StatBlock, n int) []game.NamedStat {
	named := s.Named()
	sort.SliceStable(named, func(i, j int) bool { return named[i].Value > named[j].Value })
	if len(named) > n {
		named = named[:n]
	}
	return named
}

// PredictMatchup scores each side as stat total times the primary-type
// multiplier against the other side and turns the scores into win chances
// that always sum to 100.
func PredictMatchup(cat *game.Catalog, chart *engine.TypeChart, id1, id2 string) (Matchup, error) {
	c1, err := cat.Get(id1)
	if err != nil {
		return Matchup{}, err
	}
	c2, err := cat.Get(id2)
	if err != nil {
		return Matchup{}, err
	}
	adv1 := chart.Lookup(c1.Type, c2.Type)
	adv2 := chart.Lookup(c2.Type, c1.Type)
	s1 := float64(c1.Stats.Total()) * adv1
	s2 := float64(c2.Stats.Total()) * adv2
	chance1 := 50
	if s1+s2 > 0 {
		chance1 = int(math.Round(s1 / (s1 + s2) * 100))
	}
	chance2 := 100 - chance1

	m := Matchup{
		Key: keys.MatchupKey(c1.ID, c2.ID),
		LLM1: MatchupSide{
			ID: c1.ID, Name: c1.Name, Type: c1.Type,
			TotalStats: c1.Stats.Total(), TypeAdvantage: adv1,
			WinChance: chance1, Strengths: topStats(c1.Stats, 3),
		},
		LLM2: MatchupSide{
			ID: c2.ID, Name: c2.Name, Type: c2.Type,
			TotalStats: c2.Stats.Total(), TypeAdvantage: adv2,
			WinChance: chance2, Strengths: topStats(c2.Stats, 3),
		},
		Confidence: absInt(chance1 - chance2),
	}
	if chance1 > chance2 {
		m.Prediction = c1.Name
	} else {
		m.Prediction = c2.Name
	}
	return m, nil
}

type Comparison struct {
	LLM1       game.CharacterDefinition `json:"llm1"`
	LLM2       game.CharacterDefinition `json:"llm2"`
	Advantage1 float64                  `json:"llm1TypeAdvantage"`
	Advantage2 float64                  `json:"llm2TypeAdvantage"`
	Prediction string                   `json:"prediction"`
}

// Compare reports the primary-type multipliers both ways. The prediction is
// the side with the larger multiplier, or "Even match".
func Compare(cat *game.Catalog, chart *engine.TypeChart, id1, id2 string) (Comparison, error) {
	c1, err := cat.Get(id1)
	if err != nil {
		return Comparison{}, err
	}
	c2, err := cat.Get(id2)
	if err != nil {
		return Comparison{}, err
	}
	out := Comparison{
		LLM1:       c1,
		LLM2:       c2,
		Advantage1: chart.Lookup(c1.Type, c2.Type),
		Advantage2: chart.Lookup(c2.Type, c1.Type),
		Prediction: "Even match",
	}
	switch {
	case out.Advantage1 > out.Advantage2:
		out.Prediction = c1.Name
	case out.Advantage2 > out.Advantage1:
		out.Prediction = c2.Name
	}
	return out, nil
}

var typeStrategies = map[game.ElementType]string{
	game.TypeReasoning:      "Use analytical moves to lower opponent accuracy and find weaknesses.",
	game.TypeConversational: "Engage opponents with dialogue-based attacks to confuse them.",
	game.TypeCreative:       "Unpredictable creative moves can catch opponents off-guard.",
	game.TypeMultimodal:     "Use versatility to adapt to any situation mid-battle.",
	game.TypeEdgy:           "High-risk, high-reward attacks work best with this rebellious type.",
	game.TypeOpenSource:     "Community support makes you stronger - use collaborative moves.",
	game.TypeEfficient:      "Conserve energy and use precise, calculated attacks.",
	game.TypeSpeed:          "Strike first and strike fast - speed is your greatest weapon.",
}

// TypeLabel renders a type for display, e.g. "opensource" as "Opensource".
func TypeLabel(t game.ElementType) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "_", " "))
}

type Tips struct {
	LLM  string   `json:"llm"`
	Tips []string `json:"tips"`
}

// StrategyTips builds at most three tips for a character: stat hints first,
// then its type strategy, then a hint about effect moves.
func StrategyTips(cat *game.Catalog, id string) (Tips, error) {
	c, err := cat.Get(id)
	if err != nil {
		return Tips{}, err
	}
	var tips []string
	if c.Stats.Speed > 100 {
		tips = append(tips, c.Name+" is very fast! Use speed to your advantage with priority moves.")
	}
	if c.Stats.HP > 95 {
		tips = append(tips, c.Name+" has high HP. Use tanky strategies and wear down opponents.")
	}
	if c.Stats.SpecialAttack > 110 {
		tips = append(tips, c.Name+" has powerful special attacks. Focus on special moves for maximum damage.")
	}
	if s, ok := typeStrategies[c.Type]; ok {
		tips = append(tips, s)
	} else {
		tips = append(tips, "Play to the strengths of the "+TypeLabel(c.Type)+" type.")
	}
	if c.HasEffectMoves() {
		tips = append(tips, c.Name+" has special moves with unique effects. Time them strategically!")
	}
	if len(tips) > constants.MaxTipsPerCharacter {
		tips = tips[:constants.MaxTipsPerCharacter]
	}
	return Tips{LLM: c.Name, Tips: tips}, nil
}

// RandomCharacters returns count distinct characters in random order. count
// is capped at the roster size.
func RandomCharacters(cat *game.Catalog, count int, rng engine.Rand) ([]game.CharacterDefinition, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if rng == nil {
		rng = engine.DefaultRand()
	}
	all := cat.All()
	for i := len(all) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		all[i], all[j] = all[j], all[i]
	}
	if count > len(all) {
		count = len(all)
	}
	return all[:count], nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
