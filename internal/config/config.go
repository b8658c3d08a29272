package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/engine"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
)

//go:embed default_config.json
var defaultConfig []byte

// EmbeddedSource names the built-in configuration in errors and logs.
const EmbeddedSource = "embedded default_config.json"

const maxMoves = 4

type statsEntry struct {
	HP             int `json:"hp" yaml:"hp"`
	Attack         int `json:"attack" yaml:"attack"`
	Defense        int `json:"defense" yaml:"defense"`
	SpecialAttack  int `json:"special_attack" yaml:"special_attack"`
	SpecialDefense int `json:"special_defense" yaml:"special_defense"`
	Speed          int `json:"speed" yaml:"speed"`
}

type moveEntry struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Category    string `json:"category" yaml:"category"`
	Power       int    `json:"power" yaml:"power"`
	Accuracy    int    `json:"accuracy" yaml:"accuracy"`
	PP          int    `json:"pp" yaml:"pp"`
	Effect      string `json:"effect" yaml:"effect"`
	Description string `json:"description" yaml:"description"`
}

type characterEntry struct {
	ID            string      `json:"id" yaml:"id"`
	Name          string      `json:"name" yaml:"name"`
	Company       string      `json:"company" yaml:"company"`
	Type          string      `json:"type" yaml:"type"`
	SecondaryType string      `json:"secondary_type" yaml:"secondary_type"`
	Stats         statsEntry  `json:"stats" yaml:"stats"`
	Moves         []moveEntry `json:"moves" yaml:"moves"`
	Abilities     []string    `json:"abilities" yaml:"abilities"`
	Description   string      `json:"description" yaml:"description"`
	Sprite        string      `json:"sprite" yaml:"sprite"`
}

type rawConfig struct {
	Server *struct {
		Address string `json:"address" yaml:"address"`
	} `json:"server" yaml:"server"`
	Session *struct {
		TTL          string `json:"ttl" yaml:"ttl"`
		IdleTTL      string `json:"idle_ttl" yaml:"idle_ttl"`
		ReapInterval string `json:"reap_interval" yaml:"reap_interval"`
		LogTail      int    `json:"log_tail" yaml:"log_tail"`
	} `json:"session" yaml:"session"`
	AIBattle *struct {
		MaxTurns int `json:"max_turns" yaml:"max_turns"`
	} `json:"ai_battle" yaml:"ai_battle"`
	CharacterList []characterEntry `json:"character_list" yaml:"character_list"`
	// Optional override of the type-effectiveness chart, keyed attacking
	// type then defending type.
	TypeChart map[string]map[string]float64 `json:"type_chart" yaml:"type_chart"`
}

// LoadedConfig is the validated configuration the server runs with.
type LoadedConfig struct {
	Source        string
	ServerAddress string
	DatabaseDSN   string
	GinMode       string
	// Finished battles are dropped once this old.
	SessionTTL time.Duration
	// Active battles are dropped after this long without a turn.
	IdleTTL      time.Duration
	ReapInterval time.Duration
	LogTail      int
	AIMaxTurns   int
	Characters   []game.CharacterDefinition
	// TypeChart is nil unless the file overrides the stock chart.
	TypeChart *engine.TypeChart
}

// Chart returns the configured type chart or the stock one.
func (c *LoadedConfig) Chart() *engine.TypeChart {
	if c.TypeChart != nil {
		return c.TypeChart
	}
	return engine.DefaultTypeChart()
}

// Load resolves the configuration the way the server binary does: the file
// named by LLM_BATTLE_CONFIG (or the embedded default), then environment
// overrides on top.
func Load() (*LoadedConfig, error) {
	var ev envConfig
	if err := ParseEnv(&ev); err != nil {
		return nil, err
	}
	var (
		cfg *LoadedConfig
		err error
	)
	if ev.ConfigPath != "" {
		cfg, err = LoadConfig(ev.ConfigPath)
	} else {
		cfg, err = LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	ev.apply(cfg)
	return cfg, nil
}

// LoadDefault parses the embedded configuration.
func LoadDefault() (*LoadedConfig, error) {
	return parse(defaultConfig, formatJSON, EmbeddedSource)
}

// LoadConfig reads the configuration file at path. Files ending in .yaml or
// .yml are parsed as YAML, everything else as JSON. It requires the key
// `character_list` (snake_case).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return parse(b, formatFor(path), path)
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFor(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatJSON
}

// parse decodes and validates a configuration document. source is only used
// in error messages.
func parse(b []byte, f format, source string) (*LoadedConfig, error) {
	var rc rawConfig
	var err error
	if f == formatYAML {
		err = yaml.Unmarshal(b, &rc)
	} else {
		err = json.Unmarshal(b, &rc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", source, err)
	}

	if len(rc.CharacterList) == 0 {
		return nil, fmt.Errorf("config file %s: character_list is empty (provide 'character_list' array)", source)
	}
	chars := make([]game.CharacterDefinition, 0, len(rc.CharacterList))
	for _, e := range rc.CharacterList {
		def, err := e.toDefinition()
		if err != nil {
			return nil, fmt.Errorf("config file %s: %w", source, err)
		}
		chars = append(chars, def)
	}

	// Cross-entry validation: character IDs must be unique regardless of case.
	idSet := make(map[string]struct{}, len(chars))
	for _, c := range chars {
		lid := strings.ToLower(c.ID)
		if _, exists := idSet[lid]; exists {
			return nil, fmt.Errorf("config file %s: duplicate character id '%s'", source, c.ID)
		}
		idSet[lid] = struct{}{}
	}

	cfg := &LoadedConfig{
		Source:        source,
		ServerAddress: constants.DefaultAddress,
		DatabaseDSN:   constants.DefaultDatabaseDSN,
		LogTail:       constants.DefaultLogTail,
		AIMaxTurns:    constants.DefaultAIMaxTurns,
		Characters:    chars,
	}
	cfg.SessionTTL, _ = time.ParseDuration(constants.DefaultSessionTTL)
	cfg.IdleTTL, _ = time.ParseDuration(constants.DefaultIdleTTL)
	cfg.ReapInterval, _ = time.ParseDuration(constants.DefaultReapInterval)

	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if s := rc.Session; s != nil {
		if err := parseDuration(s.TTL, "session.ttl", &cfg.SessionTTL); err != nil {
			return nil, fmt.Errorf("config file %s: %w", source, err)
		}
		if err := parseDuration(s.IdleTTL, "session.idle_ttl", &cfg.IdleTTL); err != nil {
			return nil, fmt.Errorf("config file %s: %w", source, err)
		}
		if err := parseDuration(s.ReapInterval, "session.reap_interval", &cfg.ReapInterval); err != nil {
			return nil, fmt.Errorf("config file %s: %w", source, err)
		}
		if s.LogTail < 0 {
			return nil, fmt.Errorf("config file %s: session.log_tail must not be negative", source)
		}
		if s.LogTail > 0 {
			cfg.LogTail = s.LogTail
		}
	}
	if rc.AIBattle != nil {
		if rc.AIBattle.MaxTurns < 0 {
			return nil, fmt.Errorf("config file %s: ai_battle.max_turns must not be negative", source)
		}
		if rc.AIBattle.MaxTurns > 0 {
			cfg.AIMaxTurns = rc.AIBattle.MaxTurns
		}
	}
	if len(rc.TypeChart) > 0 {
		cells := make(map[game.ElementType]map[game.ElementType]float64, len(rc.TypeChart))
		for att, row := range rc.TypeChart {
			attType := normalizeType(att)
			if attType == "" {
				return nil, fmt.Errorf("config file %s: type_chart has an empty attacking type", source)
			}
			r := cells[attType]
			if r == nil {
				r = make(map[game.ElementType]float64, len(row))
				cells[attType] = r
			}
			for def, m := range row {
				if m <= 0 {
					return nil, fmt.Errorf("config file %s: type_chart %s->%s must be positive", source, att, def)
				}
				defType := normalizeType(def)
				if defType == "" {
					return nil, fmt.Errorf("config file %s: type_chart %s has an empty defending type", source, att)
				}
				if _, dup := r[defType]; dup {
					return nil, fmt.Errorf("config file %s: type_chart %s->%s is listed twice", source, attType, defType)
				}
				r[defType] = m
			}
		}
		cfg.TypeChart = engine.NewTypeChart(cells)
	}
	return cfg, nil
}

func parseDuration(s, key string, dst *time.Duration) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s must be positive", key)
	}
	*dst = d
	return nil
}

func (e characterEntry) toDefinition() (game.CharacterDefinition, error) {
	id := strings.TrimSpace(e.ID)
	if id == "" {
		return game.CharacterDefinition{}, fmt.Errorf("character entry missing 'id'")
	}
	if strings.TrimSpace(e.Name) == "" {
		return game.CharacterDefinition{}, fmt.Errorf("character '%s' missing 'name'", id)
	}
	if strings.TrimSpace(e.Type) == "" {
		return game.CharacterDefinition{}, fmt.Errorf("character '%s' missing 'type'", id)
	}
	stats := game.StatBlock{
		HP:             e.Stats.HP,
		Attack:         e.Stats.Attack,
		Defense:        e.Stats.Defense,
		SpecialAttack:  e.Stats.SpecialAttack,
		SpecialDefense: e.Stats.SpecialDefense,
		Speed:          e.Stats.Speed,
	}
	for _, s := range stats.Named() {
		if s.Value <= 0 {
			return game.CharacterDefinition{}, fmt.Errorf("character '%s': stat %s must be positive, got %d", id, s.Stat, s.Value)
		}
	}
	if len(e.Moves) == 0 || len(e.Moves) > maxMoves {
		return game.CharacterDefinition{}, fmt.Errorf("character '%s': needs 1 to %d moves, got %d", id, maxMoves, len(e.Moves))
	}
	moves := make([]game.MoveDefinition, 0, len(e.Moves))
	moveSet := make(map[string]struct{}, len(e.Moves))
	for _, m := range e.Moves {
		md, err := m.toDefinition()
		if err != nil {
			return game.CharacterDefinition{}, fmt.Errorf("character '%s': %w", id, err)
		}
		if _, exists := moveSet[md.ID]; exists {
			return game.CharacterDefinition{}, fmt.Errorf("character '%s': duplicate move id '%s'", id, md.ID)
		}
		moveSet[md.ID] = struct{}{}
		moves = append(moves, md)
	}
	return game.CharacterDefinition{
		ID:            id,
		Name:          strings.TrimSpace(e.Name),
		Company:       e.Company,
		Type:          normalizeType(e.Type),
		SecondaryType: normalizeType(e.SecondaryType),
		Stats:         stats,
		Moves:         moves,
		Abilities:     append([]string(nil), e.Abilities...),
		Description:   e.Description,
		Sprite:        e.Sprite,
	}, nil
}

func (m moveEntry) toDefinition() (game.MoveDefinition, error) {
	id := strings.TrimSpace(m.ID)
	if id == "" {
		return game.MoveDefinition{}, fmt.Errorf("move entry missing 'id'")
	}
	cat := game.Category(strings.ToLower(strings.TrimSpace(m.Category)))
	if !cat.Valid() {
		return game.MoveDefinition{}, fmt.Errorf("move '%s': unknown category '%s'", id, m.Category)
	}
	if (cat == game.CategoryStatus) != (m.Power == 0) {
		return game.MoveDefinition{}, fmt.Errorf("move '%s': power must be 0 exactly when category is status", id)
	}
	if m.Power < 0 {
		return game.MoveDefinition{}, fmt.Errorf("move '%s': power must not be negative", id)
	}
	if m.Accuracy < 0 || m.Accuracy > 100 {
		return game.MoveDefinition{}, fmt.Errorf("move '%s': accuracy must be within 0..100", id)
	}
	if m.PP <= 0 {
		return game.MoveDefinition{}, fmt.Errorf("move '%s': pp must be positive", id)
	}
	tag := game.EffectTag(strings.TrimSpace(m.Effect))
	if _, err := engine.ParseEffect(tag); err != nil {
		return game.MoveDefinition{}, fmt.Errorf("move '%s': %w", id, err)
	}
	name := strings.TrimSpace(m.Name)
	if name == "" {
		name = id
	}
	return game.MoveDefinition{
		ID:          id,
		Name:        name,
		Type:        normalizeType(m.Type),
		Category:    cat,
		Power:       m.Power,
		Accuracy:    m.Accuracy,
		PP:          m.PP,
		Effect:      tag,
		Description: m.Description,
	}, nil
}

// normalizeType trims and lower-cases an authored type name so every place
// that names a type agrees with the chart lookups.
func normalizeType(s string) game.ElementType {
	return game.ElementType(strings.ToLower(strings.TrimSpace(s)))
}
