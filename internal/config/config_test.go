package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tetrus-game/tetrus/internal/game"
)

func TestDefaultYAMLMatchesDefaultConfig(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}

	want := DefaultGameConfig()
	if cfg.Board != want.Board {
		t.Errorf("board = %+v, expected %+v", cfg.Board, want.Board)
	}
	if cfg.Gravity != want.Gravity {
		t.Errorf("gravity = %+v, expected %+v", cfg.Gravity, want.Gravity)
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("scoring = %+v, expected %+v", cfg.Scoring, want.Scoring)
	}
	if len(cfg.Kicks) != len(want.Kicks) {
		t.Fatalf("kick count = %d, expected %d", len(cfg.Kicks), len(want.Kicks))
	}
	for i := range cfg.Kicks {
		if cfg.Kicks[i] != want.Kicks[i] {
			t.Errorf("kick %d = %+v, expected %+v", i, cfg.Kicks[i], want.Kicks[i])
		}
	}
}

func TestToRulesProducesValidRules(t *testing.T) {
	rules := DefaultGameConfig().ToRules(game.Endless())
	if err := rules.Validate(); err != nil {
		t.Fatalf("default config produced invalid rules: %v", err)
	}

	if rules.Width != 12 || rules.VisibleHeight != 20 || rules.HiddenRows != 4 {
		t.Errorf("geometry = %d/%d/%d, expected 12/20/4",
			rules.Width, rules.VisibleHeight, rules.HiddenRows)
	}
	if rules.GravityStart != 800*time.Millisecond {
		t.Errorf("gravity start = %v, expected 800ms", rules.GravityStart)
	}
	if rules.LockDelay != 500*time.Millisecond {
		t.Errorf("lock delay = %v, expected 500ms", rules.LockDelay)
	}
	if rules.LineScores != [4]int{40, 100, 300, 1200} {
		t.Errorf("line scores = %v", rules.LineScores)
	}
	if len(rules.Kicks) != 5 || rules.Kicks[0] != (game.Offset{X: 0, Y: 0}) {
		t.Errorf("kicks = %v, expected the in-place candidate first", rules.Kicks)
	}
}

func TestToRulesCarriesMode(t *testing.T) {
	rules := DefaultGameConfig().ToRules(game.Sprint(40))
	if rules.Mode.Kind != game.ModeSprint || rules.Mode.TargetLines != 40 {
		t.Errorf("mode = %+v, expected sprint-40", rules.Mode)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := []byte("board:\n  width: 10\n  visible_height: 18\n  hidden_rows: 2\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.VisibleHeight != 18 {
		t.Errorf("board = %+v, expected the custom geometry", cfg.Board)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("an explicit path that does not exist should fail")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("board: [not: a: mapping"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("a malformed explicit config should fail")
	}
}
