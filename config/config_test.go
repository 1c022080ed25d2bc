package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/neuralfield/render"
	"github.com/lixenwraith/neuralfield/scene"
)

func TestDefaultValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default invalid: %v", err)
	}
	if cfg.Particles != 1500 || cfg.MaxSegments != 300 {
		t.Errorf("defaults %+v", cfg)
	}
	if cfg.DriftMode() != scene.DriftOscillate {
		t.Errorf("default drift %v", cfg.DriftMode())
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
theme = "light"
fps = 30
particles = 500
drift = "accumulate"
seed = 42
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Theme != ThemeLight || cfg.FPS != 30 || cfg.Particles != 500 || cfg.Seed != 42 {
		t.Errorf("parsed %+v", cfg)
	}
	if cfg.MaxSegments != 300 {
		t.Errorf("unset field lost its default: %d", cfg.MaxSegments)
	}
	if cfg.DriftMode() != scene.DriftAccumulate {
		t.Errorf("drift %v", cfg.DriftMode())
	}
	if cfg.FrameInterval() != time.Second/30 {
		t.Errorf("interval %v", cfg.FrameInterval())
	}
	if cfg.ResolveDark(true) {
		t.Error("light theme resolved dark")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"syntax", `theme = `, []string{"decode config"}},
		{"theme", `theme = "sepia"`, []string{"theme"}},
		{"several", "fps = 0\nparticles = -1\ndrift = \"wobble\"", []string{"fps", "particles", "drift"}},
		{"color", `color = "16"`, []string{"color"}},
		{"blend", `blend = "multiply"`, []string{"blend"}},
		{"zero counts", "particles = 0\nmax_segments = 0", []string{"particles", "max_segments"}},
	}
	for _, tt := range tests {
		cfg, err := Parse([]byte(tt.in))
		if err == nil {
			t.Errorf("%s: no error", tt.name)
			continue
		}
		for _, w := range tt.want {
			if !strings.Contains(err.Error(), w) {
				t.Errorf("%s: error %q missing %q", tt.name, err, w)
			}
		}
		if cfg != Default() {
			t.Errorf("%s: failed parse returned %+v", tt.name, cfg)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v", cfg)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Theme = ThemeDark
	cfg.Seed = 7
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip %+v != %+v", got, cfg)
	}
}

func TestResolveDark(t *testing.T) {
	orig := DetectDark
	defer func() { DetectDark = orig }()
	DetectDark = func() bool {
		t.Error("resolving the theme queried the terminal")
		return false
	}

	tests := []struct {
		theme    string
		termDark bool
		want     bool
	}{
		{ThemeAuto, true, true},
		{ThemeAuto, false, false},
		{ThemeDark, false, true},
		{ThemeLight, true, false},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Theme = tt.theme
		if got := cfg.ResolveDark(tt.termDark); got != tt.want {
			t.Errorf("%s with terminal dark=%v: got %v", tt.theme, tt.termDark, got)
		}
	}
}

func TestBlendMode(t *testing.T) {
	cfg := Default()
	if cfg.BlendMode() != render.BlendAlphaFg {
		t.Errorf("default blend %v", cfg.BlendMode())
	}
	cfg, err := Parse([]byte(`blend = "add"`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BlendMode() != render.BlendAddFg {
		t.Errorf("blend %v, want add", cfg.BlendMode())
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultPath)
	if err := os.WriteFile(path, []byte(`theme = "dark"`), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c Config) {
			select {
			case got <- c:
			default:
			}
		})
	}()

	// Give the watcher time to register before editing
	time.Sleep(100 * time.Millisecond)

	// Unrelated files in the same directory are ignored
	os.WriteFile(filepath.Join(dir, "other.toml"), []byte(`theme = "light"`), 0644)
	if err := os.WriteFile(path, []byte(`theme = "light"`), 0644); err != nil {
		t.Fatal(err)
	}

	// A truncating write may surface an empty file first
	timeout := time.After(3 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case cfg := <-got:
			reloaded = cfg.Theme == ThemeLight
		case <-timeout:
			t.Fatal("no reload to the light theme")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch did not stop")
	}
}
