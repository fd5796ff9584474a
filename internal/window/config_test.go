package window

import "testing"

func TestPresetLookup(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{LabelMain, true},
		{LabelMiniPlayer, true},
		{LabelDesktopLyrics, true},
		{LabelSettings, true},
		{LabelAbout, true},
		{LabelTrayPopup, true},
		{"unknown-label", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			cfg, ok := Preset(tt.label)
			if ok != tt.want {
				t.Fatalf("Preset(%q) ok = %v, want %v", tt.label, ok, tt.want)
			}
			if ok && cfg.Label != tt.label {
				t.Errorf("Preset(%q) label = %q", tt.label, cfg.Label)
			}
		})
	}
}

func TestPresetIsDeterministic(t *testing.T) {
	for _, label := range KnownLabels {
		a, _ := Preset(label)
		b, _ := Preset(label)
		// Inset pointers differ between calls; compare values instead.
		if a.TrafficLightsInset != nil && b.TrafficLightsInset != nil {
			if *a.TrafficLightsInset != *b.TrafficLightsInset {
				t.Errorf("%s: traffic lights inset differs between lookups", label)
			}
			a.TrafficLightsInset = nil
			b.TrafficLightsInset = nil
		}
		if a != b {
			t.Errorf("%s: preset differs between lookups", label)
		}
	}
}

func TestMiniPlayerPresetFlags(t *testing.T) {
	cfg, ok := Preset(LabelMiniPlayer)
	if !ok {
		t.Fatal("mini-player preset missing")
	}
	if cfg.Resizable {
		t.Error("mini-player should not be resizable")
	}
	if !cfg.Transparent {
		t.Error("mini-player should be transparent")
	}
	if !cfg.AlwaysOnTop {
		t.Error("mini-player should be always on top")
	}
	if cfg.CloseableToTray {
		t.Error("mini-player should not be closeable to tray")
	}
}

func TestTrayPopupPresetStartsHidden(t *testing.T) {
	cfg, _ := Preset(LabelTrayPopup)
	if cfg.Visible {
		t.Error("tray popup must start hidden")
	}
	if cfg.Resizable {
		t.Error("tray popup must not be resizable")
	}
	if cfg.WindowEffect != "acrylic" {
		t.Errorf("tray popup effect = %q, want acrylic", cfg.WindowEffect)
	}
	if cfg.CloseableToTray {
		t.Error("tray popup must not be closeable to tray")
	}
}

func TestMainPresetClosesToTray(t *testing.T) {
	cfg, _ := Preset(LabelMain)
	if !cfg.CloseableToTray {
		t.Error("main window must close to tray")
	}
	if !cfg.Resizable || !cfg.UseOverlayTitlebar {
		t.Error("main window must be resizable with overlay titlebar")
	}
}
