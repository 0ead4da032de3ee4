package mod

import (
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

func TestParseDurationMs(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"30s", 30 * 1000, false},
		{"10m", 10 * 60 * 1000, false},
		{"2h", 2 * 60 * 60 * 1000, false},
		{"1d", 24 * 60 * 60 * 1000, false},
		{"1.5h", 90 * 60 * 1000, false},
		{" 10M ", 10 * 60 * 1000, false},
		{"0s", 0, true},
		{"-5m", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDurationMs(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDurationMs(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseDurationMs(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDurationMs(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{30 * 1000, "30s"},
		{10 * 60 * 1000, "10m"},
		{90 * 60 * 1000, "1h 30m"},
		{24 * 60 * 60 * 1000, "1d"},
		{(26*60*60 + 90) * 1000, "1d 2h 1m 30s"},
		{0, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDurationMs(tt.ms); got != tt.want {
				t.Errorf("formatDurationMs(%d) = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}

func TestActionDisplay(t *testing.T) {
	tests := []struct {
		action    models.ActionType
		wantEmoji string
		wantLabel string
	}{
		{models.ActionBan, "🔨", "Ban"},
		{models.ActionKick, "👢", "Expulsión"},
		{models.ActionWarn, "⚠️", "Advertencia"},
		{models.ActionMute, "🔇", "Mute"},
		{models.ActionUnban, "🕊️", "Unban"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			emoji, label := actionDisplay(tt.action)
			if emoji != tt.wantEmoji || label != tt.wantLabel {
				t.Errorf("actionDisplay(%s) = (%q, %q), want (%q, %q)",
					tt.action, emoji, label, tt.wantEmoji, tt.wantLabel)
			}
		})
	}
}
