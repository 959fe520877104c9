package concierge

import (
	"testing"
	"time"

	"shalfa/models"
)

func TestTooltipStateFor(t *testing.T) {
	tests := []struct {
		name      string
		dismissed bool
		open      bool
		elapsed   time.Duration
		want      models.TooltipState
	}{
		{"dismissed wins", true, false, 20 * time.Second, models.TooltipDismissed},
		{"dismissed wins even when open", true, true, 0, models.TooltipDismissed},
		{"open panel hides the bubble", false, true, 20 * time.Second, models.TooltipHidden},
		{"hidden at start", false, false, 0, models.TooltipHidden},
		{"hidden just before the delay", false, false, 15*time.Second - time.Millisecond, models.TooltipHidden},
		{"shown once the delay elapses", false, false, 15 * time.Second, models.TooltipShown},
		{"still shown near the end of the window", false, false, 23*time.Second - time.Millisecond, models.TooltipShown},
		{"hidden again when the cycle restarts", false, false, 23 * time.Second, models.TooltipHidden},
		{"shown in the second cycle", false, false, 38 * time.Second, models.TooltipShown},
		{"hidden during the second delay", false, false, 30 * time.Second, models.TooltipHidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TooltipStateFor(tt.dismissed, tt.open, tt.elapsed)
			if got != tt.want {
				t.Errorf("TooltipStateFor(%v, %v, %v) = %q, want %q",
					tt.dismissed, tt.open, tt.elapsed, got, tt.want)
			}
		})
	}
}
