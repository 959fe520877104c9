package concierge

import (
	"time"

	"shalfa/models"
)

// Tooltip cycle: hidden for 15s, shown for 8s, repeat.
const (
	tooltipDelay = 15 * time.Second
	tooltipShown = 8 * time.Second
	tooltipCycle = tooltipDelay + tooltipShown
)

// TooltipStateFor derives the prompt bubble state from how long the
// widget has been on screen. Dismissal is permanent and an open panel
// suppresses the bubble without ending the cycle.
func TooltipStateFor(dismissed, open bool, elapsed time.Duration) models.TooltipState {
	if dismissed {
		return models.TooltipDismissed
	}
	if open || elapsed < 0 {
		return models.TooltipHidden
	}
	if elapsed%tooltipCycle >= tooltipDelay {
		return models.TooltipShown
	}
	return models.TooltipHidden
}
