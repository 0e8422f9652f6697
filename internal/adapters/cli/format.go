package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// scoreLabel renders a DFM score colored by band.
func scoreLabel(score int) string {
	text := fmt.Sprintf("%d/100", score)
	switch {
	case score >= 80:
		return color.New(color.FgGreen).Sprint(text)
	case score >= 50:
		return color.New(color.FgYellow).Sprint(text)
	default:
		return color.New(color.FgRed).Sprint(text)
	}
}

func severityLabel(severity string) string {
	text := strings.ToUpper(severity)
	switch strings.ToLower(severity) {
	case "high":
		return color.New(color.FgRed, color.Bold).Sprint(text)
	case "medium":
		return color.New(color.FgYellow).Sprint(text)
	default:
		return color.New(color.FgCyan).Sprint(text)
	}
}

func directionLabel(direction string) string {
	switch direction {
	case "improved":
		return color.New(color.FgGreen).Sprint(direction)
	case "regressed":
		return color.New(color.FgRed).Sprint(direction)
	default:
		return direction
	}
}

func money(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
