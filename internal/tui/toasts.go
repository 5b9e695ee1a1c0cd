package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meditrack/meditrack/internal/core/toast"
)

// renderToasts renders active notices as bordered lines, newest last.
func (m Model) renderToasts() string {
	notices := m.toasts.Notices()
	if len(notices) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(notices))
	for _, n := range notices {
		rendered = append(rendered, toastStyle(n.Level).Render(n.Message))
	}

	return strings.Join(rendered, "\n")
}

func toastStyle(level toast.Level) lipgloss.Style {
	switch level {
	case toast.LevelSuccess:
		return toastSuccessStyle
	case toast.LevelError:
		return toastErrorStyle
	case toast.LevelWarning:
		return toastWarningStyle
	default:
		return toastInfoStyle
	}
}
