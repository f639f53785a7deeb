package utils

import (
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Log is usable before Init; Init only applies level and styles.
var Log = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.DateTime,
	Prefix:          "west",
})

func Init(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	Log.SetLevel(lvl)

	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = badge("DEBUG", "#6C7086", "#FFFFFF")
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO♠").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#90EE9080")).
		Foreground(lipgloss.Color("#006400FF")).Bold(true)
	styles.Levels[log.WarnLevel] = badge("WARN♦", "#FFD700", "#000000")
	styles.Levels[log.ErrorLevel] = badge("ERROR♥", "#FF0000FF", "#00FFFF00")
	styles.Levels[log.FatalLevel] = badge("FATAL♣", "#000000FF", "#00FFFF00")
	styles.Keys["match"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#58A6FF"))
	Log.SetStyles(styles)
}

func badge(label, bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).Bold(true)
}
