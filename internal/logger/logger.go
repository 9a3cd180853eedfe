package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// Info log une information générale
func Info(format string, args ...interface{}) {
	fmt.Printf("%s ", timestamp())
	color.Blue(format, args...)
}

// Success log un succès
func Success(format string, args ...interface{}) {
	fmt.Printf("%s ", timestamp())
	color.Green("✓ "+format, args...)
}

// Warning log un avertissement
func Warning(format string, args ...interface{}) {
	fmt.Printf("%s ", timestamp())
	color.Yellow("⚠ "+format, args...)
}

// Error log une erreur
func Error(format string, args ...interface{}) {
	fmt.Printf("%s ", timestamp())
	color.Red("✗ "+format, args...)
}

// Request log une requête HTTP avec son status et sa durée
func Request(method, path string, statusCode int, duration time.Duration) {
	statusColor := color.New(color.FgGreen)
	switch {
	case statusCode >= 500:
		statusColor = color.New(color.FgRed)
	case statusCode >= 400:
		statusColor = color.New(color.FgYellow)
	case statusCode >= 300:
		statusColor = color.New(color.FgCyan)
	}

	fmt.Printf("%s %-6s %-30s %s %s\n",
		timestamp(),
		color.MagentaString(method),
		path,
		statusColor.Sprintf("[%d]", statusCode),
		color.New(color.FgHiBlack).Sprintf("(%s)", formatDuration(duration)),
	)
}

func timestamp() string {
	return color.New(color.FgHiBlack).Sprintf("[%s]", time.Now().Format("15:04:05"))
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
