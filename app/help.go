package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

const (
	docsURL    = "https://github.com/ayoisaiah/mastery/wiki"
	websiteURL = "https://github.com/ayoisaiah/mastery"
)

func section(title, body string) string {
	return fmt.Sprintf("%s\n%s\n\n", pterm.Yellow(title), body)
}

// helpText returns the template used for the top-level help output.
func helpText() string {
	var b strings.Builder

	b.WriteString(section("DESCRIPTION", "\t\t{{.Usage}}"))
	b.WriteString(section(
		"USAGE",
		"\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}",
	))
	b.WriteString(
		"{{if len .Authors}}" +
			section("AUTHOR", "\t\t{{range .Authors}}{{ . }}{{end}}") +
			"{{end}}",
	)
	b.WriteString(
		"{{if .Version}}" + section("VERSION", "\t\t{{.Version}}") + "{{end}}",
	)
	b.WriteString(section(
		"COMMANDS",
		fmt.Sprintf(
			"{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
			pterm.Green("{{join .Names `, `}}"),
		),
	))
	b.WriteString(section(
		"GLOBAL OPTIONS",
		fmt.Sprintf(
			"{{range .VisibleFlags}}\t\t%s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
			pterm.Green("--{{.Name}}"),
		),
	))
	b.WriteString(section("EXAMPLES", examplesHelp()))
	b.WriteString(section("ENVIRONMENTAL VARIABLES", envHelp()))
	b.WriteString(section("DOCUMENTATION", "\t\t"+docsURL))
	b.WriteString(section("WEBSITE", "\t\t"+websiteURL))

	return b.String()
}

func examplesHelp() string {
	return `		mastery add-skill Piano --mode target_based --hours-per-week 10
		mastery track Piano
		mastery log Piano --start "2 hours ago" --paused 15m
		mastery project Piano`
}

func envHelp() string {
	return `		MASTERY_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

		MASTERY_ENV: keeps the config, database and logs of a separate environment (e.g. MASTERY_ENV=dev).

		MASTERY_DEBUG: set to any value to write debug records to the log file.`
}
