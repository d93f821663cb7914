// Package common holds helpers shared by the command actions.
package common

import (
	"crypto/sha1"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

// Exit codes returned by the commands.
const (
	ExitUsage = 1
	ExitSetup = 2
)

// QuietFlag and VerboseFlag select the log level of every command.
var (
	QuietFlag = &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "Only log errors",
	}
	VerboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log debug details",
	}
)

// NewLogger builds the JSON logger for a command. --quiet wins over --verbose.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// DirArgs returns the INPUT_DIR and OUTPUT_DIR positional arguments.
func DirArgs(c *cli.Context) (string, string, error) {
	if c.NArg() != 2 {
		return "", "", cli.Exit(fmt.Sprintf("Error: %s requires INPUT_DIR and OUTPUT_DIR\nUsage: %s %s %s",
			c.Command.Name, c.App.Name, c.Command.Name, c.Command.ArgsUsage), ExitUsage)
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

// DocID is the hex SHA-1 of relPath with forward slashes, so ids do not
// depend on the host OS.
func DocID(relPath string) string {
	sum := sha1.Sum([]byte(filepath.ToSlash(relPath)))
	return fmt.Sprintf("%x", sum)
}
