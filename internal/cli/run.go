// Package cli implements the wowframeadj command surface: a display
// mode that prints all frames as a table and an update mode (--set)
// that rewrites one frame's attributes in place.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/EricaPomme/wowframeadj/internal/layout"
	"github.com/EricaPomme/wowframeadj/internal/logging"

	flag "github.com/spf13/pflag"
)

const setFlag = "--set"

// Run is the main entry point. Returns exit code.
func Run(out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)

	if len(args) < 2 {
		printUsage(out)

		return 0
	}

	// Everything after --set belongs to the override list, nargs-style.
	// Split it off before flag parsing so pflag never sees it.
	head := args[1:]

	var overrides []string

	hasSet := false

	if idx := slices.Index(head, setFlag); idx >= 0 {
		overrides = head[idx+1:]
		head = head[:idx]
		hasSet = true
	}

	fs := flag.NewFlagSet("wowframeadj", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(&strings.Builder{}) // discard pflag output

	workDir := fs.StringP("cwd", "C", "", "Run as if started in <dir>")
	configPath := fs.StringP("config", "c", "", "Use specified config file")
	logLevel := fs.String("log-level", "warn", "Set the log level (debug, info, warn, error)")

	err := fs.Parse(head)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(out)

			return 0
		}

		o.ErrPrintln("error:", err)
		printUsage(errOut)

		return 1
	}

	slog.SetDefault(slog.New(logging.CreateHandler(errOut, *logLevel)))

	cfg, err := layout.LoadConfig(layout.LoadConfigInput{
		WorkDirOverride: *workDir,
		ConfigPath:      *configPath,
		Env:             env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	slog.Debug("config resolved",
		"global", cfg.Sources.Global,
		"project", cfg.Sources.Project,
		"layout_path", cfg.LayoutPathAbs,
	)

	remaining := fs.Args()

	if len(remaining) > 0 && remaining[0] == "print-config" {
		cmdErr := execPrintConfig(o, cfg)
		if cmdErr != nil {
			o.ErrPrintln("error:", cmdErr)

			return 1
		}

		return 0
	}

	path, err := resolveLayoutPath(cfg, remaining)
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	var cmdErr error

	if hasSet {
		cmdErr = execSet(path, overrides)
	} else {
		cmdErr = execShow(o, path)
	}

	if cmdErr != nil {
		o.ErrPrintln("error:", cmdErr)

		return 1
	}

	return 0
}

// resolveLayoutPath picks the layout file from the positional argument
// or, when absent, from the config's layout_path. The file must exist
// and be named layout-local.txt; the client only reads that exact name.
func resolveLayoutPath(cfg layout.Config, remaining []string) (string, error) {
	var path string

	switch {
	case len(remaining) > 1:
		return "", errors.New("unexpected argument: " + remaining[1])
	case len(remaining) == 1:
		path = remaining[0]
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.EffectiveCwd, path)
		}
	case cfg.LayoutPathAbs != "":
		path = cfg.LayoutPathAbs
	default:
		return "", layout.ErrLayoutPathRequired
	}

	info, statErr := os.Stat(path)
	if statErr != nil || !info.Mode().IsRegular() || filepath.Base(path) != layout.FileName {
		return "", fmt.Errorf("%w: %s", layout.ErrNotLayoutFile, path)
	}

	return path, nil
}

func execPrintConfig(o *IO, cfg layout.Config) error {
	formatted, err := layout.FormatConfig(cfg)
	if err != nil {
		return err
	}

	o.Println(formatted)

	o.Println("")
	o.Println("# Sources:")

	if cfg.Sources.Global != "" {
		o.Println("#   global:", cfg.Sources.Global)
	}

	if cfg.Sources.Project != "" {
		o.Println("#   project:", cfg.Sources.Project)
	}

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		o.Println("#   (using defaults only)")
	}

	return nil
}

func printUsage(writer io.Writer) {
	_, _ = io.WriteString(writer, `wowframeadj - view and edit WoW layout-local.txt frame positions

Usage: wowframeadj [options] <path> [--set Frame=<name> [Key=Value ...]]

Options:
  -C, --cwd <dir>        Run as if started in <dir>
  -c, --config <file>    Use specified config file
      --log-level <lvl>  Set the log level (debug, info, warn, error)
  -h, --help             Show this help

Modes:
  <path>                 Print a table of all frames in the file
  <path> --set ...       Update one frame and rewrite the file in place
  print-config           Show resolved configuration

The <path> argument may be omitted when a config file sets layout_path.
Valid --set keys: Frame (selects the target, required), Anchor,
FrameLevel, X, Y, W, H. Values are coerced int -> float -> string.
`)
}
