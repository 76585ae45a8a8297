package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsweep"
	"github.com/fwojciec/docsweep/fs"
	dslog "github.com/fwojciec/docsweep/slog"
	"github.com/fwojciec/docsweep/sweep"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the sanitization pass with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsweep"),
		kong.Description("Normalize prose style and formatting artifacts across a documentation tree"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	root := cli.Root
	if root == "" {
		root, err = defaultRoot()
		if err != nil {
			return fmt.Errorf("failed to resolve documentation root: %w", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	sweeper := &sweep.Sweeper{
		Files: dslog.NewLoggingScanner(fs.NewScanner(), logger),
		Store: dslog.NewLoggingStore(fs.NewStore(), logger),
		Rules: docsweep.DefaultRules(),
	}

	report, err := sweeper.Run(ctx, root)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, report.Format())
	return nil
}

// defaultRoot resolves the documentation root: the parent of the
// directory containing the executable. The tool is installed into a
// subdirectory of the tree it maintains.
func defaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}
