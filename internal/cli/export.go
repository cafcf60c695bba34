// Package cli implements the workspace maintenance commands that run
// without the HTTP server.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/nafeer/studio/internal/config"
	"github.com/nafeer/studio/internal/persistence"
)

type ExportCommand struct {
	DatabasePath string
	Key          string
	Output       string
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the snapshot database")
	fs.StringVar(&cmd.Key, "workspace", config.DefaultWorkspaceKey, "Workspace key to export")
	fs.StringVar(&cmd.Output, "out", "", "Output file (stdout when empty)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Write the saved workspace document to a file or stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export -out curriculum.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -workspace physics -db ./studio.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	repo, err := persistence.NewRepository(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open snapshot database: %w", err)
	}
	defer repo.Close()

	data, err := repo.Load(cmd.Key)
	if err != nil {
		return fmt.Errorf("load workspace '%s': %w", cmd.Key, err)
	}

	if cmd.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(cmd.Output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cmd.Output, err)
	}
	fmt.Printf("Exported workspace '%s' to %s (%d bytes)\n", cmd.Key, cmd.Output, len(data))
	return nil
}
