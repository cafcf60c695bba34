package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/nafeer/studio/internal/config"
	"github.com/nafeer/studio/internal/importers"
	"github.com/nafeer/studio/internal/persistence"
	"github.com/nafeer/studio/internal/store"
)

type ImportCommand struct {
	DatabasePath string
	Key          string
	File         string
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the snapshot database")
	fs.StringVar(&cmd.Key, "workspace", config.DefaultWorkspaceKey, "Workspace key to import into")
	fs.StringVar(&cmd.File, "file", "", "Curriculum JSON document to import (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Validate a curriculum document and save it as the workspace snapshot.\n")
		fmt.Fprintf(os.Stderr, "The existing snapshot is replaced only when the document is valid.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file curriculum.json\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.File == "" {
		fs.Usage()
		return fmt.Errorf("file is required")
	}
	return nil
}

func (cmd *ImportCommand) Run() error {
	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", cmd.File, err)
	}

	// Run the document through the full import pipeline so the saved
	// snapshot is normalized the same way the server would store it.
	st := store.New()
	if err := importers.Apply(st, data); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	repo, err := persistence.NewRepository(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open snapshot database: %w", err)
	}
	defer repo.Close()

	saver := persistence.NewSaver(st, repo, cmd.Key)
	size, err := saver.SaveWorkspace()
	if err != nil {
		return err
	}

	fmt.Printf("Imported %s into workspace '%s' (%d bytes)\n", cmd.File, cmd.Key, size)
	return nil
}
