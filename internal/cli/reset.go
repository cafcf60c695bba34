package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nafeer/studio/internal/config"
	"github.com/nafeer/studio/internal/persistence"
)

type ResetCommand struct {
	DatabasePath string
	Key          string
	Force        bool
}

func NewResetCommand() *ResetCommand {
	return &ResetCommand{}
}

func (cmd *ResetCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the snapshot database")
	fs.StringVar(&cmd.Key, "workspace", config.DefaultWorkspaceKey, "Workspace key to reset")
	fs.BoolVar(&cmd.Force, "force", false, "Skip the confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s reset [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete the saved snapshot for a workspace.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ResetCommand) Run() error {
	if !cmd.Force {
		fmt.Printf("Delete saved workspace '%s' from %s? [y/N] ", cmd.Key, cmd.DatabasePath)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	repo, err := persistence.NewRepository(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open snapshot database: %w", err)
	}
	defer repo.Close()

	if err := repo.Delete(cmd.Key); err != nil {
		return fmt.Errorf("delete workspace '%s': %w", cmd.Key, err)
	}

	fmt.Printf("Workspace '%s' reset\n", cmd.Key)
	return nil
}
