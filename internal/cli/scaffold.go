package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/nafeer/studio/internal/catalog"
	"github.com/nafeer/studio/internal/config"
	"github.com/nafeer/studio/internal/persistence"
	"github.com/nafeer/studio/internal/store"
)

type ScaffoldCommand struct {
	DatabasePath string
	Key          string
	SubjectID    string
	List         bool
}

func NewScaffoldCommand() *ScaffoldCommand {
	return &ScaffoldCommand{}
}

func (cmd *ScaffoldCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("scaffold", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the snapshot database")
	fs.StringVar(&cmd.Key, "workspace", config.DefaultWorkspaceKey, "Workspace key to scaffold")
	fs.StringVar(&cmd.SubjectID, "subject", "", "Catalog subject id (e.g. PHYSICS)")
	fs.BoolVar(&cmd.List, "list", false, "List catalog subjects and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s scaffold [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Replace the workspace with the catalog template for a subject.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s scaffold -list\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s scaffold -subject PHYSICS\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if !cmd.List && cmd.SubjectID == "" {
		fs.Usage()
		return fmt.Errorf("subject is required")
	}
	return nil
}

func (cmd *ScaffoldCommand) Run() error {
	if cmd.List {
		for _, entry := range catalog.Subjects {
			major := ""
			if entry.IsMajor {
				major = " (major)"
			}
			fmt.Printf("%-16s %-22s %s%s, %d units, %d lessons\n",
				entry.ID, entry.NameEn, entry.Track, major, len(entry.Units), catalog.TotalLessons(entry.ID))
		}
		return nil
	}

	snap, err := catalog.Scaffold(cmd.SubjectID)
	if err != nil {
		return err
	}

	st := store.New()
	st.Replace(snap)

	repo, err := persistence.NewRepository(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open snapshot database: %w", err)
	}
	defer repo.Close()

	saver := persistence.NewSaver(st, repo, cmd.Key)
	if _, err := saver.SaveWorkspace(); err != nil {
		return err
	}

	fmt.Printf("Scaffolded %s: %d units, %d lessons\n", cmd.SubjectID, len(snap.Units), len(snap.Lessons))
	return nil
}
