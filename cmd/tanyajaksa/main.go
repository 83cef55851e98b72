// Command tanyajaksa runs the Tanya Jaksa terminal client.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tanyajaksa/cmd/tanyajaksa/app"
	"tanyajaksa/cmd/tanyajaksa/ui"
	"tanyajaksa/internal/catalog"
	"tanyajaksa/internal/config"
	"tanyajaksa/internal/ident"
	"tanyajaksa/internal/logging"
	"tanyajaksa/internal/session"
	"tanyajaksa/internal/store"
	"tanyajaksa/internal/submit"
)

var (
	flagConfig    string
	flagEphemeral bool
	flagDebug     bool
)

func main() {
	root := &cobra.Command{
		Use:   "tanyajaksa",
		Short: "Layanan hukum Kejaksaan di terminal",
		Long:  "Tanya Jaksa: konsultasi hukum, pendampingan instansi, edukasi hukum, dan transparansi proyek pembangunan.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.json (default: ~/.tanyajaksa/config.json)")
	root.Flags().BoolVar(&flagEphemeral, "ephemeral", false, "keep all state in memory, touch nothing on disk")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	root.AddCommand(sessionCmd(), resetCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.AppConfig, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flagDebug {
		cfg.DebugMode = true
	}
	return cfg, nil
}

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var (
		sessions *session.Manager
		records  app.RecordStore
		floor    = catalog.MaxSeedConversationID()
	)

	if flagEphemeral {
		sessions = session.NewManager(session.NewMemoryStore())
		records = store.NewMemoryRecords()
	} else {
		if err := logging.Initialize(cfg.LogDir(), cfg.DebugMode); err != nil {
			return err
		}
		defer logging.Sync()

		local, err := store.Open(cfg.DBPath())
		if err != nil {
			return err
		}
		defer local.Close()

		if maxStored, err := local.MaxConversationID(); err == nil && maxStored > floor {
			floor = maxStored
		}
		sessions = session.NewManager(local)
		records = local
	}

	deps := app.Deps{
		Config:   cfg,
		Sessions: sessions,
		Records:  records,
		IDs:      ident.NewAllocator(floor),
		Submit:   submit.NewSimulated(cfg.ChatDelay(), cfg.AssistanceDelay(), cfg.ChatFailureRate, 0),
		Styles:   ui.NewStyles(ui.ThemeByName(cfg.Theme)),
	}

	logging.Get(logging.CategoryApp).Infof("starting (ephemeral=%v)", flagEphemeral)
	_, err = tea.NewProgram(app.New(deps), tea.WithAltScreen()).Run()
	return err
}

// sessionCmd prints the persisted session flags, for debugging a stuck state
// without launching the TUI.
func sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the persisted session flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			local, err := store.Open(cfg.DBPath())
			if err != nil {
				return err
			}
			defer local.Close()

			snap := session.NewManager(local).Snapshot()
			fmt.Printf("authenticated:  %v\n", snap.IsAuthenticated)
			fmt.Printf("onboarding:     %v\n", snap.HasSeenOnboarding)
			fmt.Printf("role:           %s\n", snap.Role)
			fmt.Printf("name:           %s\n", snap.UserName)
			fmt.Printf("email:          %s\n", snap.UserEmail)
			return nil
		},
	}
}

// resetCmd wipes all persisted state, returning the app to first launch.
func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all persisted state (session, conversations)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("pass --yes to confirm wiping all local state")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			local, err := store.Open(cfg.DBPath())
			if err != nil {
				return err
			}
			defer local.Close()

			if err := local.Reset(); err != nil {
				return err
			}
			fmt.Println("local state cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the wipe")
	return cmd
}
