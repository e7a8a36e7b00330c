package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studiowebux/birthdaycard/internal/card"
	"github.com/studiowebux/birthdaycard/internal/config"
	"github.com/studiowebux/birthdaycard/internal/prefs"
	"github.com/studiowebux/birthdaycard/internal/tui"
)

var (
	version = "0.1.0"

	flagConfigDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "birthdaycard",
	Short: "Birthday Card - an interactive greeting card for your terminal",
	Long: `Birthday Card renders an animated greeting card in your terminal.

The recipient name on the card can be edited in place and is remembered
between runs. Run without arguments to open the card.

Examples:
  birthdaycard                  # Open the card
  birthdaycard show             # Print the saved recipient name
  birthdaycard set-name Alex    # Save a name without opening the card
  birthdaycard reset            # Forget the saved name`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(flagConfigDir); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return tui.Run(version)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved recipient name",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		name, err := store.Get(prefs.KeyRecipientName)
		if err != nil {
			return err
		}
		if v, trimmed := card.ValidateName(name); v == card.Valid {
			name = trimmed
		} else {
			name = card.DefaultName
		}
		fmt.Println(name)
		return nil
	},
}

var setNameCmd = &cobra.Command{
	Use:   "set-name <name>",
	Short: "Save a recipient name without opening the card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, trimmed := card.ValidateName(args[0])
		if v != card.Valid {
			return fmt.Errorf("%s", card.ValidationMessage(v))
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Set(prefs.KeyRecipientName, trimmed); err != nil {
			return err
		}
		fmt.Printf("Saved name: %s\n", trimmed)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved recipient name",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(prefs.KeyRecipientName); err != nil {
			return err
		}
		fmt.Printf("Saved name cleared; the card will show %q\n", card.DefaultName)
		return nil
	},
}

func openStore() (prefs.Store, error) {
	if err := config.Initialize(flagConfigDir); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	store, err := prefs.Open(config.DatabasePath)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Override the configuration directory (default ~/.birthdaycard)")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setNameCmd)
	rootCmd.AddCommand(resetCmd)
}
