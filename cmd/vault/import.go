package main

import (
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/console"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newImportCmd(flags *config.StructuredConfig, info models.AppBuildInfo, prompter passphraseReader) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <bundle>",
		Short: "Restore the master key from an export bundle",
		Long: `Restores the master key from a file written by the export page.

The bundle is opened with the export passphrase, then the key's own
passphrase must unlock it before it replaces anything. An existing key is
only overwritten with --force.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read bundle: %w", err)
			}

			_, services, log, err := setup(flags, info)
			if err != nil {
				return err
			}
			defer log.Close()

			exportPassphrase, err := prompter.ReadPassphrase(promptExportPassphrase)
			if err != nil {
				return err
			}
			defer memguard.WipeBytes(exportPassphrase)

			keyPassphrase, err := prompter.ReadPassphrase(promptPassphrase)
			if err != nil {
				return err
			}
			defer memguard.WipeBytes(keyPassphrase)

			key, err := services.KeyService.Import(bundle, exportPassphrase, keyPassphrase, force)
			if err != nil {
				log.Err(err).Str("bundle", args[0]).Msg("failed to import master key")
				return fmt.Errorf("import master key: %w", err)
			}

			console.Success.Fprintln(cmd.OutOrStdout(), "Master key %s imported", key.Fingerprint())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing master key")
	return cmd
}
