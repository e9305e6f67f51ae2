package main

import (
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/console"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/machine"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	appName = "go-pass-vault"

	promptPassphrase        = "Enter your passphrase: "
	promptPassphraseAgain   = "Enter your passphrase again: "
	promptExportPassphrase  = "Enter the export passphrase: "
	promptPassphraseNewHint = "No master key found at %s, a new one will be created."
)

// passphraseReader is satisfied by *console.Prompter.
type passphraseReader interface {
	ReadPassphrase(prompt string) ([]byte, error)
	ReadNewPassphrase(prompt, confirmPrompt string) ([]byte, error)
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Terminal credential vault",
		Long: `go-pass-vault keeps secrets encrypted one by one under an OpenPGP master key
and lets you browse, copy, edit and export them from a terminal UI.

On first run the vault directory and a passphrase-protected master key are
created. Secrets never leave the process unencrypted except through the
clipboard.`,
		Version:       info.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	cmd.SetVersionTemplate(info.String())

	flags := config.BindFlags(cmd.PersistentFlags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runSession(cmd, flags, info, console.NewPrompter())
	}

	cmd.AddCommand(newImportCmd(flags, info, console.NewPrompter()))
	cmd.AddCommand(newVersionCmd(info))

	return cmd
}

// setup loads the configuration and the services shared by all commands.
func setup(flags *config.StructuredConfig, info models.AppBuildInfo) (*config.StructuredConfig, *service.Services, *logger.Logger, error) {
	cfg, ns, err := config.Load(flags)
	if err != nil {
		return nil, nil, nil, err
	}

	log := logger.NewClientLogger(appName, cfg.Log.Path, cfg.Log.Level)
	log.Info().
		Str("namespace", ns.Name).
		Str("base_dir", ns.BaseDir).
		Str("backend", cfg.Storage.Backend).
		Msg("configuration loaded")

	return cfg, service.NewServices(cfg, info, log), log, nil
}

func runSession(cmd *cobra.Command, flags *config.StructuredConfig, info models.AppBuildInfo, prompter passphraseReader) error {
	ctx := cmd.Context()

	cfg, services, log, err := setup(flags, info)
	if err != nil {
		return err
	}
	defer log.Close()

	key, passphrase, err := unlockOrCreate(cmd.ErrOrStderr(), services.KeyService, cfg.Keys.PrivateKeyPath, prompter)
	if err != nil {
		log.Err(err).Msg("failed to unlock master key")
		return err
	}
	defer memguard.WipeBytes(passphrase)

	terminatePages, err := machine.ParsePages(cfg.App.TerminatePages)
	if err != nil {
		return err
	}

	secrets, err := store.NewSecretStore(ctx, cfg.Storage, log.WithComponent("store"))
	if err != nil {
		return fmt.Errorf("open secret store: %w", err)
	}
	defer secrets.Close()

	vault := services.OpenVault(key, passphrase, secrets)
	m := machine.New(vault, adapter.NewSystemClipboard(log), machine.Options{
		TerminatePages:    terminatePages,
		DefaultExportPath: cfg.Keys.ExportPath,
	}, log.WithComponent("machine"))

	ui := tui.New(tui.Options{Version: services.AppInfoService.GetAppVersion(ctx)}, log.WithComponent("tui"))

	return client.NewApp(m, ui, cfg.App.TickInterval, log).Run(ctx)
}

// unlockOrCreate returns the unlocked master key and the passphrase that
// unlocked it. A missing key is generated after a confirmed passphrase.
func unlockOrCreate(out io.Writer, keys service.KeyService, keyPath string, prompter passphraseReader) (*crypto.MasterKey, []byte, error) {
	exists, err := keys.Exists()
	if err != nil {
		return nil, nil, err
	}

	if !exists {
		console.Info.Fprintln(out, promptPassphraseNewHint, keyPath)
		passphrase, err := prompter.ReadNewPassphrase(promptPassphrase, promptPassphraseAgain)
		if err != nil {
			return nil, nil, err
		}

		var key *crypto.MasterKey
		err = console.WithSpinner(out, "Generating master key...", func() error {
			key, err = keys.Create(passphrase)
			return err
		})
		if err != nil {
			memguard.WipeBytes(passphrase)
			return nil, nil, err
		}

		console.Success.Fprintln(out, "Master key %s created", key.Fingerprint())
		return key, passphrase, nil
	}

	passphrase, err := prompter.ReadPassphrase(promptPassphrase)
	if err != nil {
		return nil, nil, err
	}

	key, err := keys.Unlock(passphrase)
	if err != nil {
		memguard.WipeBytes(passphrase)
		return nil, nil, fmt.Errorf("unlock master key: %w", err)
	}

	return key, passphrase, nil
}
