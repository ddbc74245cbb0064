package commands

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/weiawesome/pxid/internal/config"
	pkglog "github.com/weiawesome/pxid/pkg/log"
	"github.com/weiawesome/pxid/pkg/prefixid"
)

// errReported marks failures whose outcome was already written to stdout.
var errReported = errors.New("reported")

// Execute runs the CLI application.
func Execute(version string) error {
	root := NewRootCmd(version)
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		l := pkglog.New(pkglog.Config{Output: os.Stderr, ServiceName: "pxid"})
		l.Error().Err(err).Msg("command failed")
	}
	return err
}

// NewRootCmd builds the command tree. It is exported for tests.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "pxid",
		Short:         "Generate, parse and validate prefixed UUIDv7 identifiers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.PersistentFlags().String("profile", "", "Id profile: permissive, strict or unbounded (default: $ID_PROFILE or config)")
	root.PersistentFlags().String("config", "./config", "Directory holding config.yaml")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newProfilesCmd())
	return root
}

// resolveGenerator picks the profile from --profile, then configuration.
func resolveGenerator(cmd *cobra.Command) (*prefixid.Generator, error) {
	if name, err := cmd.Flags().GetString("profile"); err == nil && name != "" {
		p, err := prefixid.ProfileByName(name)
		if err != nil {
			return nil, err
		}
		return prefixid.New(p), nil
	}

	dir, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFrom(dir, "config")
	if err != nil {
		return nil, err
	}
	return prefixid.New(cfg.Profile()), nil
}

func printJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
