package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/weiawesome/pxid/internal/domain"
	"github.com/weiawesome/pxid/internal/service"
	"github.com/weiawesome/pxid/pkg/prefixid"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Mint new ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")
			count, _ := cmd.Flags().GetInt("count")

			gen, err := resolveGenerator(cmd)
			if err != nil {
				return err
			}
			resp, err := service.NewIDService(gen, prefixid.MaxBatch).
				Generate(cmd.Context(), &domain.GenerateRequest{Prefix: prefix, Count: count})
			if err != nil {
				return err
			}
			for _, id := range resp.IDs {
				if err := printJSON(cmd.OutOrStdout(), map[string]string{"id": id}); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringP("prefix", "p", "", "Id prefix (required)")
	cmd.Flags().IntP("count", "n", 1, "Number of ids to mint")
	_ = cmd.MarkFlagRequired("prefix")
	return cmd
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <id>...",
		Short: "Decode ids into prefix, UUID and timestamp (one JSON object per line)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := resolveGenerator(cmd)
			if err != nil {
				return err
			}
			svc := service.NewIDService(gen, prefixid.MaxBatch)
			for _, id := range args {
				parsed, err := svc.Parse(cmd.Context(), id)
				if err != nil {
					return err
				}
				if err := printJSON(cmd.OutOrStdout(), parsed); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <id>...",
		Short: "Report whether ids are valid; exits non-zero if any is not",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")
			gen, err := resolveGenerator(cmd)
			if err != nil {
				return err
			}
			svc := service.NewIDService(gen, prefixid.MaxBatch)

			allValid := true
			for _, id := range args {
				resp := svc.Validate(cmd.Context(), id, prefix)
				allValid = allValid && resp.Valid
				if err := printJSON(cmd.OutOrStdout(), resp); err != nil {
					return err
				}
			}
			if !allValid {
				return errors.Join(errReported, errors.New("invalid id"))
			}
			return nil
		},
	}
	cmd.Flags().StringP("prefix", "p", "", "Expected prefix (default: any)")
	return cmd
}

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List id profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type profile struct {
				Name      string `json:"name"`
				Codec     string `json:"codec"`
				MaxLength int    `json:"max_length,omitempty"`
			}
			for _, p := range prefixid.Profiles() {
				if err := printJSON(cmd.OutOrStdout(), profile{Name: p.Name, Codec: p.Codec.Name(), MaxLength: p.MaxLength}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
