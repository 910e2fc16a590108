package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hszk-dev/openveo-repository/internal/lang"
)

// NewDetailsCommand creates the details command.
func NewDetailsCommand(factory ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details [VIDEO_ID]",
		Short: "Show the details of a stored video reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			fileStatus, _ := cmd.Flags().GetInt("filestatus")

			svc, cleanup, err := factory.ReferenceService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id := args[0]
			l := localizer(cmd)

			outcome := svc.ReferenceDetails(ctx, id, fileStatus)
			if outcome.IsPublished() {
				fmt.Fprintln(cmd.OutOrStdout(), l.String(lang.ReferenceDetails, outcome.Video.Title))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), l.String(lang.LostSource, id))
			return nil
		},
	}

	cmd.Flags().Int("filestatus", 0, "Status of the host file, 0 when ok")

	return cmd
}
