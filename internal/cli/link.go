package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
)

// NewLinkCommand creates the link command.
func NewLinkCommand(factory ServiceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "link [VIDEO_ID]",
		Short: "Print the public URL of a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !model.IsValidVideoID(id) {
				return fmt.Errorf("invalid video id %q", id)
			}

			svc, cleanup, err := factory.ReferenceService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), svc.Link(id))
			return nil
		},
	}
}
