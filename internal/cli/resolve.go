package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/lang"
	"github.com/hszk-dev/openveo-repository/internal/usecase"
)

const commandTimeout = 30 * time.Second

// NewResolveCommand creates the resolve command.
func NewResolveCommand(factory ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [URL]",
		Short: "Resolve an OpenVeo video URL into a file reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			accept, _ := cmd.Flags().GetStringSlice("accept")

			svc, cleanup, err := factory.ReferenceService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			l := localizer(cmd)
			output, err := svc.Search(ctx, usecase.SearchInput{
				URL:           args[0],
				AcceptedTypes: accept,
			})
			if errors.Is(err, model.ErrNoCompatibleType) {
				return errors.New(l.String(lang.ErrorNoCompatibleType))
			}
			if err != nil {
				return fmt.Errorf("failed to resolve video: %w", err)
			}

			if output.Reference == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No video found (%s)\n", output.Outcome.Kind)
				return nil
			}

			ref := output.Reference
			fmt.Fprintln(cmd.OutOrStdout(), formatReference(ref, svc.Link(ref.ID)))
			return nil
		},
	}

	cmd.Flags().StringSlice("accept", []string{model.AnyType}, "File extensions accepted by the target field")

	return cmd
}

func formatReference(ref *model.VideoReference, link string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:        %s\n", ref.ID)
	fmt.Fprintf(&b, "Title:     %s\n", ref.Title)
	fmt.Fprintf(&b, "File name: %s\n", ref.FileName())
	fmt.Fprintf(&b, "Thumbnail: %s\n", ref.ThumbnailURL)
	fmt.Fprintf(&b, "Published: %s\n", ref.PublishedTime().Format(time.RFC3339))
	fmt.Fprintf(&b, "Link:      %s", link)
	return b.String()
}
