// Package cli implements the openveoctl commands.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hszk-dev/openveo-repository/internal/lang"
	"github.com/hszk-dev/openveo-repository/internal/usecase"
)

// ServiceFactory builds the services used by the commands. Each returned
// cleanup function must be called once the service is no longer needed.
type ServiceFactory interface {
	ReferenceService(ctx context.Context) (usecase.ReferenceService, func(), error)
	UninstallService(ctx context.Context) (usecase.UninstallService, func(), error)
}

// NewRootCommand creates the openveoctl command tree.
func NewRootCommand(factory ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "openveoctl",
		Short:         "Resolve and manage OpenVeo video references",
		Long:          `Resolve OpenVeo video URLs into file references, look up stored references and clean up host files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("lang", "en", "Language of the messages (en, fr)")

	cmd.AddCommand(NewResolveCommand(factory))
	cmd.AddCommand(NewDetailsCommand(factory))
	cmd.AddCommand(NewLinkCommand(factory))
	cmd.AddCommand(NewUninstallCommand(factory))

	return cmd
}

// localizer returns the Localizer selected by the --lang flag.
func localizer(cmd *cobra.Command) lang.Localizer {
	tag, _ := cmd.Flags().GetString("lang")
	return lang.Match(tag)
}
