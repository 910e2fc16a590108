package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewUninstallCommand creates the uninstall command.
func NewUninstallCommand(factory ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the host files referencing OpenVeo videos",
		Long: `Remove, for every OpenVeo repository instance, the host files referencing
OpenVeo videos and their references. Videos are never imported into the host,
so removed files will appear as missing wherever they were used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			if !force {
				fmt.Fprint(cmd.OutOrStdout(), "Are you sure you want to remove every file referencing OpenVeo videos? (y/N): ")
				response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				response = strings.ToLower(strings.TrimSpace(response))

				if response != "y" && response != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Uninstall cancelled")
					return nil
				}
			}

			svc, cleanup, err := factory.UninstallService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			output, err := svc.RemoveRepositoryFiles(cmd.Context())
			if output != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d file(s) from %d instance(s)\n", output.RemovedFiles, output.Instances)
			}
			if err != nil {
				return fmt.Errorf("failed to remove repository files: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Remove without confirmation")

	return cmd
}
