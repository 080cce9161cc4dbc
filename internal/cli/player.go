package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerRenameCmd())
	cmd.AddCommand(newPlayerLeaguesCmd())
	cmd.AddCommand(newPlayerOwnedCmd())
	cmd.AddCommand(newPlayerInvitesCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var email, displayName, name, phone string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"email":        email,
				"display_name": displayName,
				"name":         name,
			}
			if phone != "" {
				req["phone"] = phone
			}

			var result CreatedResult

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Display name (required)")
	cmd.Flags().StringVar(&name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("display-name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get player details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all player ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result IDListResult

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerRenameCmd() *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "rename <id>",
		Short: "Update a player's display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"display_name": displayName}

			if err := client.Patch(fmt.Sprintf("/api/v1/players/%s/display-name", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Renamed player %s to %q", args[0], displayName))
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "display-name", "", "New display name (required)")
	_ = cmd.MarkFlagRequired("display-name")

	return cmd
}

func newPlayerLeaguesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leagues <id>",
		Short: "List leagues the player is a member of",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result IDListResult

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s/leagues", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerOwnedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owned <id>",
		Short: "List leagues the player owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result IDListResult

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s/owned-leagues", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerInvitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invites <id>",
		Short: "List leagues the player has a pending invite to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result IDListResult

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s/invites", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
