package cli

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"
)

func newLeagueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "league",
		Short: "League management commands",
	}

	cmd.AddCommand(newLeagueCreateCmd())
	cmd.AddCommand(newLeagueGetCmd())
	cmd.AddCommand(newLeagueListCmd())
	cmd.AddCommand(newLeagueDeleteCmd())
	cmd.AddCommand(newLeagueRenameCmd())
	cmd.AddCommand(newLeagueCloneCmd())
	cmd.AddCommand(newLeagueInviteCmd())
	cmd.AddCommand(newLeagueUninviteCmd())
	cmd.AddCommand(newLeagueAcceptCmd())
	cmd.AddCommand(newLeagueAddOwnerCmd())
	cmd.AddCommand(newLeagueRemoveOwnerCmd())
	cmd.AddCommand(newLeagueStartCmd())
	cmd.AddCommand(newLeagueEndCmd())

	return cmd
}

func newLeagueCreateCmd() *cobra.Command {
	var ownerID int
	var name, gameType string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new league",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"owner_id":  ownerID,
				"name":      name,
				"game_type": gameType,
			}

			var result CreatedResult

			if err := client.Post("/api/v1/leagues", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&ownerID, "owner", 0, "Founding owner's player id (required)")
	cmd.Flags().StringVar(&name, "name", "", "League name (required)")
	cmd.Flags().StringVar(&gameType, "game", "", "Game type: DICEROLL, WORDMASTER (required)")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}

func newLeagueGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get league details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result League

			if err := client.Get(fmt.Sprintf("/api/v1/leagues/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLeagueListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all league ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result IDListResult

			if err := client.Get("/api/v1/leagues", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLeagueDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/leagues/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted league %s", args[0]))
			return nil
		},
	}
}

func newLeagueRenameCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename <id>",
		Short: "Rename a league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": name}

			if err := client.Patch(fmt.Sprintf("/api/v1/leagues/%s/name", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Renamed league %s to %q", args[0], name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New league name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLeagueCloneCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "clone <id>",
		Short: "Clone a league for a new season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": name}
			var result CreatedResult

			if err := client.Post(fmt.Sprintf("/api/v1/leagues/%s/clone", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name for the new league (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLeagueInviteCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "invite <id>",
		Short: "Invite a player to a league by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"email": email}

			if err := client.Post(fmt.Sprintf("/api/v1/leagues/%s/invites", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Invited %s to league %s", email, args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address to invite (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLeagueUninviteCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "uninvite <id>",
		Short: "Withdraw a pending invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/leagues/%s/invites?email=%s", args[0], url.QueryEscape(email))
			if err := client.Delete(path); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Removed invite for %s", email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address to uninvite (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLeagueAcceptCmd() *cobra.Command {
	var playerID int

	cmd := &cobra.Command{
		Use:   "accept <id>",
		Short: "Accept an invitation to a league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"player_id": playerID}

			if err := client.Post(fmt.Sprintf("/api/v1/leagues/%s/invites/accept", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Player %d joined league %s", playerID, args[0]))
			return nil
		},
	}

	cmd.Flags().IntVar(&playerID, "player", 0, "Accepting player's id (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newLeagueAddOwnerCmd() *cobra.Command {
	var playerID int

	cmd := &cobra.Command{
		Use:   "add-owner <id>",
		Short: "Promote a member to league owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"player_id": playerID}

			if err := client.Post(fmt.Sprintf("/api/v1/leagues/%s/owners", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Added owner %d to league %s", playerID, args[0]))
			return nil
		},
	}

	cmd.Flags().IntVar(&playerID, "player", 0, "Player id to promote (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newLeagueRemoveOwnerCmd() *cobra.Command {
	var playerID int

	cmd := &cobra.Command{
		Use:   "remove-owner <id>",
		Short: "Demote a league owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/leagues/%s/owners/%d", args[0], playerID)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Removed owner %d from league %s", playerID, args[0]))
			return nil
		},
	}

	cmd.Flags().IntVar(&playerID, "player", 0, "Player id to demote (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newLeagueStartCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "start <id>",
		Short: "Set a league's start date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(date)
			if err != nil {
				return err
			}

			req := map[string]int{"day": day}

			if err := client.Put(fmt.Sprintf("/api/v1/leagues/%s/start-date", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("League %s starts %s", args[0], date))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Start date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newLeagueEndCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "end <id>",
		Short: "Set a league's end date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(date)
			if err != nil {
				return err
			}

			req := map[string]int{"day": day}

			if err := client.Put(fmt.Sprintf("/api/v1/leagues/%s/end-date", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("League %s ends %s", args[0], date))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "End date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

// parseDay converts a YYYY-MM-DD string into an epoch-day integer
func parseDay(date string) (int, error) {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return int(t.Unix() / 86400), nil
}
