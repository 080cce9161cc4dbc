package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case League:
		o.printLeague(v)
	case CreatedResult:
		o.printCreatedResult(v)
	case IDListResult:
		o.printIDListResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	JoinDay     int    `json:"join_day"`
}

// League response type
type League struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	GameType      string   `json:"game_type"`
	Status        string   `json:"status"`
	OwnerIDs      []int    `json:"owner_ids"`
	MemberIDs     []int    `json:"member_ids"`
	EmailInvites  []string `json:"email_invites"`
	PlayerInvites []int    `json:"player_invites"`
	StartDay      *int     `json:"start_day"`
	EndDay        *int     `json:"end_day"`
	CloseDay      *int     `json:"close_day"`
}

// CreatedResult response type
type CreatedResult struct {
	ID int `json:"id"`
}

// IDListResult response type
type IDListResult struct {
	IDs []int `json:"ids"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%d)\n", p.DisplayName, p.ID)
	fmt.Printf("Name: %s\n", p.Name)
	fmt.Printf("Email: %s\n", p.Email)
	if p.Phone != "" {
		fmt.Printf("Phone: %s\n", p.Phone)
	}
	fmt.Printf("Joined: %s\n", formatDay(p.JoinDay))
}

func (o *Output) printLeague(l League) {
	fmt.Printf("League: %s (%d)\n", l.Name, l.ID)
	fmt.Printf("Game: %s\n", l.GameType)
	fmt.Printf("Status: %s\n", l.Status)
	fmt.Printf("Owners: %s\n", joinIDs(l.OwnerIDs))
	fmt.Printf("Members: %s\n", joinIDs(l.MemberIDs))
	if len(l.PlayerInvites) > 0 {
		fmt.Printf("Invited players: %s\n", joinIDs(l.PlayerInvites))
	}
	if len(l.EmailInvites) > 0 {
		fmt.Printf("Invited emails: %s\n", strings.Join(l.EmailInvites, ", "))
	}
	if l.StartDay != nil {
		fmt.Printf("Starts: %s\n", formatDay(*l.StartDay))
	}
	if l.EndDay != nil {
		fmt.Printf("Ends: %s\n", formatDay(*l.EndDay))
	}
	if l.CloseDay != nil {
		fmt.Printf("Closed: %s\n", formatDay(*l.CloseDay))
	}
}

func (o *Output) printCreatedResult(c CreatedResult) {
	fmt.Printf("Created: %d\n", c.ID)
}

func (o *Output) printIDListResult(r IDListResult) {
	if len(r.IDs) == 0 {
		fmt.Println("(none)")
		return
	}
	fmt.Println(joinIDs(r.IDs))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

func formatDay(day int) string {
	return time.Unix(int64(day)*86400, 0).UTC().Format(time.DateOnly)
}
