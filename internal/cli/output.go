package cli

import (
	"encoding/json"
	"fmt"
	"os"
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
	case AuthResult:
		o.printAuthResult(v)
	case World:
		o.printWorld(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case BoardView:
		o.printBoardView(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Roads response type
type Roads struct {
	Top    bool `json:"top"`
	Right  bool `json:"right"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
}

// Tile response type
type Tile struct {
	ID       string `json:"id"`
	Roads    Roads  `json:"roads"`
	Owner    string `json:"owner,omitempty"`
	Building string `json:"building,omitempty"`
}

// World response type
type World struct {
	Tiles     [][]Tile       `json:"tiles"`
	Balances  map[string]int `json:"balances"`
	MyBalance int            `json:"my_balance"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	PlayerID  string `json:"player_id"`
	Username  string `json:"username"`
	Balance   int    `json:"balance"`
	IsCurrent bool   `json:"is_current"`
}

// Position response type
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BoardView response type
type BoardView struct {
	CameraX  int       `json:"camera_x"`
	CameraY  int       `json:"camera_y"`
	Zoom     float64   `json:"zoom"`
	Selected *Position `json:"selected"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Username, p.ID)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printWorld(w World) {
	fmt.Printf("Money: $%d\n", w.MyBalance)
	fmt.Printf("Updated: %s\n", w.UpdatedAt.Format(time.RFC3339))

	owned := 0
	for _, row := range w.Tiles {
		for _, tile := range row {
			if tile.Owner != "" {
				owned++
			}
		}
	}
	fmt.Printf("Tiles owned: %d/%d\n\n", owned, len(w.Tiles)*len(w.Tiles))

	for _, row := range w.Tiles {
		for _, tile := range row {
			switch {
			case tile.Owner == "":
				fmt.Print(" .")
			default:
				fmt.Print(" #")
			}
		}
		fmt.Println()
	}
	fmt.Println("\nLegend: . available  # owned")
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	fmt.Println("Leaderboard:")
	for _, e := range entries {
		marker := ""
		if e.IsCurrent {
			marker = " (you)"
		}
		fmt.Printf("  #%d %s - $%d%s\n", e.Rank, e.Username, e.Balance, marker)
	}
}

func (o *Output) printBoardView(v BoardView) {
	fmt.Printf("Camera: (%d, %d)\n", v.CameraX, v.CameraY)
	fmt.Printf("Zoom: %.2f\n", v.Zoom)
	if v.Selected != nil {
		fmt.Printf("Selected: (%d, %d)\n", v.Selected.Row, v.Selected.Col)
	} else {
		fmt.Println("Selected: none")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
