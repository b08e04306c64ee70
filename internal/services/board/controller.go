package board

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/tmccay/cityblocks/internal/model"
	"github.com/tmccay/cityblocks/internal/services/world"
)

// Camera constants
const (
	// PanStep is the camera offset applied per pan command
	PanStep = 50

	// ZoomStep is the zoom delta applied per zoom command
	ZoomStep = 0.1

	// MinZoom and MaxZoom clamp the zoom factor
	MinZoom = 0.5
	MaxZoom = 2.0
)

// ErrInvalidDirection is returned for an unrecognized pan direction
var ErrInvalidDirection = errors.New("invalid pan direction")

// Direction is a discrete pan command
type Direction string

// Pan directions
const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// View is a player's transient board view state: camera offset, zoom
// factor and active tile selection. It is never persisted and resets
// when the process restarts.
type View struct {
	CameraX  int
	CameraY  int
	Zoom     float64
	Selected *model.Position
}

// Controller translates discrete board commands into view-state updates
// and, on a confirmed purchase, into world mutations
type Controller struct {
	worldService *world.Service
	logger       *slog.Logger

	mu    sync.Mutex
	views map[model.PlayerID]*View
}

// NewController creates a new board Controller
func NewController(worldService *world.Service, logger *slog.Logger) *Controller {
	return &Controller{
		worldService: worldService,
		logger:       logger,
		views:        make(map[model.PlayerID]*View),
	}
}

// View returns a copy of the player's current view state
func (c *Controller) View(playerID model.PlayerID) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(playerID)
}

// Pan moves the camera by one step in the given direction. The camera
// offset translates the grid, so panning is unbounded.
func (c *Controller) Pan(playerID model.PlayerID, dir Direction) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := c.viewLocked(playerID)
	switch dir {
	case DirectionUp:
		view.CameraY += PanStep
	case DirectionDown:
		view.CameraY -= PanStep
	case DirectionLeft:
		view.CameraX += PanStep
	case DirectionRight:
		view.CameraX -= PanStep
	default:
		return c.snapshotLocked(playerID), ErrInvalidDirection
	}
	return c.snapshotLocked(playerID), nil
}

// ZoomIn increases the zoom factor, clamped to MaxZoom
func (c *Controller) ZoomIn(playerID model.PlayerID) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := c.viewLocked(playerID)
	view.Zoom = clampZoom(view.Zoom + ZoomStep)
	return c.snapshotLocked(playerID)
}

// ZoomOut decreases the zoom factor, clamped to MinZoom
func (c *Controller) ZoomOut(playerID model.PlayerID) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := c.viewLocked(playerID)
	view.Zoom = clampZoom(view.Zoom - ZoomStep)
	return c.snapshotLocked(playerID)
}

// Select makes the tile at the given position the active selection.
// A tile owned by another player refuses selection and clears any prior
// selection: there is no previewing a purchase that cannot legally
// complete.
func (c *Controller) Select(ctx context.Context, playerID model.PlayerID, pos model.Position) (View, error) {
	current, err := c.worldService.Load(ctx, playerID)
	if err != nil {
		return c.View(playerID), err
	}

	tile, err := current.TileAt(pos)
	if err != nil {
		return c.View(playerID), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	view := c.viewLocked(playerID)
	if tile.Owned() && !tile.OwnedBy(playerID) {
		view.Selected = nil
		return c.snapshotLocked(playerID), model.ErrTileUnavailable
	}

	view.Selected = &model.Position{Row: pos.Row, Col: pos.Col}
	return c.snapshotLocked(playerID), nil
}

// ConfirmPurchase buys the selected tile for the player. The selection
// is cleared on success and left untouched on failure.
func (c *Controller) ConfirmPurchase(ctx context.Context, playerID model.PlayerID) (*model.World, View, error) {
	c.mu.Lock()
	view := c.viewLocked(playerID)
	if view.Selected == nil {
		c.mu.Unlock()
		return nil, c.View(playerID), model.ErrNoSelection
	}
	pos := *view.Selected
	c.mu.Unlock()

	next, err := c.worldService.Purchase(ctx, playerID, pos)
	if err != nil {
		return nil, c.View(playerID), err
	}

	c.mu.Lock()
	c.viewLocked(playerID).Selected = nil
	snapshot := c.snapshotLocked(playerID)
	c.mu.Unlock()

	c.logger.Info("purchase confirmed",
		slog.String("player_id", string(playerID)),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
	)

	return next, snapshot, nil
}

// Clear drops the player's view state (logout, reset)
func (c *Controller) Clear(playerID model.PlayerID) {
	c.mu.Lock()
	delete(c.views, playerID)
	c.mu.Unlock()
}

// ClearAll drops every player's view state after a full game data reset
func (c *Controller) ClearAll() {
	c.mu.Lock()
	c.views = make(map[model.PlayerID]*View)
	c.mu.Unlock()
}

// viewLocked returns the mutable view for a player, creating it on
// first use; callers must hold c.mu
func (c *Controller) viewLocked(playerID model.PlayerID) *View {
	view, ok := c.views[playerID]
	if !ok {
		view = &View{Zoom: 1.0}
		c.views[playerID] = view
	}
	return view
}

// snapshotLocked returns a copy of the player's view; callers must hold c.mu
func (c *Controller) snapshotLocked(playerID model.PlayerID) View {
	view := c.viewLocked(playerID)
	snapshot := *view
	if view.Selected != nil {
		pos := *view.Selected
		snapshot.Selected = &pos
	}
	return snapshot
}

func clampZoom(zoom float64) float64 {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}
