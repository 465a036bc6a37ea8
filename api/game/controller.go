// Package gameapi exposes maze play sessions over HTTP.
package gameapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/maze-solver-api/game/maze"
	"github.com/beka-birhanu/maze-solver-api/game/solver"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze session operations.
type MazeController struct {
	sessionManager i.MazeSessionManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(sm i.MazeSessionManager) (*MazeController, error) {
	if sm == nil {
		return nil, errors.New("session manager is required")
	}
	return &MazeController{sessionManager: sm}, nil
}

// Register registers the maze session routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.GET("/:ID", mc.state)
		mazes.POST("/:ID/moves", mc.move)
		mazes.POST("/:ID/solve", mc.solve)
		mazes.DELETE("/:ID", mc.end)
	}
}

// create handles session creation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := mc.sessionManager.NewSession(request.Width, request.Height, request.Seed)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrDimensionTooLarge) || errors.Is(err, maze.ErrInvalidDimensions) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newSessionResponse(state))
}

// state retrieves a snapshot of a specific session.
func (mc *MazeController) state(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	state, err := mc.sessionManager.Session(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Session"})
		return
	}

	ctx.JSON(http.StatusOK, newSessionResponse(state))
}

// move steps the player of a specific session.
func (mc *MazeController) move(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	direction, err := maze.ParseDirection(request.Direction)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := mc.sessionManager.Move(id, direction)
	switch {
	case errors.Is(err, service.ErrNoSession):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Session"})
	case errors.Is(err, service.ErrGameOver):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidMove):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusOK, newSessionResponse(state))
	}
}

// solve runs a pathfinding algorithm over a specific session's maze.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path, err := mc.sessionManager.Solve(id, solver.Algorithm(request.Algorithm))
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No Session"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(request.Algorithm, path))
}

// end drops a specific session.
func (mc *MazeController) end(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	if err := mc.sessionManager.EndSession(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Session"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// sessionID parses the session ID path parameter, writing the error
// response itself when the ID is malformed.
func (mc *MazeController) sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}
