package gameapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/maze-solver-api/game/maze"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager, err := service.NewMazeSessionManager(&service.Config{
		MazeFactory: func(width, height int, seed int64) (i.Maze, error) {
			return maze.NewFromSeed(width, height, seed)
		},
		Logger: log.New(io.Discard, "", 0),
	})
	assert.NoError(t, err)

	controller, err := NewMazeController(manager)
	assert.NoError(t, err)

	router := gin.New()
	controller.Register(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

// createSession starts a 3x1 corridor session and returns its response.
func createSession(t *testing.T, router *gin.Engine) SessionResponse {
	t.Helper()

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/mazes/", CreateMazeRequest{Width: 3, Height: 1, Seed: 5})
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response SessionResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func TestCreateMaze(t *testing.T) {
	router := newTestRouter(t)

	t.Run("creates a session", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/v1/mazes/", CreateMazeRequest{Width: 4, Height: 3, Seed: 7})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response SessionResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, 4, response.Width)
		assert.Equal(t, 3, response.Height)
		assert.Equal(t, int64(7), response.Seed)
		assert.Equal(t, 3, response.Lives)
		assert.Len(t, response.Grid, 3)
		assert.Len(t, response.Grid[0], 4)
		assert.True(t, response.Grid[0][0].IsStart)
		assert.True(t, response.Grid[2][3].IsEnd)
	})

	t.Run("rejects missing dimensions", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/v1/mazes/", gin.H{"width": 4})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects oversized dimensions", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/v1/mazes/", CreateMazeRequest{Width: 1000, Height: 3, Seed: 7})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestSessionState(t *testing.T) {
	router := newTestRouter(t)
	created := createSession(t, router)

	t.Run("returns the session", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/mazes/"+created.ID.String(), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response SessionResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, created.ID, response.ID)
	})

	t.Run("malformed id", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/mazes/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/mazes/00000000-0000-0000-0000-000000000001", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestMovePlayer(t *testing.T) {
	router := newTestRouter(t)
	created := createSession(t, router)
	target := "/api/v1/mazes/" + created.ID.String() + "/moves"

	t.Run("unknown direction", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, target, MoveRequest{Direction: "up"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("blocked move", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, target, MoveRequest{Direction: "north"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("walks the corridor to the end", func(t *testing.T) {
		var response SessionResponse
		for move := 0; move < 2; move++ {
			recorder := doJSON(t, router, http.MethodPost, target, MoveRequest{Direction: "east"})
			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		}
		assert.True(t, response.Won)
		assert.True(t, response.GameOver)
		assert.Equal(t, PositionResponse{Row: 0, Col: 2}, response.Player)
	})

	t.Run("moving after the game is over conflicts", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, target, MoveRequest{Direction: "west"})
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestSolveMaze(t *testing.T) {
	router := newTestRouter(t)
	created := createSession(t, router)
	target := "/api/v1/mazes/" + created.ID.String() + "/solve"

	t.Run("solves with every algorithm", func(t *testing.T) {
		for _, algorithm := range []string{"bfs", "dfs", "astar"} {
			recorder := doJSON(t, router, http.MethodPost, target, SolveRequest{Algorithm: algorithm})
			assert.Equal(t, http.StatusOK, recorder.Code)

			var response SolveResponse
			assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.Equal(t, algorithm, response.Algorithm)
			assert.Equal(t, 3, response.Length)
			assert.Equal(t, PositionResponse{Row: 0, Col: 0}, response.Path[0])
			assert.Equal(t, PositionResponse{Row: 0, Col: 2}, response.Path[2])
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, target, SolveRequest{Algorithm: "dijkstra"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestEndSession(t *testing.T) {
	router := newTestRouter(t)
	created := createSession(t, router)
	target := "/api/v1/mazes/" + created.ID.String()

	recorder := doJSON(t, router, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = doJSON(t, router, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
