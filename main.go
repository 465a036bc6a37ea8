package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beka-birhanu/maze-solver-api/api"
	gameapi "github.com/beka-birhanu/maze-solver-api/api/game"
	api_i "github.com/beka-birhanu/maze-solver-api/api/i"
	"github.com/beka-birhanu/maze-solver-api/config"
	"github.com/beka-birhanu/maze-solver-api/game/maze"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	sessionManager i.MazeSessionManager
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

// mazeFactory builds the maze a new session plays on. A zero seed falls
// back to a time-based one.
func mazeFactory(width, height int, seed int64) (i.Maze, error) {
	if seed == 0 {
		return maze.New(width, height)
	}
	return maze.NewFromSeed(width, height, seed)
}

func initSessionManager() {
	sessionLogger := log.New(os.Stdout, fmt.Sprintf("%s[SESSION-MANAGER]%s ", config.ColorCyan, config.LogColorReset), log.LstdFlags)

	var err error
	sessionManager, err = service.NewMazeSessionManager(&service.Config{
		MazeFactory:  mazeFactory,
		MaxDimension: config.Envs.MaxMazeDimension,
		Logger:       sessionLogger,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating session manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}

	appLogger.Printf("%s[INFO]%s session manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initMazeController() {
	var err error
	mazeController, err = gameapi.NewMazeController(sessionManager)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating maze controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s maze controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Printf("%s[INFO]%s router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	appLogger = log.New(os.Stdout, fmt.Sprintf("%s[APP]%s ", config.ColorGreen, config.LogColorReset), log.LstdFlags)
	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	initSessionManager()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s starting server: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
