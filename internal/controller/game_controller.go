package controller

import (
	"time"

	"ghostcheckers/internal/render"
	"ghostcheckers/internal/service"

	"github.com/gofiber/fiber/v2"
)

// matchPollTimeout bounds the matchmaking long-poll; clients re-poll
// when it elapses without a match.
const matchPollTimeout = 25 * time.Second

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var body struct {
		VsBot bool `json:"vsBot"`
	}
	// Body is optional; an empty body means a two-player game.
	_ = c.BodyParser(&body)

	gameID, err := gc.gameService.CreateGame(body.VsBot)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		if err.Error() == "game not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch game state",
		})
	}

	return c.JSON(gameState)
}

// GetBoardSVG serves a static diagram of the current position,
// including ghost trails.
func (gc *GameController) GetBoardSVG(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	snapshot, err := gc.gameService.GetBoardSnapshot(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Type("svg")
	return c.Send(render.BoardSVG(snapshot))
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to join matchmaking",
		})
	}

	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

// MatchmakingEvents long-polls for a match. It answers with the
// match-found payload as soon as the player is paired, or with a
// pending status when the poll times out.
func (gc *GameController) MatchmakingEvents(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	ch := make(chan string, 1)
	if err := gc.gameService.RegisterMatchmakingChannel(playerID, ch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register for matchmaking events",
		})
	}

	select {
	case payload, ok := <-ch:
		if !ok {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Superseded by a newer poll",
			})
		}
		c.Set("Content-Type", "application/json")
		return c.SendString(payload)
	case <-time.After(matchPollTimeout):
		gc.gameService.UnregisterMatchmakingChannel(playerID)
		// The matchmaker may have delivered a match in the instant the
		// timer fired; the payload is buffered, so pick it up instead
		// of dropping the player's pairing on the floor.
		select {
		case payload, ok := <-ch:
			if ok {
				c.Set("Content-Type", "application/json")
				return c.SendString(payload)
			}
		default:
		}
		return c.JSON(fiber.Map{
			"status": "pending",
		})
	}
}
