package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sergiomezzz/mi-api-juegos2/internal/server/games"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type gameRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
}

type gameResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toGameResponse(g *games.Game) gameResponse {
	return gameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Genre:       g.Genre,
		User:        g.UserID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (s *HTTPServer) registerUser(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	user, err := s.users.Register(c.UserContext(), body.Username, body.Email, body.Password)
	if err != nil {
		return err
	}

	s.logger.Info(c.UserContext(), "user registered", "username", user.Username)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"msg": "user registered"})
}

func (s *HTTPServer) login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	token, err := s.users.Login(c.UserContext(), body.Email, body.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"token": token})
}

func (s *HTTPServer) listGames(c *fiber.Ctx) error {
	result, err := s.games.List(c.UserContext(), authenticatedUserID(c))
	if err != nil {
		return err
	}

	response := make([]gameResponse, 0, len(result))
	for _, g := range result {
		response = append(response, toGameResponse(g))
	}
	return c.JSON(response)
}

func (s *HTTPServer) createGame(c *fiber.Ctx) error {
	var body gameRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	game, err := s.games.Create(c.UserContext(), authenticatedUserID(c), body.Title, body.Description, body.Genre)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toGameResponse(game))
}

func (s *HTTPServer) updateGame(c *fiber.Ctx) error {
	var body gameRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	game, err := s.games.Update(c.UserContext(), authenticatedUserID(c), c.Params("id"), body.Title, body.Description, body.Genre)
	if err != nil {
		return err
	}

	return c.JSON(toGameResponse(game))
}

func (s *HTTPServer) deleteGame(c *fiber.Ctx) error {
	if err := s.games.Delete(c.UserContext(), authenticatedUserID(c), c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"msg": "game deleted"})
}
