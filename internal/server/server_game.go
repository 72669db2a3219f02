package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"guess_game/internal/domain/entity"
	"guess_game/internal/domain/value"
	"guess_game/pkg/errcodes"
	"guess_game/pkg/httpx/reply"
	"guess_game/pkg/httpx/req"
	"guess_game/pkg/lox"
	"guess_game/pkg/rest"
)

type gameService interface {
	Start(ctx context.Context, id value.GameID) (entity.Game, error)
	Get(ctx context.Context, id value.GameID) (entity.Game, error)
	Guess(ctx context.Context, id value.GameID, text string) (entity.Turn, entity.Game, error)
	Forget(ctx context.Context, id value.GameID) error
	Results(ctx context.Context, limit, offset int) ([]entity.Game, error)
}

type GameServer struct {
	gameService gameService
}

func NewGameServer(gameService gameService) GameServer {
	return GameServer{
		gameService: gameService,
	}
}

func (s GameServer) postV1Games(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	g, err := s.gameService.Start(ctx, value.NewGameID())
	if err != nil {
		return fmt.Errorf("gameService.Start: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTGame(g))

	return nil
}

func (s GameServer) getV1Game(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseGameID(r)
	if err != nil {
		return err
	}

	g, err := s.gameService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("gameService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTGame(g))

	return nil
}

func (s GameServer) deleteV1Game(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseGameID(r)
	if err != nil {
		return err
	}

	if err = s.gameService.Forget(ctx, id); err != nil {
		return fmt.Errorf("gameService.Forget: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s GameServer) postV1GameGuesses(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseGameID(r)
	if err != nil {
		return err
	}

	var request rest.GuessRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	turn, g, err := s.gameService.Guess(ctx, id, *request.Guess)
	if err != nil {
		return fmt.Errorf("gameService.Guess: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTGuessResponse(turn, g))

	return nil
}

func (s GameServer) getV1Results(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		return err
	}

	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		return err
	}

	games, err := s.gameService.Results(ctx, limit, offset)
	if err != nil {
		return fmt.Errorf("gameService.Results: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Results{
		Games: lox.Map(games, newRESTGame),
	})

	return nil
}

func parseGameID(r *http.Request) (value.GameID, error) {
	id, err := value.ParseGameID(chi.URLParam(r, "id"))
	if err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseGameID: %w", err),
			failure.WithCode(errcodes.InvalidGameID),
		)
	}

	return id, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid %s: %q", name, raw),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription(name+" must be a non-negative integer"),
		)
	}

	return n, nil
}
