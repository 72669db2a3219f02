package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"guess_game/pkg/contextx"
	"guess_game/pkg/errcodes"
	"guess_game/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

// codedError is an application error that carries its own code.
type codedError interface {
	error
	ErrorCode() failure.ErrorCode
}

//nolint:gochecknoglobals
var statusByCode = map[failure.ErrorCode]int{
	errcodes.ValidationError:     http.StatusBadRequest,
	errcodes.InvalidPaging:       http.StatusBadRequest,
	errcodes.InvalidGameID:       http.StatusBadRequest,
	errcodes.InvalidGuess:        http.StatusBadRequest,
	errcodes.NotFound:            http.StatusNotFound,
	errcodes.GameNotFound:        http.StatusNotFound,
	errcodes.Forbidden:           http.StatusForbidden,
	errcodes.GameFinished:        http.StatusConflict,
	errcodes.TimeoutExceeded:     http.StatusGatewayTimeout,
	errcodes.InternalServerError: http.StatusInternalServerError,
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Created(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	var coded codedError
	if errors.As(err, &coded) {
		status, ok := statusByCode[coded.ErrorCode()]
		if !ok {
			status = http.StatusInternalServerError
		}

		if status >= http.StatusInternalServerError {
			logger(ctx).Error("error", logx.Error(err))
		} else {
			logger(ctx).Warn("error", logx.Error(err))
		}

		JSON(ctx, w, status, errorResponse{
			Code:      coded.ErrorCode().String(),
			Message:   coded.Error(),
			SupportID: supportID(ctx),
		})

		return
	}

	logger(ctx).Error("error", logx.Error(err))

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsUnauthorizedError(err):
		JSON(ctx, w, http.StatusUnauthorized, response)
	case failure.IsForbiddenError(err):
		response.WithDefaultCode(errcodes.Forbidden)
		JSON(ctx, w, http.StatusForbidden, response)
	case failure.IsConflictError(err):
		JSON(ctx, w, http.StatusConflict, response)
	case failure.IsUnprocessableEntityError(err):
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
