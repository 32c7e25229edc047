// Package update реализует HTTP-обработчик для обновления бронирования.
//
// Обновить бронирование может только его создатель: поле user_id запроса
// идентифицирует действующего пользователя, несовпадение с создателем
// бронирования приводит к ошибке доступа 403.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/travel-booking/internal/http/response"
	"github.com/magabrotheeeer/travel-booking/internal/lib/sl"
	"github.com/magabrotheeeer/travel-booking/internal/models"
	bookingservice "github.com/magabrotheeeer/travel-booking/internal/services/booking"
	"github.com/magabrotheeeer/travel-booking/internal/storage/repository"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления бронирования.
type Service interface {
	Update(ctx context.Context, uid string, req models.DummyBookingUpdate) (int, error)
	Patch(ctx context.Context, uid string, req models.PatchBooking) (int, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid := chi.URLParam(r, "id")
	if _, err := uuid.Parse(uid); err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	var counter int
	var err error
	if r.Method == http.MethodPatch {
		var req models.PatchBooking
		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}
		if err = h.validate.Struct(req); err != nil {
			log.Error("validation failed", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
			return
		}
		counter, err = h.service.Patch(r.Context(), uid, req)
	} else {
		var req models.DummyBookingUpdate
		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}
		if err = h.validate.Struct(req); err != nil {
			log.Error("validation failed", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
			return
		}
		counter, err = h.service.Update(r.Context(), uid, req)
	}

	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Error("booking not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("booking not found"))
		case errors.Is(err, bookingservice.ErrInvalidDate):
			log.Error("invalid booking dates", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("start_date and end_date must be dates in RFC3339 format"))
		case errors.Is(err, bookingservice.ErrNotOwner):
			log.Error("permission denied", sl.Err(err))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("you do not have permission to update this booking"))
		default:
			log.Error("failed to update booking", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update booking"))
		}
		return
	}

	log.Info("success to update booking", slog.Int("updated_count", counter))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated_count": counter,
	}))
}
