// Package create реализует HTTP-обработчик для создания новых бронирований.
//
// Handler принимает JSON-запрос с данными бронирования, валидирует их,
// вызывает бизнес-логику создания бронирования через сервис и возвращает
// созданную запись в JSON-формате.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/travel-booking/internal/http/response"
	"github.com/magabrotheeeer/travel-booking/internal/lib/sl"
	"github.com/magabrotheeeer/travel-booking/internal/models"
	bookingservice "github.com/magabrotheeeer/travel-booking/internal/services/booking"
	"github.com/magabrotheeeer/travel-booking/internal/storage/repository"
)

// Handler управляет HTTP-запросами на создание новых бронирований.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания бронирования.
type Service interface {
	Create(ctx context.Context, req models.DummyBooking) (*models.Booking, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новое бронирование
// @Description Создает бронирование объявления на период дат. Статус по умолчанию — pending.
// @Tags Bookings
// @Accept  json
// @Produce  json
// @Param request body models.DummyBooking true "Данные нового бронирования"
// @Success 201 {object} map[string]any "Созданное бронирование"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании бронирования"
// @Router /bookings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyBooking
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	booking, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrInvalidDate):
			log.Error("invalid booking dates", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("start_date and end_date must be dates in RFC3339 format"))
		case errors.Is(err, repository.ErrInvalidReference):
			log.Error("unknown listing or user", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("listing or user does not exist"))
		default:
			log.Error("failed to create booking", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create booking"))
		}
		return
	}

	log.Info("success to create booking", slog.String("uid", booking.UID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"booking": booking,
	}))
}
