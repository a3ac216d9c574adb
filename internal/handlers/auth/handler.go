package auth

import (
	"net/http"
	"net/url"

	"github.com/alexfurtado22/djangobnb/infras/otel"
	"github.com/alexfurtado22/djangobnb/internal/domains/auth/model/dto"
	"github.com/alexfurtado22/djangobnb/internal/domains/auth/service"
	"github.com/alexfurtado22/djangobnb/shared/constant"
	"github.com/alexfurtado22/djangobnb/shared/validator"
	"github.com/alexfurtado22/djangobnb/transport/http/middleware"
	"github.com/alexfurtado22/djangobnb/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/logout", handler.Logout)
		routerGroup.Get("/session", handler.GetSession)
		routerGroup.Get("/user", handler.GetUser)
	})
}

// Login exchanges credentials for a token pair on the backend.
// @Summary Log in
// @Description Exchange email and password for an access/refresh token pair issued by the backend.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse "Token pair"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("login failed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in")

	response.WithJSON(w, http.StatusOK, res)
}

// Logout invalidates the bearer token on the backend.
// @Summary Log out
// @Description Invalidate the current session on the backend.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Logged out"
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.service.Logout(ctx, middleware.TokenFromRequest(r)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Logged out successfully")
}

// GetSession reports the identity state behind the bearer token.
// @Summary Get session status
// @Description Report whether the bearer token still represents a live session, without a backend round trip. An anonymous session with a redirect parameter gets the log-in URL to bounce through.
// @Tags Auth
// @Accept json
// @Produce json
// @Param redirect query string false "Destination to return to after logging in"
// @Success 200 {object} dto.SessionStatus "Session status"
// @Router /v1/auth/session [get]
// @Security BearerAuth
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	status := handler.service.Status(ctx, middleware.TokenFromRequest(r))

	redirect := r.URL.Query().Get(constant.RequestParamRedirect)
	if !status.IsAuthenticated && redirect != constant.Empty {
		response.WithJSON(w, http.StatusOK, dto.SessionWithLogin{
			SessionStatus: status,
			LoginRedirect: "/login?redirect=" + url.QueryEscape(redirect),
		})

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}

// GetUser resolves the identity record behind the bearer token.
// @Summary Get the current user
// @Description Proxy the backend's user endpoint for the bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.UserResponse "User"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/user [get]
// @Security BearerAuth
func (handler *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUser")
	defer scope.End()

	user, err := handler.service.User(ctx, middleware.TokenFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}
