package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/student"
)

type studentApi struct {
	conf *core.Config
	svc  *student.Service
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, conf *core.Config, svc *student.Service) {
	api := studentApi{conf: conf, svc: svc}

	sg := g.Group("/students")

	// un-authed endpoints
	// TODO: rate limit `/register` & `/login`
	sg.POST("/register", api.register)
	sg.POST("/login", api.login)

	// authed endpoints
	ag := sg.Group("", jwt, studentMiddleware())
	ag.POST("/token-refresh", api.refreshToken)
	ag.GET("/me", api.me)
}

// Handlers

func (api *studentApi) register(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	std, err := api.svc.Register(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, std)
}

func (api *studentApi) login(ctx echo.Context) error {
	var data StudentLoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StudentLoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	std, err := api.svc.Authenticate(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		return err
	}
	token, err := GenerateToken(api.conf, GetStudentClaims(api.conf, std))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *studentApi) refreshToken(ctx echo.Context) error {
	token, err := refreshStudentToken(ctx, api.conf, api.svc)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *studentApi) me(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	std, err := api.svc.GetByID(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, std)
}

type (
	StudentLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}
)

func (lr *StudentLoginRequest) Validate() error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return core.Validate.Struct(lr)
}
