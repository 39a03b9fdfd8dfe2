package echoapi

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/admin"
	"github.com/trezcool/maoni/core/feedback"
)

type adminApi struct {
	conf  *core.Config
	svc   *admin.Service
	fbSvc *feedback.Service
}

func registerAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc, conf *core.Config, svc *admin.Service, fbSvc *feedback.Service) {
	api := adminApi{conf: conf, svc: svc, fbSvc: fbSvc}

	ag := g.Group("/admin")
	ag.POST("/login", api.login)

	authed := ag.Group("", jwt, adminMiddleware())
	authed.GET("/feedback-report", api.feedbackReport)
	authed.GET("/audit-log", api.auditLog)
}

// Handlers

func (api *adminApi) login(ctx echo.Context) error {
	var data AdminLoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AdminLoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	adm, err := api.svc.Authenticate(ctx.Request().Context(), data.Username, data.Password)
	if err != nil {
		return err
	}
	token, err := GenerateToken(api.conf, GetAdminClaims(api.conf, adm))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *adminApi) feedbackReport(ctx echo.Context) error {
	rows, err := api.fbSvc.ListReport(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing feedback report")
	}
	if rows == nil {
		rows = []feedback.ReportRow{}
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *adminApi) auditLog(ctx echo.Context) error {
	path := api.conf.Audit.LogFile
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errHttpNotFound
		}
		return errors.Wrap(err, "checking audit log")
	}
	return ctx.Attachment(path, "app.log")
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (lr *AdminLoginRequest) Validate() error {
	lr.Username = core.CleanString(lr.Username, true /* lower */)
	return core.Validate.Struct(lr)
}
