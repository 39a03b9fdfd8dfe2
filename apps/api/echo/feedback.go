package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core/feedback"
)

type feedbackApi struct {
	svc *feedback.Service
}

func registerFeedbackAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *feedback.Service) {
	api := feedbackApi{svc: svc}

	fg := g.Group("/feedback", jwt, studentMiddleware())
	fg.POST("", api.submit)
}

func (api *feedbackApi) submit(ctx echo.Context) error {
	var data feedback.NewFeedback
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFeedback")
	}

	// the submitting student comes from the token, never the payload
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	data.StudentID = claims.Subject

	if err := data.Validate(); err != nil {
		return err
	}

	fb, err := api.svc.Submit(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, fb)
}
