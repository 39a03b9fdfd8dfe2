package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core/course"
)

type courseApi struct {
	repo course.Repository
}

func registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc, repo course.Repository) {
	api := courseApi{repo: repo}

	// any authenticated caller may list courses
	g.GET("/courses", api.query, jwt)
}

func (api *courseApi) query(ctx echo.Context) error {
	courses, err := api.repo.QueryAllCourses(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []course.Course{}
	}
	return ctx.JSON(http.StatusOK, courses)
}
