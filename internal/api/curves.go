package api

import (
	"errors"
	"net/http"

	"github.com/curvelab/fancurve/internal/curves"
	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
)

func registerCurveEndpoints(rest *echo.Echo) {
	group := rest.Group("/curve")

	group.GET("/", getCurves)
	group.GET("/:"+urlParamId+"/", getCurve)
	group.POST("/", createCurve)
	group.DELETE("/:"+urlParamId+"/", deleteCurve)
}

func getCurves(c echo.Context) error {
	data := reprint.This(curves.DutyCurveMap.Items())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getCurve(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := curves.DutyCurveMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	}
}

func deleteCurve(c echo.Context) error {
	return returnError(c, errors.New("not yet supported"))
}

func createCurve(c echo.Context) error {
	return returnError(c, errors.New("not yet supported"))
}
