package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/ut/internal/apperr"
	"github.com/DjordjeVuckovic/ut/internal/builtin"
	"github.com/DjordjeVuckovic/ut/internal/calc"
)

type CalcRequest struct {
	Expression string `json:"expression"`
}

type FunctionsResponse struct {
	Functions []string `json:"functions"`
	Constants []string `json:"constants"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Title  string `json:"title"`
	Kind   string `json:"kind,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type CalcRouter struct {
	e    *echo.Echo
	calc *calc.Calculator
}

func NewCalcRouter(e *echo.Echo, c *calc.Calculator) *CalcRouter {
	return &CalcRouter{
		e:    e,
		calc: c,
	}
}

func (r *CalcRouter) Bind() {
	g := r.e.Group("/calc")
	g.GET("", r.evaluateQueryHandler)
	g.POST("", r.evaluateBodyHandler)
	g.GET("/functions", r.functionsHandler)
}

// evaluateQueryHandler godoc
// @Summary Evaluate an expression
// @Tags calc
// @Produce json
// @Param expr query string true "Arithmetic expression"
// @Success 200 {object} format.Result
// @Failure 400 {object} ErrorResponse
// @Router /calc [get]
func (r *CalcRouter) evaluateQueryHandler(c echo.Context) error {
	return r.evaluate(c, c.QueryParam("expr"))
}

// evaluateBodyHandler godoc
// @Summary Evaluate an expression from a JSON body
// @Tags calc
// @Accept json
// @Produce json
// @Param request body CalcRequest true "Expression"
// @Success 200 {object} format.Result
// @Failure 400 {object} ErrorResponse
// @Router /calc [post]
func (r *CalcRouter) evaluateBodyHandler(c echo.Context) error {
	var req CalcRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	return r.evaluate(c, req.Expression)
}

func (r *CalcRouter) evaluate(c echo.Context, expr string) error {
	if strings.TrimSpace(expr) == "" {
		return apperr.NewValidation("expression is required")
	}

	res, err := r.calc.Evaluate(expr)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

// functionsHandler godoc
// @Summary List built-in functions and constants
// @Tags calc
// @Produce json
// @Success 200 {object} FunctionsResponse
// @Router /calc/functions [get]
func (r *CalcRouter) functionsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, FunctionsResponse{
		Functions: builtin.Functions(),
		Constants: builtin.Constants(),
	})
}
