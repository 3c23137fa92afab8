package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"smartcrop/pkg/analysis/controller"
	"smartcrop/pkg/analysis/service"
	"smartcrop/pkg/logging"
	"smartcrop/pkg/validation"
)

type analysisCtrl struct{ svc service.AnalysisService }

func NewAnalysisCtrl(svc service.AnalysisService) controller.AnalysisController {
	return &analysisCtrl{svc}
}

// BindAnalyzeReq binds and validates the request, writing the 400 reply
// itself. ok is false when the caller should return.
func BindAnalyzeReq(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(req); err != nil {
		var ve validation.Errors
		if errors.As(err, &ve) {
			return false, c.JSON(http.StatusBadRequest, map[string]any{"error": ve.Error(), "fields": ve})
		}
		return false, c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return true, nil
}

func (h *analysisCtrl) Analyze(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req AnalyzeReq
	if ok, err := BindAnalyzeReq(c, &req); !ok {
		return err
	}
	in, err := req.Input()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	out, err := h.svc.Analyze(c.Request().Context(), uid, in)
	if err != nil {
		logging.Error().Err(err).Str("uid", uid).Msg("[analysis] analyze failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "analysis failed"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *analysisCtrl) History(c echo.Context) error {
	uid := c.Get("uid").(string)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.svc.History(uid, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
