package controllerImp

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	analysisCtrl "smartcrop/pkg/analysis/controllerImp"
	analysis "smartcrop/pkg/analysis/service"
	"smartcrop/pkg/logging"
	"smartcrop/pkg/metrics"
	plan "smartcrop/pkg/plan/service"
	"smartcrop/pkg/plan/serviceImp"
	"smartcrop/pkg/report"
	"smartcrop/pkg/report/controller"
)

type reportReq struct {
	analysisCtrl.AnalyzeReq
	PlantingDate string `json:"planting_date" validate:"omitempty,datetime=2006-01-02"`
}

type reportCtrl struct {
	analysis analysis.AnalysisService
	plans    plan.PlanService
	loc      *time.Location
	now      func() time.Time
}

func NewReportCtrl(a analysis.AnalysisService, p plan.PlanService, loc *time.Location) controller.ReportController {
	if loc == nil {
		loc = time.UTC
	}
	return &reportCtrl{analysis: a, plans: p, loc: loc, now: time.Now}
}

// Generate handles POST /report and streams back an XLSX attachment.
func (h *reportCtrl) Generate(c echo.Context) error {
	var req reportReq
	if ok, err := analysisCtrl.BindAnalyzeReq(c, &req); !ok {
		return err
	}
	in, err := req.Input()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	now := h.now().In(h.loc)
	planted := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	if req.PlantingDate != "" {
		planted, _ = time.ParseInLocation(serviceImp.DateLayout, req.PlantingDate, h.loc)
	}

	d := report.Data{Outcome: h.analysis.Evaluate(in), GeneratedAt: now}
	p, err := h.plans.Build(d.Outcome.Crop, planted, in.SoilType, in.PH)
	switch {
	case err == nil:
		d.Plan = p
	case !errors.Is(err, plan.ErrUnknownCrop):
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, d); err != nil {
		logging.Error().Err(err).Msg("[report] render failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to build report"})
	}
	metrics.ReportsTotal.Inc()
	name := fmt.Sprintf("smartcrop-%s-%s.xlsx", slug(d.Outcome.Crop), now.Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, report.ContentType, buf.Bytes())
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "crop"
	}
	return b.String()
}
