package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"smartcrop/pkg/agronomy"
)

var appStart = time.Now()

type HealthCtrl struct {
	db  *gorm.DB
	cat *agronomy.Catalog
}

func NewHealthCtrl(db *gorm.DB, cat *agronomy.Catalog) *HealthCtrl {
	return &HealthCtrl{db: db, cat: cat}
}

type check struct {
	OK    bool   `json:"ok"`
	Err   string `json:"err,omitempty"`
	Crops int    `json:"crops,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	if h.db == nil {
		db = check{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		db = check{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		db = check{Err: "ping: " + err.Error()}
	}

	cat := check{OK: h.cat != nil && h.cat.Len() > 0}
	if cat.OK {
		cat.Crops = h.cat.Len()
	} else {
		cat.Err = "reference catalog is empty"
	}

	allOK := db.OK && cat.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"catalog":  cat,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
