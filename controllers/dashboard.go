package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"garagehub-backend/services"
	"garagehub-backend/store"
)

type DashboardController struct {
	Store *store.Store
}

// Overview composes the dashboard: headline metrics (optionally filtered by
// ?activite=CARROSSERIE|MECANIQUE), overdue-invoice alerts and the recent
// activity feed. Everything is recomputed from current store state.
func (ctl *DashboardController) Overview(c *gin.Context) {
	now := time.Now()
	activite := c.DefaultQuery("activite", "ALL")

	c.JSON(http.StatusOK, gin.H{
		"metrics":  services.ComputeDashboardMetrics(ctl.Store, activite, now),
		"alertes":  services.ComputeAlertes(ctl.Store.Factures.List(), now),
		"activite": services.ComputeActivites(ctl.Store, 10),
	})
}
