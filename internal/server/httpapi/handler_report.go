package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivtchandra/CivicWatch/internal/common"
	"github.com/shivtchandra/CivicWatch/internal/server/services"
)

// createReportRequest mirrors the submission form. Lat/Lng stay strings and
// are coerced by the service.
type createReportRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Category           string `json:"category"`
	Location           string `json:"location"`
	City               string `json:"city"`
	Lat                string `json:"lat"`
	Lng                string `json:"lng"`
	ImageKey           string `json:"imageKey"`
	Priority           string `json:"priority"`
	ContactInfo        string `json:"contactInfo"`
	GovernmentResponse string `json:"governmentResponse"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleCreateReport(c *gin.Context) {
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.NewValidationError("invalid json body"))
		return
	}

	report, err := s.reports.Create(c.Request.Context(), currentUserID(c), &services.CreateReportParams{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		Location:           req.Location,
		City:               req.City,
		Lat:                req.Lat,
		Lng:                req.Lng,
		ImageKey:           req.ImageKey,
		Priority:           req.Priority,
		ContactInfo:        req.ContactInfo,
		GovernmentResponse: req.GovernmentResponse,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

func (s *Server) handleListReports(c *gin.Context) {
	list, err := s.reports.List(c.Request.Context(), c.Query("city"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (s *Server) handleGetReport(c *gin.Context) {
	report, err := s.reports.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) handleUpdateReportStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.NewValidationError("invalid json body"))
		return
	}

	report, err := s.reports.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) handleDeleteReport(c *gin.Context) {
	if err := s.reports.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
