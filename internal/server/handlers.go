package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/estateworks/estates-go/internal/portfolio"
)

func (s *Server) listProjects(c *gin.Context) {
	status := c.DefaultQuery("status", portfolio.FilterAll)
	site := c.DefaultQuery("site", portfolio.FilterAll)

	projects := s.store.FilteredProjects(status, site)
	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"count":    len(projects),
	})
}

func (s *Server) projectDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project := s.store.Project(id)
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	pre, during, post := project.PhaseBuckets()
	warnings := s.store.WarningsFor(id)

	detail := gin.H{
		"project": project,
		"phases": gin.H{
			"pre":    pre,
			"during": during,
			"post":   post,
		},
		"warnings":    warnings,
		"contractors": s.store.ContractorsFor(id),
	}
	if highest := portfolio.HighestSeverity(warnings); highest != nil {
		detail["highestSeverity"] = highest
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Stats())
}

func (s *Server) sites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sites": portfolio.Sites(s.store.Projects())})
}

func (s *Server) programme(c *gin.Context) {
	site := c.DefaultQuery("site", portfolio.FilterAll)

	projects := s.store.ProgrammeProjects(site)
	contractors := s.store.Contractors()
	warnings := s.store.Warnings()
	links := s.store.Links()
	rankings := s.cfg.Estates.Rankings

	c.JSON(http.StatusOK, gin.H{
		"spend":       portfolio.SpendTable(projects),
		"risks":       portfolio.TopRisks(projects, rankings.TopRisks),
		"contractors": portfolio.ContractorUsageRanking(contractors, links, projects, rankings.TopContractors),
		"hotspots":    portfolio.Hotspots(projects, warnings, rankings.TopHotspots),
		"heatmap":     portfolio.SeverityHeatmap(projects, warnings),
		"charts": gin.H{
			"bySite":      portfolio.ProjectsBySite(projects),
			"byAssetType": portfolio.ProjectsByAssetType(projects),
			"byAssignee":  portfolio.TasksByAssignee(projects),
			"byTrade":     portfolio.TradeUsage(contractors, links),
			"timeline":    portfolio.Timeline(projects),
		},
	})
}

func (s *Server) getSelection(c *gin.Context) {
	project, ok := s.store.Selected()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no project selected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

type selectionRequest struct {
	ID int `json:"id"`
}

func (s *Server) setSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection body"})
		return
	}
	// The cursor is set unconditionally; a dangling id resolves to "no
	// selection" on read.
	s.store.SetSelected(req.ID)
	c.Status(http.StatusNoContent)
}

func (s *Server) cycleProjectStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}
	project, ok := s.store.CycleProjectStatus(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (s *Server) cycleTaskStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}
	task, ok := s.store.CycleTaskStatus(id, c.Param("taskID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (s *Server) reloadWorkbook(c *gin.Context) {
	if s.reload == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reload not configured"})
		return
	}
	if err := s.reload(); err != nil {
		// The store keeps its previous contents on a failed load.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.store.Stats())
}
