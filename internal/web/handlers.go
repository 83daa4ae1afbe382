package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/view"
)

// Web handlers

func (s *Server) handleIndex(c *gin.Context) {
	items, err := s.service.ListItems(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, view.IndexTemplate, view.NewIndexPage(items))
}

func (s *Server) handleAdd(c *gin.Context) {
	if _, err := s.service.AddItem(c.Request.Context(), c.PostForm("title")); err != nil {
		s.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (s *Server) handleToggle(c *gin.Context) {
	id, ok := s.itemID(c)
	if !ok {
		s.renderNotFound(c)
		return
	}

	if _, err := s.service.ToggleItem(c.Request.Context(), id); err != nil {
		s.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (s *Server) handleDelete(c *gin.Context) {
	id, ok := s.itemID(c)
	if !ok {
		s.renderNotFound(c)
		return
	}

	if err := s.service.DeleteItem(c.Request.Context(), id); err != nil {
		s.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (s *Server) handleNoRoute(c *gin.Context) {
	if isAPIRequest(c) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
		})
		return
	}
	s.renderNotFound(c)
}

func (s *Server) handleNoMethod(c *gin.Context) {
	if isAPIRequest(c) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"success": false,
			"error":   "method not allowed",
		})
		return
	}
	c.HTML(http.StatusMethodNotAllowed, view.ErrorTemplate, view.NewErrorPage(http.StatusMethodNotAllowed,
		"The method is not allowed for the requested URL."))
}

func (s *Server) handleHealth(c *gin.Context) {
	count, err := s.service.CountItems(c.Request.Context())
	if err != nil {
		s.logError(c, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  errors.GetUserMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"items":  count,
	})
}

// itemID reads the :id path segment. Only unsigned decimal integers above zero match.
func (s *Server) itemID(c *gin.Context) (int64, bool) {
	id, err := s.validator.ParseItemID(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Server) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, view.ErrorTemplate, view.NewErrorPage(http.StatusNotFound,
		"The requested URL was not found on the server."))
}

func (s *Server) renderError(c *gin.Context, err error) {
	s.logError(c, err)
	status := errors.HTTPStatus(err)
	c.HTML(status, view.ErrorTemplate, view.NewErrorPage(status, errors.GetUserMessage(err)))
}

func (s *Server) logError(c *gin.Context, err error) {
	if errors.ShouldLogError(err) {
		logging.FromContext(c.Request.Context(), s.log).Error("Request failed", errors.LogArgs(err)...)
	}
}
