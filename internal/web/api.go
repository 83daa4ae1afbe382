package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todo-list/internal/errors"
)

type createItemRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleAPIList(c *gin.Context) {
	items, err := s.service.ListItems(c.Request.Context())
	if err != nil {
		s.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   items,
		"count":   len(items),
	})
}

func (s *Server) handleAPICreate(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	item, err := s.service.AddItem(c.Request.Context(), req.Title)
	if err != nil {
		s.apiError(c, err)
		return
	}

	if item == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"created": false,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"created": true,
		"item":    item,
	})
}

func (s *Server) handleAPIToggle(c *gin.Context) {
	id, ok := s.itemID(c)
	if !ok {
		s.apiNotFound(c)
		return
	}

	item, err := s.service.ToggleItem(c.Request.Context(), id)
	if err != nil {
		s.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"item":    item,
	})
}

func (s *Server) handleAPIDelete(c *gin.Context) {
	id, ok := s.itemID(c)
	if !ok {
		s.apiNotFound(c)
		return
	}

	if err := s.service.DeleteItem(c.Request.Context(), id); err != nil {
		s.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item deleted",
	})
}

func (s *Server) apiNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "item not found",
	})
}

func (s *Server) apiError(c *gin.Context, err error) {
	s.logError(c, err)
	c.JSON(errors.HTTPStatus(err), gin.H{
		"success": false,
		"error":   errors.GetUserMessage(err),
		"code":    errors.GetErrorCode(err),
	})
}

func isAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
