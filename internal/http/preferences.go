package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"reading-prefs-go/internal/preferences"
)

const maxPreferenceBody = 64 << 10

// POST /preferences
func (s *Server) savePreferences(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPreferenceBody)
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	patch, err := preferences.ParsePatch(body)
	if err != nil {
		s.writeError(c, "preferences save", err)
		return
	}

	// the schema already guarantees userId is a string or null
	var target struct {
		UserID string `json:"userId"`
	}
	_ = json.Unmarshal(body, &target)
	if target.UserID == "" {
		c.JSON(400, gin.H{"message": "userId required"})
		return
	}

	saved, err := s.prefs.Save(c.Request.Context(), target.UserID, patch)
	if err != nil {
		s.writeError(c, "preferences save", err)
		return
	}
	c.JSON(200, saved)
}

// GET /preferences/:userId
func (s *Server) getPreferences(c *gin.Context) {
	pref, err := s.prefs.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.writeError(c, "preferences get", err)
		return
	}
	c.JSON(200, pref)
}
