package http

import (
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /register
func (s *Server) register(c *gin.Context) {
	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := s.accounts.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		s.writeError(c, "register", err)
		return
	}

	c.JSON(200, gin.H{"message": "Registered successfully", "userId": user.ID})
}

// POST /login
func (s *Server) login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := s.accounts.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		s.writeError(c, "login", err)
		return
	}

	c.JSON(200, gin.H{"message": "Login successful", "userId": user.ID})
}
