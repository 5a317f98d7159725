package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Leerling-hub/Booking/dto"
	"github.com/Leerling-hub/Booking/services"
	"github.com/Leerling-hub/Booking/validators"
	"github.com/gin-gonic/gin"
)

const msgCredentialsRequired = "Username and password are required"

// AuthController handles POST /login
type AuthController struct {
	service services.AuthService
}

func NewAuthController(service services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login checks the credentials and answers {"token": "..."}
func (ctrl *AuthController) Login(c *gin.Context) {
	// 1. Read and validate the body
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgCredentialsRequired})
		return
	}

	body, err := validators.DecodeObject(raw)
	if err != nil || len(validators.MissingFields(body, []string{"username", "password"})) > 0 {
		log.Printf("Validation error: %s", msgCredentialsRequired)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgCredentialsRequired})
		return
	}

	var req dto.LoginRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		// {"username": 42} is truthy but not a string
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgCredentialsRequired})
		return
	}

	// 2. The service compares the password and issues the JWT
	response, err := ctrl.service.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
