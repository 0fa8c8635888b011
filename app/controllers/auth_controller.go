package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/sweetshop/app/services"
	"github.com/shashiranjanraj/sweetshop/pkg/bind"
	"github.com/shashiranjanraj/sweetshop/pkg/response"
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

// AuthController exposes registration and login.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := bind.JSON(r, &body); err != nil {
		response.Err(w, err)
		return
	}

	user, err := c.auth.Register(body.Name, body.Email, body.Password)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Created(w, map[string]interface{}{
		"user":    user,
		"message": "User registered successfully",
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := bind.JSON(r, &body); err != nil {
		response.Err(w, err)
		return
	}

	user, token, err := c.auth.Login(body.Email, body.Password)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"user":    user,
		"token":   token,
		"message": "Login successful",
	})
}
