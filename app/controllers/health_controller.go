package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/sweetshop/pkg/response"
)

// Health is the liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"status": "OK"})
}
