package controllers

import (
	"net/http"

	"github.com/angelmondragon/orderchat-backend/api/responses"
	menusvc "github.com/angelmondragon/orderchat-backend/internal/menu"
)

// MenuList exposes the static menu feed.
func MenuList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, menusvc.Items())
	}
}
