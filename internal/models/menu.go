package models

import "encoding/json"

// MenuMessage is returned by GET /api/menu.
type MenuMessage struct {
	Message string `json:"message"`
}

// MenuItemAdded is returned by POST /api/menu. Item echoes the submitted body.
type MenuItemAdded struct {
	Message string          `json:"message"`
	Item    json.RawMessage `json:"item"`
}
