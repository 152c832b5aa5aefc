package model

import (
	converrors "vscode2helix/errors"
)

type ErrorResponse struct {
	RequestID string          `json:"request_id,omitempty"`
	Error     string          `json:"error"`
	Kind      converrors.Kind `json:"kind"`
}

// ConvertMessage is the reply to one document sent over the websocket.
type ConvertMessage struct {
	RequestID string          `json:"request_id"`
	OK        bool            `json:"ok"`
	Name      string          `json:"name,omitempty"`
	Theme     string          `json:"theme,omitempty"`
	Keys      int             `json:"keys,omitempty"`
	Error     string          `json:"error,omitempty"`
	Kind      converrors.Kind `json:"kind,omitempty"`
}

type Health struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Connections int    `json:"connections"`
}
