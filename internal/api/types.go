// Package api defines the request and response types of the HTTP bridge.
package api

import "time"

// CropRect mirrors sazan.Rect on the wire.
type CropRect struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// GridSpec mirrors sazan.Grid on the wire.
type GridSpec struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// ImagePayload carries N equally sized images as one flat RGBA buffer,
// base64-encoded, the way a host embedding hands pixel data over.
type ImagePayload struct {
	ImagesRGBA string `json:"images_rgba"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Count      int    `json:"count"`
}

// CropGridRequest is the body of POST /api/v1/crop-grid.
type CropGridRequest struct {
	Images ImagePayload `json:"images"`
	Crop   CropRect     `json:"crop"`
	Grid   GridSpec     `json:"grid"`
}

// CropSplitRequest is the body of POST /api/v1/crop-split.
type CropSplitRequest struct {
	Images   ImagePayload `json:"images"`
	TileSize struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"tile_size"`
	Offset struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"offset"`
	Grid   GridSpec `json:"grid"`
	Prefix string   `json:"prefix"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    *int      `json:"uptime,omitempty"`
	Version   *string   `json:"version,omitempty"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error     string                  `json:"error"`
	Message   string                  `json:"message"`
	RequestId *string                 `json:"request_id,omitempty"`
	Details   *map[string]interface{} `json:"details,omitempty"`
}

// ValidationError describes a single rejected field.
type ValidationError struct {
	Code    *string `json:"code,omitempty"`
	Field   string  `json:"field"`
	Message string  `json:"message"`
}

// ValidationErrorResponse is returned for structurally invalid requests.
type ValidationErrorResponse struct {
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	RequestId        *string           `json:"request_id,omitempty"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}
