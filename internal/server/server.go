package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/disintegration/imaging"

	"github.com/h1romas4/sazan-imgkit/internal/api"
	"github.com/h1romas4/sazan-imgkit/pkg/sazan"
)

// Server implements the HTTP bridge around the composition core. It is
// the host-embedding entry point: callers hand over flat RGBA buffers
// plus claimed dimensions and get the finished PNG or ZIP back.
type Server struct {
	startTime time.Time
	version   string
}

// NewServer creates a new server instance
func NewServer(version string) *Server {
	return &Server{
		startTime: time.Now(),
		version:   version,
	}
}

// GetHealth implements the health check endpoint
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	uptime := int(time.Since(s.startTime).Seconds())

	response := api.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Uptime:    &uptime,
		Version:   &s.version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error encoding health response: %v", err)
	}
}

// CropGrid implements the montage endpoint: crop every uploaded image
// with the same rectangle and compose the crops into one PNG.
func (s *Server) CropGrid(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req api.CropGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON",
			"Invalid JSON in request body", &requestID, nil)
		return
	}

	if err := validateGrid(req.Grid); err != nil {
		s.writeValidationErrorResponse(w, err.Error(), &requestID)
		return
	}
	if req.Crop.Width <= 0 || req.Crop.Height <= 0 || req.Crop.X < 0 || req.Crop.Y < 0 {
		s.writeValidationErrorResponse(w, "crop width/height must be positive, x/y non-negative", &requestID)
		return
	}

	images, err := decodeImagePayload(req.Images)
	if err != nil {
		s.handleCoreError(w, err, &requestID)
		return
	}

	result, err := sazan.ComposeGrid(images, sazan.Rect{
		Width:  req.Crop.Width,
		Height: req.Crop.Height,
		X:      req.Crop.X,
		Y:      req.Crop.Y,
	}, sazan.Grid{Cols: req.Grid.Cols, Rows: req.Grid.Rows})
	if err != nil {
		s.handleCoreError(w, err, &requestID)
		return
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, result, imaging.PNG); err != nil {
		s.writeErrorResponse(w, http.StatusInternalServerError, "ENCODE_ERROR",
			"Failed to encode result image", &requestID, nil)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Request-ID", requestID)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// CropSplit implements the tiling endpoint: cut every uploaded image
// into a grid of fixed-size tiles and return them as one ZIP archive.
func (s *Server) CropSplit(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req api.CropSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON",
			"Invalid JSON in request body", &requestID, nil)
		return
	}

	if err := validateGrid(req.Grid); err != nil {
		s.writeValidationErrorResponse(w, err.Error(), &requestID)
		return
	}
	if req.TileSize.Width <= 0 || req.TileSize.Height <= 0 {
		s.writeValidationErrorResponse(w, "tile_size width/height must be positive", &requestID)
		return
	}
	if req.Offset.X < 0 || req.Offset.Y < 0 {
		s.writeValidationErrorResponse(w, "offset x/y must be non-negative", &requestID)
		return
	}
	if req.Prefix == "" {
		s.writeValidationErrorResponse(w, "prefix is required", &requestID)
		return
	}

	images, err := decodeImagePayload(req.Images)
	if err != nil {
		s.handleCoreError(w, err, &requestID)
		return
	}

	archive, err := sazan.TileToArchive(images,
		req.TileSize.Width, req.TileSize.Height,
		req.Offset.X, req.Offset.Y,
		sazan.Grid{Cols: req.Grid.Cols, Rows: req.Grid.Rows},
		req.Prefix)
	if err != nil {
		s.handleCoreError(w, err, &requestID)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("X-Request-ID", requestID)
	w.Header().Set("Content-Length", strconv.Itoa(len(archive)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(archive); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// decodeImagePayload turns the base64 flat RGBA payload into images.
// Buffer-length validation happens here, at the bridge boundary.
func decodeImagePayload(p api.ImagePayload) ([]image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(p.ImagesRGBA)
	if err != nil {
		return nil, fmt.Errorf("images_rgba is not valid base64: %w", err)
	}
	return sazan.SplitRGBABytes(raw, p.Width, p.Height, p.Count)
}

// validateGrid checks the grid spec shared by both endpoints.
func validateGrid(g api.GridSpec) error {
	if g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("grid cols and rows must be positive")
	}
	return nil
}

// handleCoreError maps core error kinds onto HTTP responses.
func (s *Server) handleCoreError(w http.ResponseWriter, err error, requestID *string) {
	var boundsErr *sazan.BoundsError
	if errors.As(err, &boundsErr) {
		s.writeErrorResponse(w, http.StatusBadRequest, "BOUNDS_ERROR",
			boundsErr.Error(), requestID, nil)
		return
	}

	var bufErr *sazan.BufferLengthError
	if errors.As(err, &bufErr) {
		s.writeErrorResponse(w, http.StatusBadRequest, "BUFFER_LENGTH_ERROR",
			bufErr.Error(), requestID, nil)
		return
	}

	var mismatchErr *sazan.SizeMismatchError
	if errors.As(err, &mismatchErr) {
		s.writeErrorResponse(w, http.StatusInternalServerError, "SIZE_MISMATCH",
			mismatchErr.Error(), requestID, nil)
		return
	}

	s.writeErrorResponse(w, http.StatusBadRequest, "INVALID_REQUEST",
		err.Error(), requestID, nil)
}

// writeErrorResponse writes a standard error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string, requestID *string, details map[string]interface{}) {
	response := api.ErrorResponse{
		Error:     errorCode,
		Message:   message,
		RequestId: requestID,
	}

	if details != nil {
		response.Details = &details
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// writeValidationErrorResponse writes a validation error response
func (s *Server) writeValidationErrorResponse(w http.ResponseWriter, message string, requestID *string) {
	response := api.ValidationErrorResponse{
		Error:     "VALIDATION_ERROR",
		Message:   message,
		RequestId: requestID,
		ValidationErrors: []api.ValidationError{
			{
				Field:   "request",
				Message: message,
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(response)
}

// generateRequestID generates a unique request ID
func generateRequestID() string {
	return fmt.Sprintf("req_%d", time.Now().UnixNano())
}
