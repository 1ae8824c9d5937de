package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"hotelier/internal/app"
	"hotelier/internal/domain"
)

type Handlers struct {
	Hotels *app.HotelService
	Images *app.ImageService

	validate *validator.Validate
}

func NewHandlers(hotels *app.HotelService, images *app.ImageService) *Handlers {
	return &Handlers{Hotels: hotels, Images: images, validate: newValidator()}
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/api", func(r chi.Router) {
		r.Post("/hotel", h.createHotel)
		r.Get("/hotel/{hotelId}", h.getHotel)
		r.Put("/hotel/{hotelId}", h.updateHotel)
		r.Post("/images", h.uploadImages)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

type errBody struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// decodeAndValidate reads one hotel payload, translating decode and
// validation failures into the 400 bodies the API contract promises.
// Returns nil when a response has already been written.
func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request) *hotelPayload {
	var p hotelPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "amenities" {
			writeJSON(w, http.StatusBadRequest, errBody{Error: "Amenities must be an array"})
			return nil
		}
		writeJSON(w, http.StatusBadRequest, errBody{Error: "Invalid request body"})
		return nil
	}
	if err := h.validate.Struct(&p); err != nil {
		fields, hostIncomplete := missingFields(err)
		if len(fields) > 0 {
			writeJSON(w, http.StatusBadRequest, errBody{Error: "Missing required fields", Fields: fields})
			return nil
		}
		if hostIncomplete {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":    "Host information incomplete",
				"required": []string{"name", "email"},
			})
			return nil
		}
		writeJSON(w, http.StatusBadRequest, errBody{Error: "Invalid request body"})
		return nil
	}
	return &p
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	p := h.decodeAndValidate(w, r)
	if p == nil {
		return
	}
	hotel, err := h.Hotels.CreateHotel(r.Context(), p.toHotel())
	if err != nil {
		log.Error().Err(err).Msg("create hotel failed")
		writeJSON(w, http.StatusInternalServerError, errBody{Error: "Failed to create hotel"})
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "hotelId")
	hotel, err := h.Hotels.GetHotel(r.Context(), id)
	if err != nil {
		// the expected miss path; not logged as exceptional
		writeJSON(w, http.StatusNotFound, errBody{Error: "Hotel not found"})
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	p := h.decodeAndValidate(w, r)
	if p == nil {
		return
	}
	id := chi.URLParam(r, "hotelId")
	hotel, err := h.Hotels.UpdateHotel(r.Context(), id, p.toPatch())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errBody{Error: "Hotel not found"})
			return
		}
		log.Error().Err(err).Str("id", id).Msg("update hotel failed")
		writeJSON(w, http.StatusInternalServerError, errBody{Error: "Failed to update hotel"})
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

const maxUploadMemory = 32 << 20

func (h *Handlers) uploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, errBody{Error: "No images provided"})
		return
	}
	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, errBody{Error: "No images provided"})
		return
	}
	hotelID := r.FormValue("hotelId")
	if hotelID == "" {
		writeJSON(w, http.StatusBadRequest, errBody{Error: "Hotel ID is required"})
		return
	}

	uploads := make([]app.Upload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errBody{Error: "Failed to upload images"})
			return
		}
		defer f.Close()
		uploads = append(uploads, app.Upload{Name: fh.Filename, Content: f})
	}

	urls, err := h.Images.UploadImages(r.Context(), hotelID, uploads)
	if err != nil {
		var badFmt *domain.InvalidFormatError
		switch {
		case errors.As(err, &badFmt):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": fmt.Sprintf(
					"Invalid file format(s) detected. Only JPEG, PNG, GIF, BMP, TIFF, WebP, and HEIF formats are allowed. Invalid files: %s",
					strings.Join(badFmt.Rejected, ", ")),
				"allowedFormats": badFmt.Allowed,
			})
		case errors.Is(err, domain.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errBody{Error: "Hotel not found"})
		default:
			log.Error().Err(err).Str("id", hotelID).Msg("upload images failed")
			writeJSON(w, http.StatusInternalServerError, errBody{Error: "Failed to upload images"})
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"imageUrls": urls})
}
