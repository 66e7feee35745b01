package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"predict-web/internal/metrics"
	"predict-web/internal/storage"
	"predict-web/internal/web"
)

// Predictor is the seam between the HTTP layer and the model. The production
// implementation is model.Server; tests plug in deterministic stubs.
type Predictor interface {
	Predict(img image.Image) (int64, error)
}

// ClassNamer is optionally implemented by predictors that can attach a label
// to a class index.
type ClassNamer interface {
	ClassName(idx int64) string
}

type Handler struct {
	predictor       Predictor
	renderer        *web.Renderer
	archive         *storage.Archive
	maxUploadMemory int64
}

func NewHandler(predictor Predictor, renderer *web.Renderer, archive *storage.Archive, maxUploadMemory int64) *Handler {
	if maxUploadMemory <= 0 {
		maxUploadMemory = 32 << 20
	}
	return &Handler{
		predictor:       predictor,
		renderer:        renderer,
		archive:         archive,
		maxUploadMemory: maxUploadMemory,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// Index serves the upload form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.renderPage(w, web.Page{})
}

// Predict handles POST /prediction. Every processing failure renders the
// same error page with status 200; nothing at this boundary surfaces as an
// HTTP error status.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// The memory cap is a spill threshold, not a size limit: bigger uploads
	// buffer through temp files instead of being rejected.
	if err := r.ParseMultipartForm(h.maxUploadMemory); err != nil {
		metrics.CountRequest(metrics.OutcomeMissingFile)
		h.renderPage(w, web.ErrorPage)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		metrics.CountRequest(metrics.OutcomeMissingFile)
		h.renderPage(w, web.ErrorPage)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		metrics.CountRequest(metrics.OutcomeInvalidImage)
		h.renderPage(w, web.ErrorPage)
		return
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		metrics.CountRequest(metrics.OutcomeInvalidImage)
		h.renderPage(w, web.ErrorPage)
		return
	}

	log.Printf("Received file: %s, format: %s, size: %d bytes", header.Filename, format, len(data))

	if path, err := h.archive.Save(header.Filename, data); err != nil {
		log.Printf("Archive error for %s: %v", header.Filename, err)
	} else if path != "" {
		log.Printf("Archived upload to %s", path)
	}

	value, err := h.predictor.Predict(img)
	if err != nil {
		log.Printf("Prediction error: %v", err)
		metrics.CountRequest(metrics.OutcomePredictError)
		h.renderPage(w, web.ErrorPage)
		return
	}

	var label string
	if namer, ok := h.predictor.(ClassNamer); ok {
		label = namer.ClassName(value)
	}

	metrics.CountRequest(metrics.OutcomeOK)
	h.renderPage(w, web.ResultPage(value, label))
}

func (h *Handler) renderPage(w http.ResponseWriter, page web.Page) {
	var buf bytes.Buffer
	if err := h.renderer.RenderPrediction(&buf, page); err != nil {
		log.Printf("Render error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
