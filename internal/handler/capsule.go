package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/chronos-capsule/chronos/internal/crypto"
	"github.com/chronos-capsule/chronos/internal/model"
)

// ContentSHA256Header carries the hex SHA-256 of decrypted capsule content.
const ContentSHA256Header = "X-Content-SHA256"

// CapsuleHandler encrypts and decrypts capsule attachments
type CapsuleHandler struct {
	system         *crypto.SystemCipher
	maxUploadBytes int64
	concurrency    int
	logger         *zap.Logger
}

// NewCapsuleHandler creates a new CapsuleHandler. system may be nil, in which
// case only password capsules work.
func NewCapsuleHandler(system *crypto.SystemCipher, maxUploadBytes int64, concurrency int, logger *zap.Logger) *CapsuleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CapsuleHandler{
		system:         system,
		maxUploadBytes: maxUploadBytes,
		concurrency:    concurrency,
		logger:         logger,
	}
}

// Encrypt handles POST /capsules/encrypt
// @Summary      Encrypt capsule files
// @Description  Encrypts every "file" part of a multipart upload. With a password each file is sealed under its own salt and nonce; without one the system key is used.
// @Tags         capsules
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-User-ID  header    string  true   "Caller id"
// @Param        file       formData  file    true   "File to seal (repeatable)"
// @Param        password   formData  string  false  "Capsule password"
// @Success      200        {object}  model.CapsuleEncryptResponse
// @Failure      400        {object}  model.ErrorResponse
// @Failure      413        {object}  model.ErrorResponse
// @Router       /capsules/encrypt [post]
func (h *CapsuleHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if r.ContentLength > h.maxUploadBytes {
		writeServiceError(w, h.logger, "capsule-encrypt", &http.MaxBytesError{Limit: h.maxUploadBytes})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeServiceError(w, h.logger, "capsule-encrypt", asUploadError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		writeServiceError(w, h.logger, "capsule-encrypt", &crypto.ValidationError{Reason: "at least one file is required"})
		return
	}

	files := make([]*crypto.File, 0, len(headers))
	for _, fh := range headers {
		f, err := readUpload(fh)
		if err != nil {
			writeServiceError(w, h.logger, "capsule-encrypt", err)
			return
		}
		files = append(files, f)
	}

	password := r.FormValue("password")
	mode := "system"
	var envelopes []string
	var err error
	if password == "" {
		envelopes, err = h.system.EncryptFiles(r.Context(), files, h.concurrency)
	} else {
		mode = "password"
		envelopes, err = crypto.EncryptFilesWithPassword(r.Context(), files, password, h.concurrency)
	}
	if err != nil {
		writeServiceError(w, h.logger, "capsule-encrypt", err)
		return
	}

	resp := model.CapsuleEncryptResponse{Mode: mode, Envelopes: make([]model.CapsuleEnvelope, len(files))}
	for i, f := range files {
		resp.Envelopes[i] = model.CapsuleEnvelope{
			OriginalName: f.Metadata.OriginalName,
			MimeType:     f.Metadata.MimeType,
			SizeBytes:    f.Metadata.SizeBytes,
			Envelope:     envelopes[i],
		}
	}

	h.logger.Info("Capsule files sealed", zap.String("user_id", userID), zap.String("mode", mode), zap.Int("files", len(files)))
	writeJSON(w, http.StatusOK, resp)
}

// Decrypt handles POST /capsules/decrypt
// @Summary      Decrypt capsule file
// @Description  Opens a capsule envelope and returns the original bytes. The original name and MIME type come back in Content-Disposition and Content-Type, and the content hash in X-Content-SHA256.
// @Tags         capsules
// @Accept       json
// @Produce      octet-stream
// @Param        X-User-ID  header    string                       true  "Caller id"
// @Param        request    body      model.CapsuleDecryptRequest  true  "Envelope and optional password"
// @Success      200        {file}    binary
// @Failure      401        {object}  model.ErrorResponse
// @Router       /capsules/decrypt [post]
func (h *CapsuleHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.CapsuleDecryptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, h.logger, "capsule-decrypt", err)
		return
	}

	var f *crypto.File
	var err error
	if req.Password == "" {
		f, err = h.system.DecryptFile(req.Envelope)
	} else {
		f, err = crypto.DecryptFileWithPassword(req.Envelope, req.Password)
	}
	if err != nil {
		writeServiceError(w, h.logger, "capsule-decrypt", err)
		return
	}

	sum := sha256.Sum256(f.Content)
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": f.Metadata.OriginalName})
	contentType := f.Metadata.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Content)))
	w.Header().Set(ContentSHA256Header, hex.EncodeToString(sum[:]))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(f.Content); err != nil {
		h.logger.Warn("Failed to write capsule content", zap.Error(err))
		return
	}

	h.logger.Info("Capsule file opened", zap.String("user_id", userID), zap.Int64("size_bytes", f.Metadata.SizeBytes))
}

func readUpload(fh *multipart.FileHeader) (*crypto.File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %q: %w", fh.Filename, err)
	}

	// Browsers send octet-stream for unknown types; let NewFile sniff instead.
	contentType := fh.Header.Get("Content-Type")
	if contentType == "application/octet-stream" {
		contentType = ""
	}
	return crypto.NewFile(fh.Filename, contentType, content), nil
}

func asUploadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return &crypto.ValidationError{Reason: "invalid multipart body: " + err.Error()}
}
