package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fswbarber/booking-api/internal/guard"
	"github.com/fswbarber/booking-api/internal/httperr"
	"github.com/fswbarber/booking-api/internal/images"
	"github.com/fswbarber/booking-api/internal/storage"
)

const maxUploadBytes = 5 << 20 // 5 MiB

type UploadHandler struct {
	resolver *guard.Resolver
	uploader storage.Uploader
}

func NewUploadHandler(resolver *guard.Resolver, uploader storage.Uploader) *UploadHandler {
	return &UploadHandler{
		resolver: resolver,
		uploader: uploader,
	}
}

// ======================================================
// POST /api/admin/uploads (multipart, campo "file")
// ======================================================
// A URL devolvida é o que vai em image_url da barbearia ou image do barbeiro.
func (h *UploadHandler) Upload(c *gin.Context) {
	ident, ok := resolveIdentity(c, h.resolver)
	if !ok {
		return
	}

	if !ident.IsStaff() {
		httperr.Forbidden(c, "staff_only", "Não autorizado.")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo não enviado (campo 'file').")
		return
	}

	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Imagem acima de 5MB.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao processar imagem.")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao processar imagem.")
		return
	}

	encoded, err := images.ToWebP(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida ou formato não suportado.")
		return
	}

	key := fmt.Sprintf("uploads/%s.webp", uuid.NewString())

	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao enviar imagem.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
