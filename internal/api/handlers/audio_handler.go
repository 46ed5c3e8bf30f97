package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psiconervio/agente-ia/internal/services"
	"github.com/psiconervio/agente-ia/internal/utils"
)

// maxAudioBytes caps uploaded recordings.
const maxAudioBytes = 10 << 20

type AudioHandler struct {
	svc services.InteractionService
}

func NewAudioHandler(svc services.InteractionService) *AudioHandler {
	return &AudioHandler{svc: svc}
}

func (h *AudioHandler) Transcribe(c *gin.Context) {
	const op = "AudioHandler.Transcribe"

	fh, err := c.FormFile("audio")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'audio'", err))
		return
	}
	if fh.Size <= 0 || fh.Size > maxAudioBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "audio file too large (max 10MB)", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to read upload", err))
		return
	}

	out, err := h.svc.TranscribeAndAsk(c.Request.Context(), data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}
