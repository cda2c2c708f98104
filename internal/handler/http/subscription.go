package http

import (
	"bytes"
	"net/http"

	"github.com/marchocode/clash-merger/internal/logger"
	"github.com/marchocode/clash-merger/internal/utils"
)

const (
	yamlContentType = "application/x-yaml"
	configFileName  = "config.yaml"
)

// getSubscription renders the merged configuration into memory and sends it
// as config.yaml. Nothing is written to w until the whole document is ready.
func (h *Handler) getSubscription(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var buf bytes.Buffer
	if err := h.services.ConverterService.Convert(r.Context(), &buf); err != nil {
		log.Err(err).Msg("error converting subscription")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	if _, err := utils.WriteAttachment(w, yamlContentType, configFileName, buf.Bytes()); err != nil {
		log.Err(err).Msg("error writing subscription response")
	}
}
