package http

import (
	"net/http"

	"github.com/marchocode/clash-merger/internal/logger"
	"github.com/marchocode/clash-merger/internal/utils"
)

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	if _, err := utils.WriteJSON(w, buildInfo, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing build info")
	}
}
