package tutorial

import (
	"log/slog"
	"net/http"

	"tutorial-hub/internal/handler/http/respond"
	tutUC "tutorial-hub/internal/usecase/tutorial"
)

type DeleteAllHandler struct {
	Svc    tutUC.Service
	Logger *slog.Logger
}

// ServeHTTP チュートリアル全削除
// @Summary      チュートリアル全削除
// @Description  登録されているチュートリアルをすべて削除します
// @Tags         tutorials
// @Success      204 "No Content"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /tutorials [delete]
func (h DeleteAllHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n, err := h.Svc.DeleteAll(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("all tutorials deleted", slog.Int64("deleted_count", n))

	respond.NoContent(w)
}
