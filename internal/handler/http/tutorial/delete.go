package tutorial

import (
	"errors"
	"net/http"

	"tutorial-hub/internal/handler/http/pathutil"
	"tutorial-hub/internal/handler/http/respond"
	tutUC "tutorial-hub/internal/usecase/tutorial"
)

type DeleteHandler struct{ Svc tutUC.Service }

// ServeHTTP チュートリアル削除
// @Summary      チュートリアル削除
// @Description  チュートリアルを削除します
// @Tags         tutorials
// @Param        id path int true "チュートリアルID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /tutorials/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/tutorials/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, tutUC.ErrInvalidTutorialID) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.NoContent(w)
}
