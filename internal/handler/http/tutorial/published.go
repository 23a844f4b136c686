package tutorial

import (
	"net/http"

	"tutorial-hub/internal/handler/http/respond"
	tutUC "tutorial-hub/internal/usecase/tutorial"
)

type PublishedHandler struct{ Svc tutUC.Service }

// ServeHTTP 公開済みチュートリアル一覧取得
// @Summary      公開済みチュートリアル一覧取得
// @Description  公開状態のチュートリアルのみを取得します（?published=true のショートハンド）
// @Tags         tutorials
// @Produce      json
// @Success      200 {array} DTO "公開済みチュートリアル一覧"
// @Success      204 "該当なし"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /tutorials/published [get]
func (h PublishedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.FindByPublished(r.Context(), true)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if len(list) == 0 {
		respond.NoContent(w)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(list))
}
