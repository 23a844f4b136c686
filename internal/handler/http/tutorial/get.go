package tutorial

import (
	"errors"
	"net/http"

	"tutorial-hub/internal/handler/http/pathutil"
	"tutorial-hub/internal/handler/http/respond"
	tutUC "tutorial-hub/internal/usecase/tutorial"
)

type GetHandler struct{ Svc tutUC.Service }

// ServeHTTP チュートリアル詳細取得
// @Summary      チュートリアル詳細取得
// @Description  指定されたIDのチュートリアルを取得します
// @Tags         tutorials
// @Produce      json
// @Param        id path int true "チュートリアルID"
// @Success      200 {object} DTO "チュートリアル詳細"
// @Failure      400 {string} string "Bad request - invalid tutorial ID"
// @Failure      404 {string} string "Not found - tutorial not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /tutorials/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/tutorials/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	tut, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, tutUC.ErrInvalidTutorialID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, tutUC.ErrTutorialNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(tut))
}
