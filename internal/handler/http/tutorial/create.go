package tutorial

import (
	"encoding/json"
	"errors"
	"net/http"

	"tutorial-hub/internal/handler/http/respond"
	tutUC "tutorial-hub/internal/usecase/tutorial"
)

type CreateHandler struct{ Svc tutUC.Service }

// ServeHTTP チュートリアル作成
// @Summary      チュートリアル作成
// @Description  新しいチュートリアルを作成します。published 未指定の場合は非公開で作成されます。
// @Tags         tutorials
// @Accept       json
// @Produce      json
// @Param        tutorial body object true "チュートリアル情報"
// @Success      201 {object} DTO "作成されたチュートリアル"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /tutorials [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Published   bool   `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Title == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("title is required"))
		return
	}

	created, err := h.Svc.Create(r.Context(), tutUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Published:   req.Published,
	})
	if err != nil {
		code := http.StatusBadRequest
		if !isValidationError(err) {
			code = http.StatusInternalServerError
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
