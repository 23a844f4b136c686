package tutorial

import (
	"encoding/json"
	"errors"
	"net/http"

	"tutorial-hub/internal/domain/entity"
	"tutorial-hub/internal/handler/http/pathutil"
	"tutorial-hub/internal/handler/http/respond"
	tutUC "tutorial-hub/internal/usecase/tutorial"
)

type UpdateHandler struct{ Svc tutUC.Service }

// ServeHTTP チュートリアル更新
// @Summary      チュートリアル更新
// @Description  既存のチュートリアルを更新します。指定されたフィールドのみ更新されます。
// @Tags         tutorials
// @Accept       json
// @Produce      json
// @Param        id path int true "チュートリアルID"
// @Param        tutorial body object true "更新するチュートリアル情報"
// @Success      200 {object} DTO "更新後のチュートリアル"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - tutorial not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /tutorials/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/tutorials/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Published   *bool   `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.Svc.Update(r.Context(), tutUC.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Published:   req.Published,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, tutUC.ErrTutorialNotFound) {
			code = http.StatusNotFound
		} else if !errors.Is(err, tutUC.ErrInvalidTutorialID) && !isValidationError(err) {
			code = http.StatusInternalServerError
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated))
}

// isValidationError reports whether err carries an entity.ValidationError.
func isValidationError(err error) bool {
	var vErr *entity.ValidationError
	return errors.As(err, &vErr)
}
