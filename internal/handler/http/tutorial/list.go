package tutorial

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tutorial-hub/internal/domain/entity"
	"tutorial-hub/internal/handler/http/requestid"
	"tutorial-hub/internal/handler/http/respond"
	"tutorial-hub/internal/observability/logging"
	tutUC "tutorial-hub/internal/usecase/tutorial"
)

type ListHandler struct {
	Svc    tutUC.Service
	Logger *slog.Logger
}

// ServeHTTP チュートリアル一覧取得
// @Summary      チュートリアル一覧取得
// @Description  登録されているチュートリアルを取得します。title でタイトル部分一致、published で公開状態の絞り込みができます（併用不可）。
// @Tags         tutorials
// @Produce      json
// @Param        title     query  string  false  "タイトル部分一致フィルタ"
// @Param        published query  bool    false  "公開状態フィルタ"
// @Success      200 {array} DTO "チュートリアル一覧"
// @Success      204 "該当なし"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /tutorials [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logging.WithRequestID(ctx, logger)

	title := r.URL.Query().Get("title")
	publishedStr := r.URL.Query().Get("published")

	// title と published は排他（タイトル "published" の特別扱いは廃止し、
	// 明示的なパラメータに分離している）
	if title != "" && publishedStr != "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("invalid query: title and published cannot be combined"))
		return
	}

	var (
		list []*entity.Tutorial
		err  error
	)
	switch {
	case publishedStr != "":
		published, parseErr := strconv.ParseBool(publishedStr)
		if parseErr != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("invalid published value: must be true or false"))
			return
		}
		list, err = h.Svc.FindByPublished(ctx, published)
	case title != "":
		list, err = h.Svc.FindByTitleContaining(ctx, title)
	default:
		// title 未指定（または空文字）は全件取得
		list, err = h.Svc.List(ctx)
	}
	if err != nil {
		logger.Error("failed to list tutorials",
			"error", err.Error(),
			"title", title,
			"published", publishedStr)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	// 結果が空の場合は 204（ボディなし）
	if len(list) == 0 {
		respond.NoContent(w)
		return
	}

	logger.Info("tutorial list request",
		"title", title,
		"published", publishedStr,
		"returned_count", len(list),
		"duration_ms", time.Since(startTime).Milliseconds(),
		"request_id", requestid.FromContext(ctx))

	respond.JSON(w, http.StatusOK, toDTOs(list))
}
