//go:build unit

package page_test

import (
	"context"
	"net/http"
	"testing"

	"transferpoints/internal/handler/page"
	"transferpoints/internal/pkg/errs"
	"transferpoints/internal/usecase/queries"
	"transferpoints/tests/common/builder"
	"transferpoints/tests/common/httptest"
	queriesmock "transferpoints/tests/mock/queries"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMatrixHandler_Get(t *testing.T) {
	t.Run("renders resolved cells", func(t *testing.T) {
		c := builder.NewExampleCatalogBuilder().
			WithRelationship("chase", "hyatt", 1, 1).
			MustBuild()
		view, err := queries.NewMatrixQueries(&builder.StaticStore{Catalog: c}).Get(context.Background())
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockMatrixQueries(ctrl)
		q.EXPECT().Get(gomock.Any()).Return(view, nil).Times(1)

		router := httptest.NewEngine(t)
		router.GET("/matrix", page.NewMatrixHandler(q).Get)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/matrix", nil)
		httptest.AssertHTMLResponse(t, rec, http.StatusOK,
			`<th scope="col" id="col-amex">Amex Membership Rewards</th>`,
			`<tr id="row-delta">`,
			`<td class="cell-bonus"><a href="/bonuses/b1" title="Base ">1 : 1.3</a></td>`,
			`<td class="cell-base">1 : 1</td>`,
			`<td class="cell-none">—</td>`,
		)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockMatrixQueries(ctrl)
		q.EXPECT().Get(gomock.Any()).Return(nil, errs.ErrCatalogUnavailable).Times(1)

		router := httptest.NewEngine(t)
		router.GET("/matrix", page.NewMatrixHandler(q).Get)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/matrix", nil)
		httptest.AssertErrorPage(t, rec, http.StatusServiceUnavailable, "")
	})
}
