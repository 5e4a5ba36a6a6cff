//go:build unit

package page_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"transferpoints/internal/handler/middleware"
	"transferpoints/internal/handler/page"
	"transferpoints/internal/pkg/errs"
	"transferpoints/internal/usecase/queries"
	"transferpoints/tests/common/builder"
	"transferpoints/tests/common/httptest"
	queriesmock "transferpoints/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BonusHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBonusQueries
	handler     *page.BonusHandler
}

func (s *BonusHandlerTestSuite) SetupTest() {
	s.router = httptest.NewEngine(s.T())
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBonusQueries(s.mockCtrl)
	s.handler = page.NewBonusHandler(s.mockQueries)

	s.router.GET("/bonuses", s.handler.List)
	s.router.GET("/bonuses/:id", s.handler.Get)
	s.router.GET("/history", s.handler.History)
}

func (s *BonusHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBonusHandlerSuite(t *testing.T) {
	suite.Run(t, new(BonusHandlerTestSuite))
}

func listView(filters queries.BonusFilters, items ...*queries.BonusView) *queries.BonusListView {
	return &queries.BonusListView{
		Filters: filters,
		Items:   items,
		Total:   2,
		Programs: []*queries.OptionView{
			{ID: "amex", Name: "Amex Membership Rewards"},
			{ID: "chase", Name: "Chase Ultimate Rewards"},
		},
		Partners: []*queries.OptionView{
			{ID: "delta", Name: "Delta SkyMiles"},
			{ID: "hyatt", Name: "World of Hyatt"},
		},
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *BonusHandlerTestSuite) TestList() {
	s.Run("success: renders cards for the bound filters", func() {
		filters := queries.BonusFilters{Query: "delta", Status: "live"}
		item := builder.NewBonusBuilder().WithTargeted(true).BuildView()
		item.ProgramName = "Amex Membership Rewards"
		item.PartnerName = "Delta SkyMiles"
		item.HasCountdown = true
		item.DaysRemaining = 3
		item.Urgent = true

		s.mockQueries.EXPECT().List(gomock.Any(), filters).
			Return(listView(filters, item), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bonuses?q=+delta+&status=live", nil)
		httptest.AssertHTMLResponse(s.T(), rec, http.StatusOK,
			"Showing 1 of 2 bonuses",
			"Amex Membership Rewards → Delta SkyMiles",
			"+30%",
			"1 : 1.3",
			"Jun 1, 2024 – Jun 30, 2024",
			"Targeted",
			`<span class="badge days-left urgent">3 days left</span>`,
			`target="_blank" rel="noopener noreferrer"`,
			`<option value="live" selected>Live</option>`,
			`value="delta"`,
			"Clear filters",
		)
	})

	s.Run("success: empty result shows the placeholder", func() {
		filters := queries.BonusFilters{ProgramID: "citi"}
		s.mockQueries.EXPECT().List(gomock.Any(), filters).
			Return(listView(filters), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bonuses?program=citi", nil)
		httptest.AssertHTMLResponse(s.T(), rec, http.StatusOK,
			"Showing 0 of 2 bonuses",
			"No bonuses match your filters.",
			`<a class="clear-filters" href="/bonuses">Clear filters</a>`,
		)
	})

	s.Run("success: open ended bonus shows TBD", func() {
		item := builder.NewBonusBuilder().WithoutEndDate().BuildView()
		s.mockQueries.EXPECT().List(gomock.Any(), queries.BonusFilters{}).
			Return(listView(queries.BonusFilters{}, item), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bonuses", nil)
		httptest.AssertHTMLResponse(s.T(), rec, http.StatusOK, "Jun 1, 2024 – TBD")
		httptest.AssertNotInHTML(s.T(), rec, "days left", "Clear filters")
	})

	s.Run("success: free text and status case are normalised", func() {
		testCases := []struct {
			name     string
			url      string
			expected queries.BonusFilters
		}{
			{name: "long query", url: "/bonuses?q=" + longQuery(), expected: queries.BonusFilters{Query: longQuery()}},
			{name: "long program id", url: "/bonuses?program=" + longQuery(), expected: queries.BonusFilters{ProgramID: longQuery()}},
			{name: "capitalised status", url: "/bonuses?status=Live", expected: queries.BonusFilters{Status: "live"}},
			{name: "padded all", url: "/bonuses?status=+ALL+", expected: queries.BonusFilters{Status: "all"}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().List(gomock.Any(), tc.expected).
					Return(listView(tc.expected), nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil)
				httptest.AssertHTMLResponse(s.T(), rec, http.StatusOK, "No bonuses match your filters.")
			})
		}
	})

	s.Run("error: 400 on invalid filters", func() {
		testCases := []struct {
			name string
			url  string
		}{
			{name: "unknown status", url: "/bonuses?status=paused"},
			{name: "unknown status on history", url: "/history?status=Paused"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil)
				httptest.AssertErrorPage(s.T(), rec, http.StatusBadRequest, "Invalid filter")
			})
		}
	})

	s.Run("error: maps query errors to statuses", func() {
		testCases := []struct {
			name           string
			queryErr       error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "catalog not loaded", queryErr: errs.ErrCatalogUnavailable, expectedStatus: http.StatusServiceUnavailable, expectedMsg: "not available"},
			{name: "wrapped catalog error", queryErr: errs.Wrap(errs.ErrCatalogUnavailable, "current"), expectedStatus: http.StatusServiceUnavailable, expectedMsg: "not available"},
			{name: "unexpected error", queryErr: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, tc.queryErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bonuses", nil)
				httptest.AssertErrorPage(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func longQuery() string {
	return strings.Repeat("a", 120)
}

// ================================================================================
// TestHistory
// ================================================================================

func (s *BonusHandlerTestSuite) TestHistory() {
	s.Run("success: status is pinned to expired", func() {
		want := queries.BonusFilters{PartnerID: "hyatt", Status: "expired"}
		item := builder.NewBonusBuilder().WithID("b2").WithProgram("chase").WithPartner("hyatt").AsExpired().BuildView()

		s.mockQueries.EXPECT().List(gomock.Any(), want).
			Return(listView(want, item), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history?partner=hyatt&status=live", nil)
		httptest.AssertHTMLResponse(s.T(), rec, http.StatusOK,
			"Expired bonuses",
			`action="/history"`,
			"chase → hyatt",
			`<a class="clear-filters" href="/history">Clear filters</a>`,
		)
		httptest.AssertNotInHTML(s.T(), rec, `name="status"`)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BonusHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		v := builder.NewBonusBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "b1").Return(v, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bonuses/b1", nil)
		httptest.AssertHTMLResponse(s.T(), rec, http.StatusOK,
			"amex to delta | TransferPoints",
			"Effective ratio",
			"1 : 1.3",
		)
	})

	s.Run("error: 404 when the bonus does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, errs.ErrBonusNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bonuses/nope", nil)
		httptest.AssertErrorPage(s.T(), rec, http.StatusNotFound, "Bonus not found")
	})
}
