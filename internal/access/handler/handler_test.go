package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"surveygate/internal/access/handler/mocks"
	"surveygate/internal/access/models"
	id "surveygate/pkg/domain"
	dErrors "surveygate/pkg/domain-errors"
	"surveygate/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	s.router = chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) request(path string) *http.Request {
	return testutil.WithUserID(testutil.NewJSONRequest(s.T(), http.MethodGet, path, nil), "42")
}

func (s *HandlerSuite) TestHandleAccess() {
	s.Run("allowed", func() {
		s.service.EXPECT().CheckFill(gomock.Any(), id.UserID(42), id.SurveyID(7)).Return(models.Allow(), nil)

		rr := testutil.DoRequest(s.router, s.request("/surveys/7/access"))
		s.Equal(http.StatusOK, rr.Code)
		s.JSONEq(`{"survey_id":7,"allowed":true,"reason":"allowed","missing_packages":[],"failed_checks":[]}`, rr.Body.String())
	})

	s.Run("denial is a normal response", func() {
		d := models.Deny(models.ReasonProfileIncomplete)
		d.MissingPackages = []string{"basic"}
		s.service.EXPECT().CheckFill(gomock.Any(), id.UserID(42), id.SurveyID(7)).Return(d, nil)

		rr := testutil.DoRequest(s.router, s.request("/surveys/7/access"))
		s.Equal(http.StatusOK, rr.Code)
		body := testutil.UnmarshalResponse[AccessResponse](s.T(), rr)
		s.False(body.Allowed)
		s.Equal(models.ReasonProfileIncomplete, body.Reason)
		s.Equal([]string{"basic"}, body.MissingPackages)
	})

	s.Run("inactive survey", func() {
		s.service.EXPECT().CheckFill(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "survey not found"))

		rr := testutil.DoRequest(s.router, s.request("/surveys/7/access"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	s.Run("unauthenticated", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/surveys/7/access", nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, string(dErrors.CodeUnauthorized))
	})
}
