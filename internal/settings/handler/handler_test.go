package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"surveygate/internal/settings/handler/mocks"
	"surveygate/internal/settings/models"
	dErrors "surveygate/pkg/domain-errors"
	pstrings "surveygate/pkg/platform/strings"
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
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterAdmin(s.router)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) TestGetOptions() {
	s.service.EXPECT().OptionLists(gomock.Any()).Return(models.OptionLists{Cities: []string{"Erbil"}}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/profile-options", nil))
	s.Equal(http.StatusOK, rr.Code)
	body := testutil.UnmarshalResponse[models.OptionLists](s.T(), rr)
	s.Equal([]string{"Erbil"}, body.Cities)
}

func (s *HandlerSuite) TestUpdateOptions() {
	s.Run("accepts form style comma strings", func() {
		s.service.EXPECT().UpdateOptionLists(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in models.UpdateInput) (models.OptionLists, error) {
				s.Equal(pstrings.CommaList{"Erbil", " Duhok"}, in.Cities)
				return in.Normalize(), nil
			})

		req := testutil.NewRequestWithBody(s.T(), http.MethodPut, "/admin/profile-options", `{"cities":"Erbil, Duhok"}`)
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusOK, rr.Code)
		s.JSONEq(`{"degrees":[],"cities":["Erbil","Duhok"],"family_status":[],"work_types":[]}`, rr.Body.String())
	})

	s.Run("rejects unknown fields", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPut, "/admin/profile-options", `{"genders":"M"}`)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("service failure", func() {
		s.service.EXPECT().UpdateOptionLists(gomock.Any(), gomock.Any()).
			Return(models.OptionLists{}, dErrors.Wrap(errors.New("db"), dErrors.CodeInternal, "failed to save profile options"))

		req := testutil.NewRequestWithBody(s.T(), http.MethodPut, "/admin/profile-options", `{}`)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, string(dErrors.CodeInternal))
	})
}
