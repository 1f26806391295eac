package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockCategoryServiceInterface
	handler     *CategoryHandler
	userID      uuid.UUID
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (s *CategoryHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockService)
	s.userID = uuid.New()
}

func (s *CategoryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *CategoryHandlerTestSuite) TestList_TypeFilter() {
	s.mockService.EXPECT().
		List(s.userID, "expense").
		Return([]dto.CategoryResponse{{ID: uuid.New(), Name: "Food", Type: "expense"}}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/categories?type=expense", "")

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestCreate_Success() {
	body := `{"name":"Pets","type":"expense","color":"#aabbcc","icon":"paw"}`

	s.mockService.EXPECT().
		Create(s.userID, gomock.Any()).
		Return(&dto.CategoryResponse{ID: uuid.New(), Name: "Pets", Type: "expense", Color: "#aabbcc", Icon: "paw"}, nil)

	c, rec := s.newContext(http.MethodPost, "/api/categories", body)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestCreate_Duplicate() {
	body := `{"name":"Food","type":"expense"}`

	s.mockService.EXPECT().
		Create(s.userID, gomock.Any()).
		Return(nil, services.ErrDuplicateCategory)

	c, rec := s.newContext(http.MethodPost, "/api/categories", body)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusConflict, rec.Code)

	var errResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errResp))
	s.Equal("CATEGORY_002", errResp.Code)
}

func (s *CategoryHandlerTestSuite) TestCreate_RejectsInvalidType() {
	body := `{"name":"Pets","type":"transfer"}`

	c, _ := s.newContext(http.MethodPost, "/api/categories", body)

	s.Error(s.handler.Create(c))
}

func (s *CategoryHandlerTestSuite) TestGet_NotFound() {
	categoryID := uuid.New()

	s.mockService.EXPECT().
		Get(s.userID, categoryID).
		Return(nil, services.ErrCategoryNotFound)

	c, rec := s.newContext(http.MethodGet, "/api/categories/"+categoryID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestUpdate_Success() {
	categoryID := uuid.New()
	body := `{"name":"Dining"}`

	s.mockService.EXPECT().
		Update(s.userID, categoryID, gomock.Any()).
		Return(&dto.CategoryResponse{ID: categoryID, Name: "Dining", Type: "expense"}, nil)

	c, rec := s.newContext(http.MethodPut, "/api/categories/"+categoryID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestDelete_InUse() {
	categoryID := uuid.New()

	s.mockService.EXPECT().
		Delete(s.userID, categoryID).
		Return(services.ErrCategoryInUse)

	c, rec := s.newContext(http.MethodDelete, "/api/categories/"+categoryID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var errResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errResp))
	s.Equal("CATEGORY_003", errResp.Code)
}

func (s *CategoryHandlerTestSuite) TestDelete_Success() {
	categoryID := uuid.New()

	s.mockService.EXPECT().
		Delete(s.userID, categoryID).
		Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/api/categories/"+categoryID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestStats() {
	s.mockService.EXPECT().
		Stats(s.userID, gomock.Any(), gomock.Any()).
		Return([]dto.CategoryStatsItem{
			{ID: uuid.New(), Name: "Food", Type: "expense", Total: "100", TransactionCount: 2},
		}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/categories/stats", "")

	s.NoError(s.handler.Stats(c))
	s.Equal(http.StatusOK, rec.Code)
}
