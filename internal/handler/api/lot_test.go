//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"parkhub/internal/domain/user"
	"parkhub/internal/handler/api"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/infra"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"
	"parkhub/tests/common/builder"
	"parkhub/tests/common/httptest"
	"parkhub/tests/common/testutil"
	commandsmock "parkhub/tests/mock/commands"
	queriesmock "parkhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCapacityCommands
	mockQueries  *queriesmock.MockLotQueries
	handler      *api.LotHandler
}

func (s *LotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCapacityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLotQueries(s.mockCtrl)
	s.handler = api.NewLotHandler(s.mockCommands, s.mockQueries)

	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/admin/lots", adminMiddleware, s.handler.Create)
	s.router.PATCH("/admin/lots/:id", adminMiddleware, s.handler.Update)
	s.router.POST("/admin/lots/:id/resize", adminMiddleware, s.handler.Resize)
	s.router.DELETE("/admin/lots/:id", adminMiddleware, s.handler.Delete)
	s.router.GET("/lots", s.handler.List)
	s.router.GET("/lots/:id", s.handler.Get)
	s.router.GET("/lots/:id/spots", s.handler.ListSpots)
}

func (s *LotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLotHandlerSuite(t *testing.T) {
	suite.Run(t, new(LotHandlerTestSuite))
}

func (s *LotHandlerTestSuite) TestCreate() {
	url := "/admin/lots"

	lot := builder.NewLotBuilder()
	reqBody := lot.BuildCreateRequestDTO()
	returnView := lot.BuildView()

	s.Run("success: returns 201 Created with the lot", func() {
		s.mockCommands.EXPECT().CreateLot(gomock.Any(), reqBody).
			Return(lot.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), lot.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.LotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(lot.ID, response.ID)
		s.Equal(lot.Name, response.Name)
		s.Equal(lot.SpotCount, response.SpotCount)
	})

	s.Run("error: 400 Bad Request when name is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateLot(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *LotHandlerTestSuite) TestUpdate() {
	lot := builder.NewLotBuilder()
	url := "/admin/lots/" + lot.ID.String()

	reqBody := lot.BuildUpdateRequestDTO()
	returnView := lot.BuildView()

	s.Run("success: returns 200 OK with the updated lot", func() {
		s.mockCommands.EXPECT().UpdateLot(gomock.Any(), lot.ID, reqBody).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), lot.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.LotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(lot.ID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/lots/invalid-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "lot not found",
				commandsError:  commands.ErrLotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Lot not found",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request data",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateLot(gomock.Any(), lot.ID, reqBody).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *LotHandlerTestSuite) TestResize() {
	lot := builder.NewLotBuilder()
	url := "/admin/lots/" + lot.ID.String() + "/resize"

	reqBody := map[string]any{"spot_count": 8}
	expectedResult := &commands.ResizeResult{LotID: lot.ID, Added: 0, Removed: 2}

	s.Run("success: returns 200 OK with added and removed deltas", func() {
		s.mockCommands.EXPECT().Resize(gomock.Any(), lot.ID, int32(8)).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(float64(0), response["added"])
		s.Equal(float64(2), response["removed"])
	})

	s.Run("error: 400 Bad Request when spot_count is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "lot not found",
				commandsError:  commands.ErrLotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Lot not found",
			},
			{
				name:           "negative count",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid spot count",
			},
			{
				name:           "occupied spots in the shrink range",
				commandsError:  commands.ErrCapacityConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Occupied spots block the capacity change",
			},
			{
				name:           "lock contention",
				commandsError:  commands.ErrConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "retry",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Resize(gomock.Any(), lot.ID, int32(8)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *LotHandlerTestSuite) TestDelete() {
	lot := builder.NewLotBuilder()
	url := "/admin/lots/" + lot.ID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteLot(gomock.Any(), lot.ID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict while spots are occupied", func() {
		s.mockCommands.EXPECT().DeleteLot(gomock.Any(), lot.ID).
			Return(commands.ErrLotOccupied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Lot has occupied spots or active reservations")
	})

	s.Run("error: 404 Not Found for unknown lot", func() {
		s.mockCommands.EXPECT().DeleteLot(gomock.Any(), lot.ID).
			Return(commands.ErrLotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lot not found")
	})
}

func (s *LotHandlerTestSuite) TestList() {
	views := []*queries.LotView{
		builder.NewLotBuilder().WithName("North Deck").BuildView(),
		builder.NewLotBuilder().WithName("South Deck").BuildView(),
	}

	s.Run("success: returns the lot listing", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots", nil, "")

		var response []resdto.LotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, len(views))
		s.Equal("North Deck", response[0].Name)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *LotHandlerTestSuite) TestGet() {
	lot := builder.NewLotBuilder()
	url := "/lots/" + lot.ID.String()

	s.Run("success: returns 200 OK with the lot", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), lot.ID).
			Return(lot.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.LotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(lot.ID, response.ID)
	})

	s.Run("error: 404 Not Found for unknown lot", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), lot.ID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lot not found")
	})
}

func (s *LotHandlerTestSuite) TestListSpots() {
	lot := builder.NewLotBuilder()
	url := "/lots/" + lot.ID.String() + "/spots"

	views := []*queries.SpotView{
		{ID: uuid.New(), LotID: lot.ID, Number: 1, Status: "occupied", CreatedAt: lot.CreatedAt},
		{ID: uuid.New(), LotID: lot.ID, Number: 2, Status: "available", CreatedAt: lot.CreatedAt},
	}

	s.Run("success: returns spots with their status", func() {
		s.mockQueries.EXPECT().ListSpots(gomock.Any(), lot.ID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("occupied", response[0].Status)
		s.Equal(int32(2), response[1].Number)
	})

	s.Run("error: 404 Not Found for unknown lot", func() {
		s.mockQueries.EXPECT().ListSpots(gomock.Any(), lot.ID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lot not found")
	})
}
