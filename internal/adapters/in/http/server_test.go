package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	httpin "github.com/FIT-dev-AI/Delivery-app/internal/adapters/in/http"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/commands"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/queries"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/generated/servers"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

const (
	customerToken = "customer-token"
	shipperToken  = "shipper-token"
)

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(actor kernel.Actor) (string, error) {
	args := m.Called(actor)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (kernel.Actor, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.Actor), args.Error(1)
}

type MockCommandHandler[C any] struct{ mock.Mock }

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockResultHandler[I, R any] struct{ mock.Mock }

func (m *MockResultHandler[I, R]) Handle(ctx context.Context, in I) (R, error) {
	args := m.Called(ctx, in)
	result, _ := args.Get(0).(R)
	return result, args.Error(1)
}

type ServerTestSuite struct {
	suite.Suite

	tokens *MockTokenIssuer
	logs   *test.Hook

	createOrder     *MockResultHandler[commands.CreateOrderCommand, commands.CreateOrderResult]
	acceptOrder     *MockCommandHandler[commands.AcceptOrderCommand]
	updateStatus    *MockCommandHandler[commands.UpdateOrderStatusCommand]
	register        *MockResultHandler[commands.RegisterUserCommand, commands.AuthResult]
	login           *MockResultHandler[commands.LoginCommand, commands.AuthResult]
	verifyOTP       *MockCommandHandler[commands.VerifyOTPCommand]
	listOrders      *MockResultHandler[queries.ListOrdersQuery, []queries.OrderView]
	getOrder        *MockResultHandler[queries.GetOrderQuery, queries.OrderView]
	shipperLocation *MockResultHandler[queries.GetShipperLocationQuery, *queries.LocationView]

	router http.Handler
}

func (suite *ServerTestSuite) SetupTest() {
	suite.tokens = &MockTokenIssuer{}
	suite.tokens.On("Verify", customerToken).Return(kernel.Actor{ID: 1, Role: kernel.RoleCustomer}, nil).Maybe()
	suite.tokens.On("Verify", shipperToken).Return(kernel.Actor{ID: 2, Role: kernel.RoleShipper}, nil).Maybe()
	suite.tokens.On("Verify", mock.Anything).
		Return(kernel.Actor{}, errs.NewUnauthenticatedError("invalid token")).Maybe()

	suite.createOrder = &MockResultHandler[commands.CreateOrderCommand, commands.CreateOrderResult]{}
	suite.acceptOrder = &MockCommandHandler[commands.AcceptOrderCommand]{}
	suite.updateStatus = &MockCommandHandler[commands.UpdateOrderStatusCommand]{}
	suite.register = &MockResultHandler[commands.RegisterUserCommand, commands.AuthResult]{}
	suite.login = &MockResultHandler[commands.LoginCommand, commands.AuthResult]{}
	suite.verifyOTP = &MockCommandHandler[commands.VerifyOTPCommand]{}
	suite.listOrders = &MockResultHandler[queries.ListOrdersQuery, []queries.OrderView]{}
	suite.getOrder = &MockResultHandler[queries.GetOrderQuery, queries.OrderView]{}
	suite.shipperLocation = &MockResultHandler[queries.GetShipperLocationQuery, *queries.LocationView]{}

	logger, hook := test.NewNullLogger()
	suite.logs = hook

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:        suite.createOrder,
		AcceptOrder:        suite.acceptOrder,
		UpdateOrderStatus:  suite.updateStatus,
		Register:           suite.register,
		Login:              suite.login,
		VerifyOTP:          suite.verifyOTP,
		ListOrders:         suite.listOrders,
		GetOrder:           suite.getOrder,
		GetShipperLocation: suite.shipperLocation,
	}, logrus.NewEntry(logger))
	suite.router = httpin.NewRouter(server, suite.tokens, httpin.RouterConfig{RequestTimeout: time.Second}, logrus.NewEntry(logger))
}

func (suite *ServerTestSuite) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) decodeError(rec *httptest.ResponseRecorder) servers.Error {
	var body servers.Error
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (suite *ServerTestSuite) TestHealthIsPublic() {
	rec := suite.do(http.MethodGet, "/api/v1/health", "", "")
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodGet, "/health", "", "")
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *ServerTestSuite) TestMissingTokenIsUnauthorized() {
	rec := suite.do(http.MethodGet, "/api/v1/orders", "", "")

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Equal(http.StatusUnauthorized, suite.decodeError(rec).Code)
	suite.listOrders.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestInvalidTokenIsUnauthorized() {
	rec := suite.do(http.MethodGet, "/api/v1/orders", "forged", "")
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *ServerTestSuite) TestCreateOrderAcceptsWeightAsString() {
	pricing := order.Pricing{
		DistanceKm: 5, BaseAmount: 15000, DistanceFee: 25000,
		TotalAmount: 40000, ShipperAmount: 32000, AppCommission: 8000,
	}
	suite.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.Actor().ID == 1 && cmd.Weight().Kg() == 2.5 && cmd.DistanceKm() == 5 &&
			cmd.Pickup().Address() == "1 Le Loi"
	})).Return(commands.CreateOrderResult{OrderID: 10, Category: order.Food, WeightKg: 2.5, Pricing: pricing}, nil)

	rec := suite.do(http.MethodPost, "/api/v1/orders", customerToken, `{
		"pickup_address": "1 Le Loi", "pickup_lat": 10.77, "pickup_lng": 106.7,
		"delivery_address": "2 Hai Ba Trung", "delivery_lat": 10.78, "delivery_lng": 106.69,
		"distance_km": 5, "category": "food", "weight": "2.5"
	}`)

	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created servers.CreatedOrder
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	suite.Equal(int64(10), created.Id)
	suite.Equal("food", created.Category)
	suite.Equal(int64(40000), created.Pricing.TotalAmount)
	suite.createOrder.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestCreateOrderRejectsOverweight() {
	rec := suite.do(http.MethodPost, "/api/v1/orders", customerToken, `{
		"pickup_address": "1 Le Loi", "pickup_lat": 10.77, "pickup_lng": 106.7,
		"delivery_address": "2 Hai Ba Trung", "delivery_lat": 10.78, "delivery_lng": 106.69,
		"distance_km": 5, "weight": 31
	}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.createOrder.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestAcceptOrderConflictIsBadRequest() {
	suite.acceptOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AcceptOrderCommand) bool {
		return cmd.OrderID() == 42
	})).Return(ports.ErrOrderStatusChanged)

	rec := suite.do(http.MethodPut, "/api/v1/orders/42/accept", shipperToken, "")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.decodeError(rec).Message, "changed concurrently")
}

func (suite *ServerTestSuite) TestAcceptOrderNotFound() {
	suite.acceptOrder.On("Handle", mock.Anything, mock.Anything).Return(errs.NewObjectNotFoundError("order", int64(42)))

	rec := suite.do(http.MethodPut, "/api/v1/orders/42/accept", shipperToken, "")
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestAcceptOrderRejectsMalformedID() {
	rec := suite.do(http.MethodPut, "/api/v1/orders/abc/accept", shipperToken, "")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.acceptOrder.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestUpdateStatusConflictIsConflict() {
	suite.updateStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
		return cmd.Status() == order.Delivered && cmd.ProofImage() == "https://cdn/p.jpg"
	})).Return(ports.ErrOrderStatusChanged)

	rec := suite.do(http.MethodPut, "/api/v1/orders/42/status", shipperToken,
		`{"status": "delivered", "photoUrl": "https://cdn/p.jpg"}`)

	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *ServerTestSuite) TestInfrastructureFailureIsHidden() {
	suite.getOrder.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderView{}, errs.NewInfrastructureError("select order", errors.New("dial tcp: refused")))

	rec := suite.do(http.MethodGet, "/api/v1/orders/7", customerToken, "")

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.NotContains(rec.Body.String(), "dial tcp")
	suite.NotEmpty(suite.logs.AllEntries())
}

func (suite *ServerTestSuite) TestListOrdersRejectsUnknownStatus() {
	rec := suite.do(http.MethodGet, "/api/v1/orders?status=lost", customerToken, "")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.listOrders.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestListOrdersEncodesEmptyList() {
	suite.listOrders.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderView(nil), nil)

	rec := suite.do(http.MethodGet, "/api/v1/orders", customerToken, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestLoginIsPublic() {
	u, err := user.NewUser("Lan", "lan@example.com", "hash", kernel.RoleCustomer, "", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(u.SetID(1))
	suite.login.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.LoginCommand) bool {
		return cmd.Email() == "lan@example.com"
	})).Return(commands.AuthResult{Token: "jwt", User: u}, nil)

	rec := suite.do(http.MethodPost, "/api/v1/auth/login", "",
		`{"email": "Lan@Example.com", "password": "secret1"}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var body servers.AuthResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal("jwt", body.Token)
	suite.Equal("customer", body.User.Role)
}

func (suite *ServerTestSuite) TestRegisterShipperRole() {
	u, err := user.NewUser("Minh", "minh@example.com", "hash", kernel.RoleShipper, "", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(u.SetID(2))
	suite.register.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterUserCommand) bool {
		return cmd.Role() == kernel.RoleShipper
	})).Return(commands.AuthResult{Token: "jwt", User: u}, nil)

	role := servers.RegisterRequestRoleShipper
	payload, err := json.Marshal(servers.RegisterRequest{
		Name:     "Minh",
		Email:    "minh@example.com",
		Password: "secret1",
		Role:     &role,
	})
	suite.Require().NoError(err)

	rec := suite.do(http.MethodPost, "/api/v1/auth/register", "", string(payload))

	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var body servers.AuthResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal("shipper", body.User.Role)
	suite.register.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestVerifyOTPTooManyAttempts() {
	suite.verifyOTP.On("Handle", mock.Anything, mock.Anything).Return(errs.NewTooManyAttemptsError("otp", 5))

	rec := suite.do(http.MethodPost, "/api/v1/auth/verify-otp", "", `{"email": "lan@example.com", "otp": "123456"}`)
	suite.Equal(http.StatusTooManyRequests, rec.Code)
}

func (suite *ServerTestSuite) TestShipperLocationIsNullWhenUnknown() {
	suite.shipperLocation.On("Handle", mock.Anything, mock.Anything).Return((*queries.LocationView)(nil), nil)

	rec := suite.do(http.MethodGet, "/api/v1/locations/shipper/2", customerToken, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("null", strings.TrimSpace(rec.Body.String()))
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestStatusCode(t *testing.T) {
	cases := map[string]struct {
		err  error
		want int
	}{
		"required":       {errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		"invalid":        {errs.NewValueIsInvalidError("email"), http.StatusBadRequest},
		"transition":     {errs.NewInvalidTransitionError(order.Delivered, order.Pending), http.StatusBadRequest},
		"not found":      {errs.NewObjectNotFoundError("order", 1), http.StatusNotFound},
		"forbidden":      {errs.NewPermissionDeniedError("accept order", "shippers only"), http.StatusForbidden},
		"conflict":       {ports.ErrShipperAlreadyBusy, http.StatusConflict},
		"unauthorized":   {errs.NewUnauthenticatedError("token expired"), http.StatusUnauthorized},
		"too many":       {errs.NewTooManyAttemptsError("otp", 5), http.StatusTooManyRequests},
		"infrastructure": {errs.NewInfrastructureError("commit", errs.ErrConflict), http.StatusInternalServerError},
		"unknown":        {errors.New("boom"), http.StatusInternalServerError},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, httpin.StatusCode(tc.err))
		})
	}
}

func TestStatusCode_JoinedValidationErrors(t *testing.T) {
	err := errors.Join(errs.NewValueIsRequiredError("pickup_address"), errs.NewValueIsRequiredError("weight"))
	require.Equal(t, http.StatusBadRequest, httpin.StatusCode(err))
}
