package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/commands"
	"github.com/FIT-dev-AI/Delivery-app/internal/generated/servers"
)

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req servers.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	var role string
	if req.Role != nil {
		role = string(*req.Role)
	}
	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Email, req.Password, role, deref(req.Phone))
	if err != nil {
		return err
	}

	result, err := s.h.Register.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return err
	}

	result, err := s.h.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAuthResponse(result))
}

// UpdateOnlineStatus handles PUT /api/v1/auth/online-status.
func (s *Server) UpdateOnlineStatus(ctx echo.Context) error {
	return s.setOnlineStatus(ctx)
}

// PatchOnlineStatus handles PATCH /api/v1/auth/online-status.
func (s *Server) PatchOnlineStatus(ctx echo.Context) error {
	return s.setOnlineStatus(ctx)
}

func (s *Server) setOnlineStatus(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req servers.OnlineStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateOnlineStatusCommand(actor, req.IsOnline)
	if err != nil {
		return err
	}

	u, err := s.h.UpdateOnlineStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toUser(u))
}

// ForgotPassword handles POST /api/v1/auth/forgot-password.
func (s *Server) ForgotPassword(ctx echo.Context) error {
	var req servers.ForgotPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	cmd, err := commands.NewForgotPasswordCommand(req.Email)
	if err != nil {
		return err
	}

	if err := s.h.ForgotPassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Message{Message: "OTP has been sent to your email"})
}

// VerifyOtp handles POST /api/v1/auth/verify-otp.
func (s *Server) VerifyOtp(ctx echo.Context) error {
	var req servers.VerifyOtpRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	cmd, err := commands.NewVerifyOTPCommand(req.Email, req.Otp)
	if err != nil {
		return err
	}

	if err := s.h.VerifyOTP.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Message{Message: "OTP verified"})
}

// ResetPassword handles POST /api/v1/auth/reset-password.
func (s *Server) ResetPassword(ctx echo.Context) error {
	var req servers.ResetPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	cmd, err := commands.NewResetPasswordCommand(req.Email, req.Otp, req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.h.ResetPassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Message{Message: "Password has been reset"})
}

// Health handles GET /api/v1/health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Message{Message: "ok"})
}
