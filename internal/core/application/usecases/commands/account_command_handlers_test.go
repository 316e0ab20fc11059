package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/commands"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

const testEmail = "a@example.com"

func userUoW(t *testing.T) (*MockUserUoWFactory, *MockUserRepository, *MockUoW) {
	t.Helper()
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("UserRepository").Return(userRepo)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow)
	return factory, userRepo, uow
}

func TestRegisterUserCommandHandler_Handle(t *testing.T) {
	t.Run("creates a customer and returns a token", func(t *testing.T) {
		ctx := t.Context()
		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, testEmail).Return(nil, errs.NewObjectNotFoundError("email", testEmail)).Once()
		userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).
			Run(func(args mock.Arguments) {
				_ = args.Get(1).(*user.User).SetID(5)
			}).Return(nil).Once()

		hasher := new(MockPasswordHasher)
		hasher.On("Hash", "secret1").Return("hashed", nil).Once()
		tokens := new(MockTokenIssuer)
		tokens.On("Issue", kernel.Actor{ID: 5, Role: kernel.RoleCustomer}).Return("jwt-token", nil).Once()

		cmd, err := commands.NewRegisterUserCommand("Nguyen Van A", " A@Example.com ", "secret1", "", "")
		require.NoError(t, err)

		result, err := commands.NewRegisterUserCommandHandler(factory, hasher, tokens, testClock).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", result.Token)
		assert.Equal(t, testEmail, result.User.Email())
		assert.Equal(t, "hashed", result.User.PasswordHash())
		uow.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		ctx := t.Context()
		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, testEmail).
			Return(restoredUser(t, 3, kernel.RoleCustomer, false, nil), nil).Once()

		hasher := new(MockPasswordHasher)
		hasher.On("Hash", "secret1").Return("hashed", nil).Once()

		cmd, err := commands.NewRegisterUserCommand("Nguyen Van A", testEmail, "secret1", "shipper", "")
		require.NoError(t, err)

		_, err = commands.NewRegisterUserCommandHandler(factory, hasher, new(MockTokenIssuer), testClock).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
		require.ErrorIs(t, err, errs.ErrConflict)
		userRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestNewRegisterUserCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewRegisterUserCommand("An", testEmail, "12345", "superuser", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	stored := restoredUser(t, 3, kernel.RoleShipper, false, nil)

	t.Run("valid credentials", func(t *testing.T) {
		factory, userRepo, _ := userUoW(t)
		userRepo.On("GetByEmail", mock.Anything, testEmail).Return(stored, nil).Once()
		hasher := new(MockPasswordHasher)
		hasher.On("Matches", "stored-hash", "pw").Return(true).Once()
		tokens := new(MockTokenIssuer)
		tokens.On("Issue", kernel.Actor{ID: 3, Role: kernel.RoleShipper}).Return("jwt-token", nil).Once()

		cmd, err := commands.NewLoginCommand(testEmail, "pw")
		require.NoError(t, err)

		result, err := commands.NewLoginCommandHandler(factory, hasher, tokens).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", result.Token)
		assert.Same(t, stored, result.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		factory, userRepo, _ := userUoW(t)
		userRepo.On("GetByEmail", mock.Anything, testEmail).Return(stored, nil).Once()
		hasher := new(MockPasswordHasher)
		hasher.On("Matches", "stored-hash", "nope").Return(false).Once()

		cmd, err := commands.NewLoginCommand(testEmail, "nope")
		require.NoError(t, err)

		_, err = commands.NewLoginCommandHandler(factory, hasher, new(MockTokenIssuer)).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("unknown email looks the same as a wrong password", func(t *testing.T) {
		factory, userRepo, _ := userUoW(t)
		userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "ghost@example.com")).Once()

		cmd, err := commands.NewLoginCommand("ghost@example.com", "pw")
		require.NoError(t, err)

		_, err = commands.NewLoginCommandHandler(factory, new(MockPasswordHasher), new(MockTokenIssuer)).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}

func TestUpdateOnlineStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	stored := restoredUser(t, shipperID, kernel.RoleShipper, false, nil)

	factory, userRepo, uow := userUoW(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	userRepo.On("Get", ctx, shipperID).Return(stored, nil).Once()
	userRepo.On("Update", ctx, stored).Return(nil).Once()

	cmd, err := commands.NewUpdateOnlineStatusCommand(shipperActor(), true)
	require.NoError(t, err)

	u, err := commands.NewUpdateOnlineStatusCommandHandler(factory, testClock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, u.IsOnline())
	require.NotNil(t, u.LastOnline())
	assert.Equal(t, testNow, *u.LastOnline())
	userRepo.AssertExpectations(t)
}

func TestForgotPasswordCommandHandler_Handle(t *testing.T) {
	t.Run("stores the code and emails it", func(t *testing.T) {
		ctx := t.Context()
		stored := restoredUser(t, 3, kernel.RoleCustomer, false, nil)

		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, testEmail).Return(stored, nil).Once()
		userRepo.On("Update", ctx, stored).Return(nil).Once()

		otp := new(MockOTPGenerator)
		otp.On("Generate").Return("123456", nil).Once()
		sender := new(MockNotificationSender)
		sender.On("Send", ctx, mock.MatchedBy(func(n ports.Notification) bool {
			return n.To == testEmail && assert.Contains(t, n.Body, "123456")
		})).Return(nil).Once()

		cmd, err := commands.NewForgotPasswordCommand(testEmail)
		require.NoError(t, err)

		handler := commands.NewForgotPasswordCommandHandler(factory, otp, sender, testClock, 5*time.Minute, discardLogger())
		require.NoError(t, handler.Handle(ctx, cmd))

		require.NotNil(t, stored.OTP())
		assert.Equal(t, "123456", stored.OTP().Code)
		assert.Equal(t, testNow.Add(5*time.Minute), stored.OTP().ExpiresAt)
		sender.AssertExpectations(t)
	})

	t.Run("failed send clears the stored code", func(t *testing.T) {
		ctx := t.Context()
		stored := restoredUser(t, 3, kernel.RoleCustomer, false, nil)

		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", mock.Anything).Return(nil).Twice()
		uow.On("Commit", mock.Anything).Return(nil).Twice()
		uow.On("Rollback", mock.Anything).Return(nil).Twice()
		userRepo.On("GetByEmail", ctx, testEmail).Return(stored, nil).Once()
		userRepo.On("Get", mock.Anything, int64(3)).Return(stored, nil).Once()
		userRepo.On("Update", mock.Anything, stored).Return(nil).Twice()

		otp := new(MockOTPGenerator)
		otp.On("Generate").Return("123456", nil).Once()
		sender := new(MockNotificationSender)
		sender.On("Send", ctx, mock.Anything).Return(errors.New("smtp down")).Once()

		cmd, err := commands.NewForgotPasswordCommand(testEmail)
		require.NoError(t, err)

		handler := commands.NewForgotPasswordCommandHandler(factory, otp, sender, testClock, 5*time.Minute, discardLogger())
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInfrastructureFail)
		assert.Nil(t, stored.OTP())
		userRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctx := t.Context()
		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, "ghost@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "ghost@example.com")).Once()

		otp := new(MockOTPGenerator)
		otp.On("Generate").Return("123456", nil).Once()
		sender := new(MockNotificationSender)

		cmd, err := commands.NewForgotPasswordCommand("ghost@example.com")
		require.NoError(t, err)

		err = commands.NewForgotPasswordCommandHandler(factory, otp, sender, testClock, 5*time.Minute, discardLogger()).
			Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestVerifyOTPCommandHandler_Handle(t *testing.T) {
	t.Run("mismatch is persisted and reported", func(t *testing.T) {
		ctx := t.Context()
		stored := restoredUser(t, 3, kernel.RoleCustomer, false,
			&user.OTP{Code: "123456", ExpiresAt: testNow.Add(time.Minute)})

		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, testEmail).Return(stored, nil).Once()
		userRepo.On("Update", ctx, stored).Return(nil).Once()

		cmd, err := commands.NewVerifyOTPCommand(testEmail, "000000")
		require.NoError(t, err)

		err = commands.NewVerifyOTPCommandHandler(factory, testClock, 5).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "4 attempts remaining")
		assert.Equal(t, 1, stored.OTP().Attempts)
		uow.AssertExpectations(t)
	})

	t.Run("too many attempts clears the code", func(t *testing.T) {
		ctx := t.Context()
		stored := restoredUser(t, 3, kernel.RoleCustomer, false,
			&user.OTP{Code: "123456", ExpiresAt: testNow.Add(time.Minute), Attempts: 5})

		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, testEmail).Return(stored, nil).Once()
		userRepo.On("Update", ctx, stored).Return(nil).Once()

		cmd, err := commands.NewVerifyOTPCommand(testEmail, "123456")
		require.NoError(t, err)

		err = commands.NewVerifyOTPCommandHandler(factory, testClock, 5).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrTooManyAttempts)
		assert.Nil(t, stored.OTP())
	})

	t.Run("matching code", func(t *testing.T) {
		ctx := t.Context()
		stored := restoredUser(t, 3, kernel.RoleCustomer, false,
			&user.OTP{Code: "123456", ExpiresAt: testNow.Add(time.Minute), Attempts: 2})

		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, testEmail).Return(stored, nil).Once()
		userRepo.On("Update", ctx, stored).Return(nil).Once()

		cmd, err := commands.NewVerifyOTPCommand(testEmail, "123456")
		require.NoError(t, err)

		require.NoError(t, commands.NewVerifyOTPCommandHandler(factory, testClock, 5).Handle(ctx, cmd))
		require.NotNil(t, stored.OTP())
		assert.Zero(t, stored.OTP().Attempts)
	})
}

func TestResetPasswordCommandHandler_Handle(t *testing.T) {
	t.Run("stores the new hash and notifies in the background", func(t *testing.T) {
		ctx := t.Context()
		stored := restoredUser(t, 3, kernel.RoleCustomer, false,
			&user.OTP{Code: "123456", ExpiresAt: testNow.Add(time.Minute)})

		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, testEmail).Return(stored, nil).Once()
		userRepo.On("Update", ctx, stored).Return(nil).Once()

		hasher := new(MockPasswordHasher)
		hasher.On("Matches", "stored-hash", "brand-new-pw").Return(false).Once()
		hasher.On("Hash", "brand-new-pw").Return("new-hash", nil).Once()

		sent := make(chan ports.Notification, 1)
		sender := new(MockNotificationSender)
		sender.On("Send", mock.Anything, mock.AnythingOfType("ports.Notification")).
			Run(func(args mock.Arguments) {
				sent <- args.Get(1).(ports.Notification)
			}).Return(errors.New("smtp down")).Once()

		cmd, err := commands.NewResetPasswordCommand(testEmail, "123456", "brand-new-pw")
		require.NoError(t, err)

		err = commands.NewResetPasswordCommandHandler(factory, hasher, sender, testClock, 5, discardLogger()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "new-hash", stored.PasswordHash())
		assert.Nil(t, stored.OTP())

		select {
		case n := <-sent:
			assert.Equal(t, testEmail, n.To)
		case <-time.After(time.Second):
			t.Fatal("password changed notice was not sent")
		}
	})

	t.Run("reusing the current password is rejected", func(t *testing.T) {
		ctx := t.Context()
		stored := restoredUser(t, 3, kernel.RoleCustomer, false,
			&user.OTP{Code: "123456", ExpiresAt: testNow.Add(time.Minute)})

		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, testEmail).Return(stored, nil).Once()

		hasher := new(MockPasswordHasher)
		hasher.On("Matches", "stored-hash", "same-old-pw").Return(true).Once()

		cmd, err := commands.NewResetPasswordCommand(testEmail, "123456", "same-old-pw")
		require.NoError(t, err)

		err = commands.NewResetPasswordCommandHandler(factory, hasher, new(MockNotificationSender), testClock, 5, discardLogger()).
			Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrPasswordUnchanged)
		assert.NotNil(t, stored.OTP())
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("expired code is cleared and persisted", func(t *testing.T) {
		ctx := t.Context()
		stored := restoredUser(t, 3, kernel.RoleCustomer, false,
			&user.OTP{Code: "123456", ExpiresAt: testNow.Add(-time.Second)})

		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, testEmail).Return(stored, nil).Once()
		userRepo.On("Update", ctx, stored).Return(nil).Once()

		cmd, err := commands.NewResetPasswordCommand(testEmail, "123456", "brand-new-pw")
		require.NoError(t, err)

		err = commands.NewResetPasswordCommandHandler(factory, new(MockPasswordHasher), new(MockNotificationSender), testClock, 5, discardLogger()).
			Handle(ctx, cmd)

		require.ErrorIs(t, err, user.ErrOTPExpired)
		assert.Nil(t, stored.OTP())
	})

	t.Run("wrong code counts an attempt", func(t *testing.T) {
		ctx := t.Context()
		stored := restoredUser(t, 3, kernel.RoleCustomer, false,
			&user.OTP{Code: "123456", ExpiresAt: testNow.Add(time.Minute), Attempts: 1})

		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, testEmail).Return(stored, nil).Once()
		userRepo.On("Update", ctx, stored).Return(nil).Once()

		cmd, err := commands.NewResetPasswordCommand(testEmail, "654321", "brand-new-pw")
		require.NoError(t, err)

		hasher := new(MockPasswordHasher)
		err = commands.NewResetPasswordCommandHandler(factory, hasher, new(MockNotificationSender), testClock, 5, discardLogger()).
			Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.NotNil(t, stored.OTP())
		assert.Equal(t, 2, stored.OTP().Attempts)
		assert.Equal(t, "stored-hash", stored.PasswordHash())
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("attempt limit clears the code", func(t *testing.T) {
		ctx := t.Context()
		stored := restoredUser(t, 3, kernel.RoleCustomer, false,
			&user.OTP{Code: "123456", ExpiresAt: testNow.Add(time.Minute), Attempts: 5})

		factory, userRepo, uow := userUoW(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("GetByEmail", ctx, testEmail).Return(stored, nil).Once()
		userRepo.On("Update", ctx, stored).Return(nil).Once()

		cmd, err := commands.NewResetPasswordCommand(testEmail, "123456", "brand-new-pw")
		require.NoError(t, err)

		err = commands.NewResetPasswordCommandHandler(factory, new(MockPasswordHasher), new(MockNotificationSender), testClock, 5, discardLogger()).
			Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrTooManyAttempts)
		assert.Nil(t, stored.OTP())
		assert.Equal(t, "stored-hash", stored.PasswordHash())
	})
}

func TestNewResetPasswordCommand_ShortPassword(t *testing.T) {
	_, err := commands.NewResetPasswordCommand(testEmail, "123456", "short")

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
