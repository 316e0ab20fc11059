package cmd

import (
	"errors"

	"github.com/sirupsen/logrus"

	httpin "github.com/FIT-dev-AI/Delivery-app/internal/adapters/in/http"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/crypto"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/jwt"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/kafka"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/smtp"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/commands"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/queries"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/jobs"
)

const otpDigits = 6

type CompositionRoot struct {
	config     Config
	db         *postgres.Database
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	logger     *logrus.Entry

	tokens    *jwt.Issuer
	hasher    *crypto.BcryptHasher
	otp       *crypto.OTPGenerator
	sender    ports.NotificationSender
	publisher ports.EventPublisher
	closers   []func() error
}

func NewCompositionRoot(config Config, db *postgres.Database, logger *logrus.Entry) (*CompositionRoot, error) {
	clock := ports.SystemClock

	tokens, err := jwt.NewIssuer(config.JWTSecret, config.JWTTTL, clock)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		config:     config,
		db:         db,
		uowFactory: postgres.NewGormUnitOfWorkFactory(db.Gorm),
		clock:      clock,
		logger:     logger,
		tokens:     tokens,
		hasher:     crypto.NewBcryptHasher(0),
		otp:        crypto.NewOTPGenerator(otpDigits),
	}

	if config.SMTPHost != "" {
		root.sender = smtp.NewSender(smtp.Config{
			Host:     config.SMTPHost,
			Port:     config.SMTPPort,
			User:     config.SMTPUser,
			Password: config.SMTPPassword,
			From:     config.SMTPFrom,
		})
	} else {
		root.sender = smtp.NewLogSender(logger.WithField("component", "mailer"))
	}

	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		producer, err := kafka.NewProducer(brokers, config.KafkaOrderChangedTopic, logger.WithField("component", "kafka_producer"))
		if err != nil {
			return nil, err
		}
		root.publisher = producer
		root.closers = append(root.closers, producer.Close)
	} else {
		root.publisher = kafka.NewLogPublisher(logger.WithField("component", "kafka_producer"))
	}

	return root, nil
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	var errList []error
	for _, closeFn := range c.closers {
		errList = append(errList, closeFn())
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) locationUoWFactory() commands.LocationUoWFactory {
	return FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) component(name string) *logrus.Entry {
	return c.logger.WithField("component", name)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), services.NewPricingEngine(), c.clock, c.component("create_order"),
	)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.uoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.uoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		c.orderUoWFactory(), c.clock, c.config.ProofRequiredOnDelivery, c.component("update_order_status"),
	)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAttachProofCommandHandler() commands.AttachProofCommandHandler {
	return commands.NewAttachProofCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher, c.tokens, c.clock)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateUpdateOnlineStatusCommandHandler() commands.UpdateOnlineStatusCommandHandler {
	return commands.NewUpdateOnlineStatusCommandHandler(c.userUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateForgotPasswordCommandHandler() commands.ForgotPasswordCommandHandler {
	return commands.NewForgotPasswordCommandHandler(
		c.userUoWFactory(), c.otp, c.sender, c.clock, c.config.OTPTTL, c.component("forgot_password"),
	)
}

func (c *CompositionRoot) CreateVerifyOTPCommandHandler() commands.VerifyOTPCommandHandler {
	return commands.NewVerifyOTPCommandHandler(c.userUoWFactory(), c.clock, c.config.OTPMaxAttempts)
}

func (c *CompositionRoot) CreateResetPasswordCommandHandler() commands.ResetPasswordCommandHandler {
	return commands.NewResetPasswordCommandHandler(
		c.userUoWFactory(), c.hasher, c.sender, c.clock, c.config.OTPMaxAttempts, c.component("reset_password"),
	)
}

func (c *CompositionRoot) CreateRecordLocationCommandHandler() commands.RecordLocationCommandHandler {
	return commands.NewRecordLocationCommandHandler(c.locationUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher, c.clock, c.component("outbox_relay"))
}

func (c *CompositionRoot) CreateSweepExpiredOTPsCommandHandler() commands.SweepExpiredOTPsCommandHandler {
	return commands.NewSweepExpiredOTPsCommandHandler(c.userUoWFactory(), c.clock)
}

// CreateHTTPServer wires every use case into the echo server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	db := c.db.SQL
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AcceptOrder:        c.CreateAcceptOrderCommandHandler(),
		AssignOrder:        c.CreateAssignOrderCommandHandler(),
		UpdateOrderStatus:  c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		AttachProof:        c.CreateAttachProofCommandHandler(),
		Register:           c.CreateRegisterUserCommandHandler(),
		Login:              c.CreateLoginCommandHandler(),
		UpdateOnlineStatus: c.CreateUpdateOnlineStatusCommandHandler(),
		ForgotPassword:     c.CreateForgotPasswordCommandHandler(),
		VerifyOTP:          c.CreateVerifyOTPCommandHandler(),
		ResetPassword:      c.CreateResetPasswordCommandHandler(),
		RecordLocation:     c.CreateRecordLocationCommandHandler(),

		ListOrders:              queries.NewListOrdersQueryHandler(db),
		GetActiveOrders:         queries.NewGetActiveOrdersQueryHandler(db),
		GetOrder:                queries.NewGetOrderQueryHandler(db),
		GetOrderHistory:         queries.NewGetOrderHistoryQueryHandler(db),
		GetDashboard:            queries.NewGetDashboardQueryHandler(db, c.clock),
		GetShipperLocation:      queries.NewGetShipperLocationQueryHandler(db),
		GetOrderLocationHistory: queries.NewGetOrderLocationHistoryQueryHandler(db),
		GetOnlineShippers:       queries.NewGetOnlineShippersQueryHandler(db),
	}, c.component("http"))
}

func (c *CompositionRoot) TokenIssuer() ports.TokenIssuer {
	return c.tokens
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRelayOutboxCommandHandler(),
		c.config.OutboxBatchSize,
		c.CreateSweepExpiredOTPsCommandHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
