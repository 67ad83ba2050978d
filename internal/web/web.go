package web

import (
	"errors"
	"strconv"
	"strings"

	authservice "expensedesk/auth/service"
	"expensedesk/internal/config"
	"expensedesk/internal/service"
	"expensedesk/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const accountKey = "account"

type Server struct {
	auth            *authservice.Service
	customerService *service.CustomerService
	app             *fiber.App
	cfg             config.Server
	log             *logrus.Entry
}

func New(l *logrus.Logger, cs *service.CustomerService, cfg config.Server, authService *authservice.Service) *Server {
	server := Server{
		customerService: cs,
		auth:            authService,
		cfg:             cfg,
		log: l.WithFields(map[string]interface{}{
			"from": "web",
		}),
	}

	app := fiber.New()
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		token := c.Cookies("token")
		if token == "" {
			if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		account, err := authService.Auth(c.Context(), token, c.Method(), c.OriginalURL())
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrForbidden):
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden"})
			case errors.Is(err, authservice.ErrNotAuthorized):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
			default:
				server.log.WithError(err).Error("authorization failed")
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
			}
		}
		c.Context().SetUserValue(accountKey, account)
		return c.Next()
	})

	app.Post(webpath.ApiLogin, server.HandleLogin)
	app.Get(webpath.ApiCustomers, server.handleCustomerList)
	app.Post(webpath.ApiCustomers, server.handleCustomerCreate)
	app.Put(webpath.ApiCustomer, server.handleCustomerUpdate)
	app.Delete(webpath.ApiCustomer, server.handleCustomerDelete)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

// HandleLogin drives the login flow: validate, resolve+verify, issue.
// Missing account and wrong password get the one 401 shape; only
// dependency failures become 500 so outages never read as bad
// credentials.
func (s *Server) HandleLogin(ctx *fiber.Ctx) error {
	var req loginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
	}

	account, err := s.auth.Login(ctx.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
		}
		s.log.WithError(err).Error("login failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	cookie, err := s.auth.GenerateJWTCookie(account, s.cfg.Host)
	if err != nil {
		s.log.WithError(err).Error("token generation failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	ctx.Cookie(cookie)

	return ctx.JSON(loginResponse{
		Token:   cookie.Value,
		User:    convertAccount(account),
		Message: "Login successful",
	})
}

func (s *Server) handleCustomerList(ctx *fiber.Ctx) error {
	customers, err := s.customerService.List(ctx.Context())
	if err != nil {
		s.log.WithError(err).Error("customer list failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return ctx.JSON(fiber.Map{"customers": convertCustomers(customers)})
}

func (s *Server) handleCustomerCreate(ctx *fiber.Ctx) error {
	var req createCustomer
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	created, err := s.customerService.Create(ctx.Context(), req.convertToDomainCustomer())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		s.log.WithError(err).Error("customer create failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertCustomer(created))
}

func (s *Server) handleCustomerUpdate(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Customer ID is required"})
	}
	var req updateCustomer
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	updated, err := s.customerService.Update(ctx.Context(), id, req.convertToDomainUpdate())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Customer not found"})
		case errors.Is(err, service.ErrValidation):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			s.log.WithError(err).Error("customer update failed")
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
	}
	return ctx.JSON(fiber.Map{
		"message":  "Customer updated",
		"customer": convertCustomer(updated),
	})
}

func (s *Server) handleCustomerDelete(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Customer ID is required"})
	}
	if err := s.customerService.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Customer not found"})
		}
		s.log.WithError(err).Error("customer delete failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return ctx.JSON(fiber.Map{"message": "Customer deleted successfully"})
}
