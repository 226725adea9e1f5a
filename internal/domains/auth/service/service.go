package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fairhall/config"
	"fairhall/infras/jwt"
	"fairhall/infras/otel"
	"fairhall/internal/domains/auth/model/dto"
	directoryRepo "fairhall/internal/domains/directory/repository"
	vendorModel "fairhall/internal/domains/vendors/model"
	vendorRepo "fairhall/internal/domains/vendors/repository"
	"fairhall/shared/constant"
	"fairhall/shared/failure"
	"fairhall/shared/password"
)

type Auth interface {
	SignupVendor(ctx context.Context, req dto.VendorSignupRequest) (dto.LoginResponse, error)
	LoginVendor(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	LoginAdmin(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	LoginSuperAdmin(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	vendors    vendorRepo.Vendor
	admins     directoryRepo.Admin
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(vendors vendorRepo.Vendor, admins directoryRepo.Admin, cfg *config.Config, otel otel.Otel, jwtService jwt.JWT) Auth {
	return &serviceImpl{
		vendors:    vendors,
		admins:     admins,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwtService,
	}
}

func (s *serviceImpl) SignupVendor(ctx context.Context, req dto.VendorSignupRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignupVendor")
	defer scope.End()
	defer scope.TraceIfError(err)

	vendors, err := s.vendors.GetAll(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get vendors: %w", err)
	}

	for _, vendor := range vendors {
		if strings.EqualFold(vendor.Email, req.Email) {
			return res, failure.EmailRegistered
		}
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	vendor := vendorModel.Vendor{
		ID:           uuid.NewString(),
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Password:     hash,
	}

	if err = s.vendors.Replace(ctx, append(vendors, vendor)); err != nil {
		return res, err
	}

	return s.issueTokens(vendor.ID, vendor.Email, vendor.BusinessName, constant.RoleVendor)
}

// LoginVendor authenticates a registered vendor. When open login is enabled,
// an unknown email with a non-empty password registers itself on the fly with
// a business name derived from the email local part.
func (s *serviceImpl) LoginVendor(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoginVendor")
	defer scope.End()
	defer scope.TraceIfError(err)

	vendor, found, err := s.vendors.FindByEmail(ctx, req.Email)
	if err != nil {
		return res, fmt.Errorf("failed to find vendor: %w", err)
	}

	if !found {
		if !s.cfg.Auth.OpenVendorLogin {
			log.Warn().Str("email", req.Email).Msg("vendor login attempt with unknown email")

			return res, failure.InvalidCredentials
		}

		return s.enrollOpenVendor(ctx, req)
	}

	if err := password.Verify(req.Password, vendor.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("vendor login attempt with wrong password")

		return res, failure.InvalidCredentials
	}

	return s.issueTokens(vendor.ID, vendor.Email, vendor.BusinessName, constant.RoleVendor)
}

func (s *serviceImpl) LoginAdmin(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoginAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, found, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		return res, fmt.Errorf("failed to find admin: %w", err)
	}

	if !found {
		log.Warn().Str("email", req.Email).Msg("admin login attempt with unknown email")

		return res, failure.InvalidCredentials
	}

	if err := password.Verify(req.Password, admin.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("admin login attempt with wrong password")

		return res, failure.InvalidCredentials
	}

	return s.issueTokens(admin.ID, admin.Email, constant.Empty, constant.RoleAdmin)
}

func (s *serviceImpl) LoginSuperAdmin(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoginSuperAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailMatch := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.cfg.Auth.SuperAdmin.Email)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.Auth.SuperAdmin.Password)) == 1

	if !emailMatch || !passwordMatch {
		log.Warn().Str("email", req.Email).Msg("superadmin login attempt rejected")

		return res, failure.InvalidCredentials
	}

	return s.issueTokens(constant.RoleSuperAdmin, s.cfg.Auth.SuperAdmin.Email, constant.Empty, constant.RoleSuperAdmin)
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) enrollOpenVendor(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	// A vendor without a business name could never pass the reservation
	// ownership guard, so emails with an empty local part are not enrolled.
	businessName := businessNameFromEmail(req.Email)
	if businessName == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("open vendor login with no derivable business name")

		return res, failure.InvalidCredentials
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	vendor := vendorModel.Vendor{
		ID:           uuid.NewString(),
		BusinessName: businessName,
		Email:        req.Email,
		Password:     hash,
	}

	vendors, err := s.vendors.GetAll(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get vendors: %w", err)
	}

	if err = s.vendors.Replace(ctx, append(vendors, vendor)); err != nil {
		return res, err
	}

	log.Info().Str("email", vendor.Email).Msg("enrolled vendor via open login")

	return s.issueTokens(vendor.ID, vendor.Email, vendor.BusinessName, constant.RoleVendor)
}

func (s *serviceImpl) issueTokens(userID, email, businessName, role string) (res dto.LoginResponse, err error) {
	tokenPair, err := s.jwtService.GenerateTokenPair(jwt.Identity{
		UserID:       userID,
		Email:        email,
		BusinessName: businessName,
		Role:         role,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.Role = role
	res.BusinessName = businessName

	return res, nil
}

// businessNameFromEmail turns "page.turner-books@x" into "Page Turner Books".
func businessNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)

	words := strings.Fields(local)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}
