package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fairhall/config"
	"fairhall/infras/jwt"
	jwtMocks "fairhall/infras/jwt/mocks"
	"fairhall/infras/otel/mocks"
	"fairhall/internal/domains/auth/model/dto"
	"fairhall/internal/domains/auth/service"
	directoryMocks "fairhall/internal/domains/directory/mocks"
	directoryModel "fairhall/internal/domains/directory/model"
	vendorMocks "fairhall/internal/domains/vendors/mocks"
	vendorModel "fairhall/internal/domains/vendors/model"
	"fairhall/shared/constant"
	"fairhall/shared/failure"
	"fairhall/shared/password"
)

type fixture struct {
	svc     service.Auth
	vendors *vendorMocks.MockVendor
	admins  *directoryMocks.MockAdmin
	jwt     *jwtMocks.MockJWT
	cfg     *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		vendors: vendorMocks.NewMockVendor(ctrl),
		admins:  directoryMocks.NewMockAdmin(ctrl),
		jwt:     jwtMocks.NewMockJWT(ctrl),
		cfg:     &config.Config{},
	}
	f.cfg.Auth.SuperAdmin.Email = "owner@bookfair.example"
	f.cfg.Auth.SuperAdmin.Password = "supersecret"

	f.svc = service.New(f.vendors, f.admins, f.cfg, mocks.NewOtel(), f.jwt)

	return f
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}
}

func hashOf(t *testing.T, plain string) string {
	t.Helper()

	hash, err := password.Hash(plain)
	assert.NoError(t, err)

	return hash
}

func TestAuthService_SignupVendor(t *testing.T) {
	t.Run("successful signup issues tokens", func(t *testing.T) {
		f := newFixture(t)

		var replaced []vendorModel.Vendor
		f.vendors.EXPECT().GetAll(gomock.Any()).Return([]vendorModel.Vendor{}, nil)
		f.vendors.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, vendors []vendorModel.Vendor) error {
				replaced = vendors
				return nil
			})
		f.jwt.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokenPair(), nil)

		res, err := f.svc.SignupVendor(context.Background(), dto.VendorSignupRequest{
			BusinessName: "Page Turner Books",
			Email:        "books@example.com",
			Password:     "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, constant.RoleVendor, res.Role)
		assert.Equal(t, "Page Turner Books", res.BusinessName)

		assert.Len(t, replaced, 1)
		assert.NoError(t, password.Verify("secret123", replaced[0].Password))
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newFixture(t)

		f.vendors.EXPECT().GetAll(gomock.Any()).Return([]vendorModel.Vendor{
			{ID: "v-1", BusinessName: "Inkwell Press", Email: "books@example.com"},
		}, nil)

		_, err := f.svc.SignupVendor(context.Background(), dto.VendorSignupRequest{
			BusinessName: "Page Turner Books",
			Email:        "BOOKS@example.com",
			Password:     "secret123",
		})

		assert.ErrorIs(t, err, failure.EmailRegistered)
	})
}

func TestAuthService_LoginVendor(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		f := newFixture(t)

		f.vendors.EXPECT().
			FindByEmail(gomock.Any(), "books@example.com").
			Return(vendorModel.Vendor{
				ID:           "v-1",
				BusinessName: "Page Turner Books",
				Email:        "books@example.com",
				Password:     hashOf(t, "secret123"),
			}, true, nil)
		f.jwt.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokenPair(), nil)

		res, err := f.svc.LoginVendor(context.Background(), dto.LoginRequest{
			Email:    "books@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, constant.RoleVendor, res.Role)
		assert.Equal(t, "Page Turner Books", res.BusinessName)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)

		f.vendors.EXPECT().
			FindByEmail(gomock.Any(), "books@example.com").
			Return(vendorModel.Vendor{
				ID:       "v-1",
				Email:    "books@example.com",
				Password: hashOf(t, "secret123"),
			}, true, nil)

		_, err := f.svc.LoginVendor(context.Background(), dto.LoginRequest{
			Email:    "books@example.com",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, failure.InvalidCredentials)
	})

	t.Run("unknown email with open login disabled", func(t *testing.T) {
		f := newFixture(t)

		f.vendors.EXPECT().
			FindByEmail(gomock.Any(), "new@example.com").
			Return(vendorModel.Vendor{}, false, nil)

		_, err := f.svc.LoginVendor(context.Background(), dto.LoginRequest{
			Email:    "new@example.com",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, failure.InvalidCredentials)
	})

	t.Run("unknown email with open login enrolls a vendor", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Auth.OpenVendorLogin = true

		var replaced []vendorModel.Vendor
		f.vendors.EXPECT().
			FindByEmail(gomock.Any(), "page.turner-books@example.com").
			Return(vendorModel.Vendor{}, false, nil)
		f.vendors.EXPECT().GetAll(gomock.Any()).Return([]vendorModel.Vendor{}, nil)
		f.vendors.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, vendors []vendorModel.Vendor) error {
				replaced = vendors
				return nil
			})
		f.jwt.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokenPair(), nil)

		res, err := f.svc.LoginVendor(context.Background(), dto.LoginRequest{
			Email:    "page.turner-books@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Page Turner Books", res.BusinessName)
		assert.Len(t, replaced, 1)
		assert.Equal(t, "Page Turner Books", replaced[0].BusinessName)
	})

	t.Run("open login declines an email with no derivable business name", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Auth.OpenVendorLogin = true

		f.vendors.EXPECT().
			FindByEmail(gomock.Any(), "@example.com").
			Return(vendorModel.Vendor{}, false, nil)

		_, err := f.svc.LoginVendor(context.Background(), dto.LoginRequest{
			Email:    "@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, failure.InvalidCredentials)
	})
}

func TestAuthService_LoginAdmin(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		f := newFixture(t)

		f.admins.EXPECT().
			FindByEmail(gomock.Any(), "admin@bookfair.example").
			Return(directoryModel.Admin{
				ID:       "id-1",
				Name:     "Fair Admin",
				Email:    "admin@bookfair.example",
				Password: hashOf(t, "admin123"),
				Role:     constant.RoleAdmin,
			}, true, nil)
		f.jwt.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokenPair(), nil)

		res, err := f.svc.LoginAdmin(context.Background(), dto.LoginRequest{
			Email:    "admin@bookfair.example",
			Password: "admin123",
		})

		assert.NoError(t, err)
		assert.Equal(t, constant.RoleAdmin, res.Role)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newFixture(t)

		f.admins.EXPECT().
			FindByEmail(gomock.Any(), "ghost@bookfair.example").
			Return(directoryModel.Admin{}, false, nil)

		_, err := f.svc.LoginAdmin(context.Background(), dto.LoginRequest{
			Email:    "ghost@bookfair.example",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, failure.InvalidCredentials)
	})
}

func TestAuthService_LoginSuperAdmin(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokenPair(), nil)

		res, err := f.svc.LoginSuperAdmin(context.Background(), dto.LoginRequest{
			Email:    "owner@bookfair.example",
			Password: "supersecret",
		})

		assert.NoError(t, err)
		assert.Equal(t, constant.RoleSuperAdmin, res.Role)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.LoginSuperAdmin(context.Background(), dto.LoginRequest{
			Email:    "owner@bookfair.example",
			Password: "guess",
		})

		assert.ErrorIs(t, err, failure.InvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("successful refresh", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().RefreshTokens("refresh").Return(tokenPair(), nil)

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().RefreshTokens("bad").Return(nil, jwt.ErrInvalidToken)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}
