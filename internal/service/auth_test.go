package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/internal/service"
	mocks "github.com/andrevlb/sushi-api/internal/service/mocks"
	"github.com/andrevlb/sushi-api/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterCustomer(t *testing.T) {
	in := service.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret"}

	t.Run("OK issues USER token", func(t *testing.T) {
		customers := mocks.NewMockCustomerRepo(t)
		tokens := mocks.NewMockTokenIssuer(t)
		expiresAt := time.Now().Add(time.Hour)

		customers.EXPECT().GetCustomerByEmail(mock.Anything, "ana@example.com").
			Return(entities.Customer{}, entities.ErrCustomerNotFound)
		customers.EXPECT().InsertCustomer(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				assert.NotEmpty(t, c.PasswordHash)
				assert.NotEqual(t, "secret", c.PasswordHash)
				return c, nil
			})
		tokens.EXPECT().Generate("ana@example.com", auth.RoleUser).Return("jwt", expiresAt, nil)

		svc := service.NewAuthService(newTestLogger(), passthroughTx(t),
			customers, mocks.NewMockEmployeeRepo(t), tokens)

		result, err := svc.RegisterCustomer(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "Ana", result.Name)
		assert.Equal(t, "jwt", result.Token)
		assert.Equal(t, expiresAt, result.ExpiresAt)
	})

	t.Run("taken email conflicts", func(t *testing.T) {
		customers := mocks.NewMockCustomerRepo(t)
		customers.EXPECT().GetCustomerByEmail(mock.Anything, "ana@example.com").
			Return(entities.Customer{Email: "ana@example.com"}, nil)

		svc := service.NewAuthService(newTestLogger(), passthroughTx(t),
			customers, mocks.NewMockEmployeeRepo(t), mocks.NewMockTokenIssuer(t))

		_, err := svc.RegisterCustomer(context.Background(), in)
		assert.ErrorIs(t, err, entities.ErrEmailTaken)
	})
}

func TestAuthService_LoginCustomer(t *testing.T) {
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)
	customer := entities.Customer{Name: "Ana", Email: "ana@example.com", PasswordHash: hash}

	t.Run("OK", func(t *testing.T) {
		customers := mocks.NewMockCustomerRepo(t)
		tokens := mocks.NewMockTokenIssuer(t)

		customers.EXPECT().GetCustomerByEmail(mock.Anything, "ana@example.com").Return(customer, nil)
		tokens.EXPECT().Generate("ana@example.com", auth.RoleUser).Return("jwt", time.Now(), nil)

		svc := service.NewAuthService(newTestLogger(), passthroughTx(t),
			customers, mocks.NewMockEmployeeRepo(t), tokens)

		result, err := svc.LoginCustomer(context.Background(),
			service.LoginInput{Email: "ana@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "jwt", result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		customers := mocks.NewMockCustomerRepo(t)
		customers.EXPECT().GetCustomerByEmail(mock.Anything, "ana@example.com").Return(customer, nil)

		svc := service.NewAuthService(newTestLogger(), passthroughTx(t),
			customers, mocks.NewMockEmployeeRepo(t), mocks.NewMockTokenIssuer(t))

		_, err := svc.LoginCustomer(context.Background(),
			service.LoginInput{Email: "ana@example.com", Password: "nope"})
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	})

	t.Run("unknown email propagates not found", func(t *testing.T) {
		customers := mocks.NewMockCustomerRepo(t)
		customers.EXPECT().GetCustomerByEmail(mock.Anything, "ghost@example.com").
			Return(entities.Customer{}, entities.ErrCustomerNotFound)

		svc := service.NewAuthService(newTestLogger(), passthroughTx(t),
			customers, mocks.NewMockEmployeeRepo(t), mocks.NewMockTokenIssuer(t))

		_, err := svc.LoginCustomer(context.Background(),
			service.LoginInput{Email: "ghost@example.com", Password: "secret"})
		assert.ErrorIs(t, err, entities.ErrCustomerNotFound)
	})
}

func TestAuthService_RegisterEmployee(t *testing.T) {
	in := service.RegisterInput{Name: "Kenji", Email: "kenji@example.com", Password: "secret"}

	t.Run("OK issues ADMIN token", func(t *testing.T) {
		employees := mocks.NewMockEmployeeRepo(t)
		tokens := mocks.NewMockTokenIssuer(t)

		employees.EXPECT().GetEmployeeByEmail(mock.Anything, "kenji@example.com").
			Return(entities.Employee{}, entities.ErrEmployeeNotFound)
		employees.EXPECT().InsertEmployee(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, e entities.Employee) (entities.Employee, error) {
				return e, nil
			})
		tokens.EXPECT().Generate("kenji@example.com", auth.RoleAdmin).Return("jwt", time.Now(), nil)

		svc := service.NewAuthService(newTestLogger(), passthroughTx(t),
			mocks.NewMockCustomerRepo(t), employees, tokens)

		result, err := svc.RegisterEmployee(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "Kenji", result.Name)
	})
}
