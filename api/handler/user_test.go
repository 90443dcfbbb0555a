package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/TalalZoabi/fullstack-bank/domain"
	"github.com/TalalZoabi/fullstack-bank/repository"
	userUC "github.com/TalalZoabi/fullstack-bank/usecase/user"
)

type memUserRepo struct {
	users   []domain.User
	nextID  int
	listErr error
}

func (r *memUserRepo) List(_ context.Context, filter repository.UserFilter) ([]domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.User
	for _, u := range r.users {
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	if user.Accounts == nil {
		user.Accounts = []domain.Account{}
	}
	r.users = append(r.users, *user)
	return user, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type memAccountRepo struct {
	failErr error
	deleted []string
}

func (r *memAccountRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	if r.failErr != nil {
		return 0, r.failErr
	}
	r.deleted = append(r.deleted, ownerID)
	return 0, nil
}

func newUserHandlerForTest() (*UserHandler, *memUserRepo, *memAccountRepo) {
	users := &memUserRepo{}
	accounts := &memAccountRepo{}
	uc := userUC.New(users, accounts, nil)
	return NewUserHandler(uc, nil, nil), users, accounts
}

func seedUser(t *testing.T, repo *memUserRepo, name, email string, active bool) domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Name:     name,
		Email:    email,
		IsActive: active,
	})
	require.NoError(t, err)
	return *user
}

func jsonRequest(method, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.Header.SetContentType("application/json")
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	return ctx
}

type envelopeBody struct {
	Success bool            `json:"success"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) envelopeBody {
	t.Helper()
	var env envelopeBody
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &env))
	return env
}

func TestUserHandler_GetUsers(t *testing.T) {
	t.Run("Should wrap the collection in a success envelope", func(t *testing.T) {
		h, repo, _ := newUserHandlerForTest()
		seedUser(t, repo, "Ann", "ann@x.com", true)

		ctx := jsonRequest(http.MethodGet, "")
		h.GetUsers(ctx)

		assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
		env := decodeEnvelope(t, ctx)
		assert.True(t, env.Success)

		var users []domain.User
		require.NoError(t, json.Unmarshal(env.Data, &users))
		require.Len(t, users, 1)
		assert.Equal(t, "ann@x.com", users[0].Email)
	})

	t.Run("Should return an empty data array when no users exist", func(t *testing.T) {
		h, _, _ := newUserHandlerForTest()

		ctx := jsonRequest(http.MethodGet, "")
		h.GetUsers(ctx)

		assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
		env := decodeEnvelope(t, ctx)
		assert.True(t, env.Success)
		assert.JSONEq(t, "[]", string(env.Data))
	})

	t.Run("Should report 500 on a store failure", func(t *testing.T) {
		h, repo, _ := newUserHandlerForTest()
		repo.listErr = errors.New("connection refused")

		ctx := jsonRequest(http.MethodGet, "")
		h.GetUsers(ctx)

		assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
		env := decodeEnvelope(t, ctx)
		assert.False(t, env.Success)
		assert.Equal(t, string(domain.ErrCodeInternal), env.Code)
	})
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("Should create a user and answer 201", func(t *testing.T) {
		h, _, _ := newUserHandlerForTest()

		ctx := jsonRequest(http.MethodPost, `{"name":"Ann","email":"ann@x.com"}`)
		h.CreateUser(ctx)

		assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
		env := decodeEnvelope(t, ctx)
		assert.True(t, env.Success)

		var created domain.User
		require.NoError(t, json.Unmarshal(env.Data, &created))
		assert.True(t, created.IsActive)
		assert.NotNil(t, created.Accounts)
		assert.Empty(t, created.Accounts)
	})

	t.Run("Should answer 400 when a required field is missing", func(t *testing.T) {
		h, repo, _ := newUserHandlerForTest()

		ctx := jsonRequest(http.MethodPost, `{"name":"Ann"}`)
		h.CreateUser(ctx)

		assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
		assert.Empty(t, repo.users)
	})

	t.Run("Should answer 400 on a malformed body", func(t *testing.T) {
		h, _, _ := newUserHandlerForTest()

		ctx := jsonRequest(http.MethodPost, `{invalid}`)
		h.CreateUser(ctx)

		assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	})

	t.Run("Should answer 403 for a duplicate email", func(t *testing.T) {
		h, repo, _ := newUserHandlerForTest()
		seedUser(t, repo, "Ann", "ann@x.com", true)

		ctx := jsonRequest(http.MethodPost, `{"name":"Bob","email":"ann@x.com"}`)
		h.CreateUser(ctx)

		assert.Equal(t, http.StatusForbidden, ctx.Response.StatusCode())
		env := decodeEnvelope(t, ctx)
		assert.False(t, env.Success)
		assert.Equal(t, string(domain.ErrCodeConflict), env.Code)
		assert.Len(t, repo.users, 1)
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("Should answer the bare entity without an envelope", func(t *testing.T) {
		h, repo, _ := newUserHandlerForTest()
		user := seedUser(t, repo, "Ann", "ann@x.com", true)

		ctx := jsonRequest(http.MethodGet, "")
		ctx.SetUserValue("id", user.ID)
		h.GetUser(ctx)

		assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
		assert.NotContains(t, body, "success")
		assert.Contains(t, body, "email")
	})

	t.Run("Should answer 404 for an unknown id", func(t *testing.T) {
		h, _, _ := newUserHandlerForTest()

		ctx := jsonRequest(http.MethodGet, "")
		ctx.SetUserValue("id", "missing")
		h.GetUser(ctx)

		assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
		env := decodeEnvelope(t, ctx)
		assert.Equal(t, string(domain.ErrCodeNotFound), env.Code)
	})

	t.Run("Should answer 400 without an id parameter", func(t *testing.T) {
		h, _, _ := newUserHandlerForTest()

		ctx := jsonRequest(http.MethodGet, "")
		h.GetUser(ctx)

		assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	t.Run("Should apply a partial update and answer the bare entity", func(t *testing.T) {
		h, repo, _ := newUserHandlerForTest()
		user := seedUser(t, repo, "Ann", "ann@x.com", true)

		ctx := jsonRequest(http.MethodPut, `{"isActive":false}`)
		ctx.SetUserValue("id", user.ID)
		h.UpdateUser(ctx)

		assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

		var updated domain.User
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &updated))
		assert.False(t, updated.IsActive)
		assert.Equal(t, "Ann", updated.Name)
		assert.Equal(t, "ann@x.com", updated.Email)
	})

	t.Run("Should answer 404 for an unknown id", func(t *testing.T) {
		h, _, _ := newUserHandlerForTest()

		ctx := jsonRequest(http.MethodPut, `{"name":"Bob"}`)
		ctx.SetUserValue("id", "missing")
		h.UpdateUser(ctx)

		assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("Should answer the pre-delete entity and cascade", func(t *testing.T) {
		h, repo, accounts := newUserHandlerForTest()
		user := seedUser(t, repo, "Ann", "ann@x.com", true)

		ctx := jsonRequest(http.MethodDelete, "")
		ctx.SetUserValue("id", user.ID)
		h.DeleteUser(ctx)

		assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

		var deleted domain.User
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &deleted))
		assert.Equal(t, user.ID, deleted.ID)
		assert.Equal(t, []string{user.ID}, accounts.deleted)
		assert.Empty(t, repo.users)
	})

	t.Run("Should answer 500 and keep the user when the cascade fails", func(t *testing.T) {
		h, repo, accounts := newUserHandlerForTest()
		user := seedUser(t, repo, "Ann", "ann@x.com", true)
		accounts.failErr = errors.New("write concern error")

		ctx := jsonRequest(http.MethodDelete, "")
		ctx.SetUserValue("id", user.ID)
		h.DeleteUser(ctx)

		assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
		assert.Len(t, repo.users, 1)
	})
}

func TestUserHandler_GetUsersByStatus(t *testing.T) {
	t.Run("Should answer only the matching users", func(t *testing.T) {
		h, repo, _ := newUserHandlerForTest()
		ann := seedUser(t, repo, "Ann", "ann@x.com", true)
		bob := seedUser(t, repo, "Bob", "bob@x.com", false)

		ctx := jsonRequest(http.MethodGet, "")
		h.GetActiveUsers(ctx)
		assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
		env := decodeEnvelope(t, ctx)
		var active []domain.User
		require.NoError(t, json.Unmarshal(env.Data, &active))
		require.Len(t, active, 1)
		assert.Equal(t, ann.ID, active[0].ID)

		ctx = jsonRequest(http.MethodGet, "")
		h.GetInactiveUsers(ctx)
		assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
		env = decodeEnvelope(t, ctx)
		var inactive []domain.User
		require.NoError(t, json.Unmarshal(env.Data, &inactive))
		require.Len(t, inactive, 1)
		assert.Equal(t, bob.ID, inactive[0].ID)
	})

	t.Run("Should answer an empty array when nothing matches", func(t *testing.T) {
		h, _, _ := newUserHandlerForTest()

		ctx := jsonRequest(http.MethodGet, "")
		h.GetInactiveUsers(ctx)

		assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
		env := decodeEnvelope(t, ctx)
		assert.True(t, env.Success)
		assert.JSONEq(t, "[]", string(env.Data))
	})
}
