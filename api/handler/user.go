package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/TalalZoabi/fullstack-bank/api/transport"
	"github.com/TalalZoabi/fullstack-bank/domain"
	"github.com/TalalZoabi/fullstack-bank/pkg/httpcontext"
	userUC "github.com/TalalZoabi/fullstack-bank/usecase/user"
)

type UserHandler struct {
	baseHandler
	uc *userUC.UseCase
}

func NewUserHandler(uc *userUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List users
// @Tags users
// @Success 200 {object} transport.Envelope
// @Router /users [get]
func (h *UserHandler) GetUsers(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	users, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, users)
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Router /users [post]
func (h *UserHandler) CreateUser(ctx *fasthttp.RequestCtx) {
	var req transport.UserCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, req.Name, req.Email)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Get user
// @Tags users
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(ctx *fasthttp.RequestCtx) {
	id, ok := h.userIDParam(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondEntity(ctx, http.StatusOK, user)
}

// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(ctx *fasthttp.RequestCtx) {
	id, ok := h.userIDParam(ctx)
	if !ok {
		return
	}

	var req transport.UserUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, id, userUC.UpdateParams{
		Name:     req.Name,
		Email:    req.Email,
		IsActive: req.IsActive,
		Accounts: req.Accounts,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondEntity(ctx, http.StatusOK, updated)
}

// @Summary Delete user
// @Tags users
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(ctx *fasthttp.RequestCtx) {
	id, ok := h.userIDParam(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deleted, err := h.uc.Delete(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondEntity(ctx, http.StatusOK, deleted)
}

// @Summary List active users
// @Tags users
// @Router /users/active [get]
func (h *UserHandler) GetActiveUsers(ctx *fasthttp.RequestCtx) {
	h.getUsersByStatus(ctx, true)
}

// @Summary List inactive users
// @Tags users
// @Router /users/inactive [get]
func (h *UserHandler) GetInactiveUsers(ctx *fasthttp.RequestCtx) {
	h.getUsersByStatus(ctx, false)
}

func (h *UserHandler) getUsersByStatus(ctx *fasthttp.RequestCtx, active bool) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	users, err := h.uc.ListByStatus(stdCtx, active)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, users)
}

func (h *UserHandler) userIDParam(ctx *fasthttp.RequestCtx) (string, bool) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing user id"))
		return "", false
	}
	return id, true
}
