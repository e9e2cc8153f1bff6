package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/logger"
	"github.com/osse101/ChoreWheel_Go/internal/metrics"
	"github.com/osse101/ChoreWheel_Go/internal/wheel"
)

// WheelHandler serves the Mystery Wheel API
type WheelHandler struct {
	spins   wheel.Service
	configs wheel.ConfigService
}

func NewWheelHandler(spins wheel.Service, configs wheel.ConfigService) *WheelHandler {
	return &WheelHandler{
		spins:   spins,
		configs: configs,
	}
}

// SpinRequest is the body of POST /wheel/spin
type SpinRequest struct {
	TaskID      string `json:"taskId" validate:"required,max=64"`
	HouseholdID string `json:"householdId" validate:"required,uuid"`
	TaskPoints  *int   `json:"taskPoints,omitempty" validate:"omitempty,min=0,max=10000"`
}

// HandleSpin spins the wheel for the caller after completing a task
// @Summary Spin the Mystery Wheel
// @Description Consumes one of today's spins and applies the reward it lands on
// @Tags wheel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SpinRequest true "Completed task"
// @Success 200 {object} domain.SpinResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/wheel/spin [post]
func (h *WheelHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(r, w)
	if !ok {
		return
	}

	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	result, err := h.spins.Spin(r.Context(), domain.SpinRequest{
		UserID:      userID,
		HouseholdID: req.HouseholdID,
		TaskID:      req.TaskID,
		TaskPoints:  req.TaskPoints,
	})
	if err != nil {
		metrics.RecordSpinRejection(rejectionReason(err))
		respondServiceError(w, r, "Spin", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleGetConfig returns the household's wheel with a segment preview
// @Summary Get wheel configuration
// @Tags wheel
// @Produce json
// @Security BearerAuth
// @Param household_id query string true "Household ID"
// @Success 200 {object} domain.WheelOverview
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/wheel/config [get]
func (h *WheelHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(r, w)
	if !ok {
		return
	}
	householdID, ok := getHouseholdParam(r, w)
	if !ok {
		return
	}

	overview, err := h.configs.GetWheel(r.Context(), userID, householdID)
	if err != nil {
		respondServiceError(w, r, "Get wheel", err)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

// HandleSaveConfig replaces the household's base wheel settings
// @Summary Save wheel configuration
// @Description Admin only. Built-in weights plus current custom rewards must total 100.
// @Tags wheel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.WheelConfigUpdate true "New settings"
// @Success 200 {object} domain.WheelConfig
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/wheel/config [put]
func (h *WheelHandler) HandleSaveConfig(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(r, w)
	if !ok {
		return
	}

	var req domain.WheelConfigUpdate
	if err := DecodeAndValidateRequest(r, w, &req, "Save wheel config"); err != nil {
		return
	}

	cfg, err := h.configs.SaveConfig(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, r, "Save wheel config", err)
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// HandleCreateCustomReward adds a household reward slice
// @Summary Create custom reward
// @Tags wheel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CustomRewardInput true "Reward"
// @Success 201 {object} domain.CustomReward
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/wheel/custom-rewards [post]
func (h *WheelHandler) HandleCreateCustomReward(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(r, w)
	if !ok {
		return
	}

	var req domain.CustomRewardInput
	if err := DecodeAndValidateRequest(r, w, &req, "Create custom reward"); err != nil {
		return
	}

	reward, err := h.configs.CreateCustomReward(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, r, "Create custom reward", err)
		return
	}

	respondJSON(w, http.StatusCreated, reward)
}

// HandleUpdateCustomReward edits a household reward slice
// @Summary Update custom reward
// @Tags wheel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reward ID"
// @Param request body domain.CustomRewardInput true "Reward"
// @Success 200 {object} domain.CustomReward
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/wheel/custom-rewards/{id} [put]
func (h *WheelHandler) HandleUpdateCustomReward(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(r, w)
	if !ok {
		return
	}
	rewardID, ok := rewardIDParam(r, w)
	if !ok {
		return
	}

	var req domain.CustomRewardInput
	if err := DecodeAndValidateRequest(r, w, &req, "Update custom reward"); err != nil {
		return
	}

	reward, err := h.configs.UpdateCustomReward(r.Context(), userID, rewardID, req)
	if err != nil {
		respondServiceError(w, r, "Update custom reward", err)
		return
	}

	respondJSON(w, http.StatusOK, reward)
}

// HandleDeleteCustomReward removes a household reward slice
// @Summary Delete custom reward
// @Tags wheel
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reward ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/wheel/custom-rewards/{id} [delete]
func (h *WheelHandler) HandleDeleteCustomReward(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(r, w)
	if !ok {
		return
	}
	rewardID, ok := rewardIDParam(r, w)
	if !ok {
		return
	}

	if err := h.configs.DeleteCustomReward(r.Context(), userID, rewardID); err != nil {
		respondServiceError(w, r, "Delete custom reward", err)
		return
	}

	logger.FromContext(r.Context()).Info(MsgCustomRewardDeleted, "reward_id", rewardID)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCustomRewardDeleted})
}

// HandleGetSpins lists the caller's recent spins and today's remaining quota
// @Summary Spin history
// @Tags wheel
// @Produce json
// @Security BearerAuth
// @Param household_id query string true "Household ID"
// @Param limit query int false "Max spins to return"
// @Success 200 {object} domain.SpinHistory
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/wheel/spins [get]
func (h *WheelHandler) HandleGetSpins(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(r, w)
	if !ok {
		return
	}
	householdID, ok := getHouseholdParam(r, w)
	if !ok {
		return
	}
	limit, ok := getLimitParam(r, w)
	if !ok {
		return
	}

	history, err := h.spins.GetSpinHistory(r.Context(), userID, householdID, limit)
	if err != nil {
		respondServiceError(w, r, "Get spin history", err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

func rewardIDParam(r *http.Request, w http.ResponseWriter) (string, bool) {
	id := chi.URLParam(r, ParamRewardID)
	if uuid.Validate(id) != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRewardID)
		return "", false
	}
	return id, true
}

// rejectionReason labels a failed spin for the rejection counter
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotEntitled):
		return ReasonNotEntitled
	case errors.Is(err, domain.ErrSubscriptionInactive):
		return ReasonInactive
	case errors.Is(err, domain.ErrConfigDisabled):
		return ReasonDisabled
	case errors.Is(err, domain.ErrDailyLimitReached):
		return ReasonDailyLimit
	case errors.Is(err, domain.ErrConfigInvalid):
		return ReasonConfigBroken
	default:
		return ReasonOther
	}
}
