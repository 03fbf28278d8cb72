package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"studio-teams/internal/apperrors"
	"studio-teams/internal/domain/models"
	"studio-teams/internal/http/middleware"
	"studio-teams/internal/lib/logger/sl"
	"studio-teams/internal/service"
)

const (
	actionCreate            = "create"
	actionInvite            = "invite"
	actionRespondInvitation = "respond_invitation"
	actionJoinRequest       = "join_request"
	actionRespondRequest    = "respond_request"
	actionLeave             = "leave"
)

type (
	// ManageTeamRequest is the envelope of the single privileged entry
	// point: an action selector plus that action's fields.
	ManageTeamRequest struct {
		Action string `json:"action"`

		// create
		Name        string `json:"name,omitempty"`
		Description string `json:"description,omitempty"`
		Category    string `json:"category,omitempty"`
		MaxMembers  int    `json:"max_members,omitempty"`
		IsOpen      bool   `json:"is_open,omitempty"`

		// invite, join_request, leave
		TeamID    string `json:"team_id,omitempty"`
		InviteeID string `json:"invitee_id,omitempty"`
		Message   string `json:"message,omitempty"`

		// respond_invitation
		InvitationID string `json:"invitation_id,omitempty"`
		Accept       *bool  `json:"accept,omitempty"`

		// respond_request
		RequestID string `json:"request_id,omitempty"`
		Approve   *bool  `json:"approve,omitempty"`
	}

	CreateTeamResponse struct {
		Success bool        `json:"success"`
		Team    models.Team `json:"team"`
	}

	InvitationResponse struct {
		Success    bool                  `json:"success"`
		Invitation models.TeamInvitation `json:"invitation"`
	}

	JoinRequestResponse struct {
		Success bool                   `json:"success"`
		Request models.TeamJoinRequest `json:"request"`
	}

	LeaveTeamResponse struct {
		Success     bool `json:"success"`
		TeamDeleted bool `json:"team_deleted"`
	}
)

type ManageTeamHandler struct {
	teamService        *service.TeamService
	invitationService  *service.InvitationService
	joinRequestService *service.JoinRequestService
	log                *slog.Logger
}

func NewManageTeamHandler(
	teamService *service.TeamService,
	invitationService *service.InvitationService,
	joinRequestService *service.JoinRequestService,
	log *slog.Logger) *ManageTeamHandler {
	return &ManageTeamHandler{
		teamService:        teamService,
		invitationService:  invitationService,
		joinRequestService: joinRequestService,
		log:                log,
	}
}

// ManageTeam dispatches on the request's action selector.
func (h *ManageTeamHandler) ManageTeam(w http.ResponseWriter, r *http.Request) {
	const op = "handler.manageTeam.ManageTeam"

	log := h.log.With(
		slog.String("op", op),
	)

	callerID, ok := middleware.GetUserID(r)
	if !ok {
		log.Error("no caller identity in request context")
		writeError(w, http.StatusUnauthorized, "authentication required", "unauthorized", apperrors.ErrUnauthenticated)
		return
	}

	var req ManageTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("invalid request body", sl.Err(err))
		writeError(w, http.StatusBadRequest, "invalid request body", "validation_error", err)
		return
	}

	log = log.With(slog.String("action", req.Action), slog.String("caller_id", callerID.String()))

	switch req.Action {
	case actionCreate:
		h.createTeam(w, r, callerID, req, log)
	case actionInvite:
		h.invite(w, r, callerID, req, log)
	case actionRespondInvitation:
		h.respondInvitation(w, r, callerID, req, log)
	case actionJoinRequest:
		h.joinRequest(w, r, callerID, req, log)
	case actionRespondRequest:
		h.respondRequest(w, r, callerID, req, log)
	case actionLeave:
		h.leave(w, r, callerID, req, log)
	default:
		log.Warn("unknown action")
		writeError(w, http.StatusBadRequest, "unknown action", "validation_error", apperrors.ErrUnknownAction)
	}
}

func (h *ManageTeamHandler) createTeam(w http.ResponseWriter, r *http.Request, callerID uuid.UUID, req ManageTeamRequest, log *slog.Logger) {
	team, err := h.teamService.CreateTeam(r.Context(), callerID, service.CreateTeamInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		MaxMembers:  req.MaxMembers,
		IsOpen:      req.IsOpen,
	})
	if err != nil {
		log.Error("failed to create team", sl.Err(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateTeamResponse{Success: true, Team: *team})
	log.Info("team created successfully")
}

func (h *ManageTeamHandler) invite(w http.ResponseWriter, r *http.Request, callerID uuid.UUID, req ManageTeamRequest, log *slog.Logger) {
	teamID, err := parseID(req.TeamID, "team_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "validation_error", nil)
		return
	}
	inviteeID, err := parseID(req.InviteeID, "invitee_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "validation_error", nil)
		return
	}

	invitation, err := h.invitationService.Invite(r.Context(), callerID, teamID, inviteeID, req.Message)
	if err != nil {
		log.Error("failed to invite user", sl.Err(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, InvitationResponse{Success: true, Invitation: *invitation})
	log.Info("invitation created successfully")
}

func (h *ManageTeamHandler) respondInvitation(w http.ResponseWriter, r *http.Request, callerID uuid.UUID, req ManageTeamRequest, log *slog.Logger) {
	invitationID, err := parseID(req.InvitationID, "invitation_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "validation_error", nil)
		return
	}
	if req.Accept == nil {
		writeError(w, http.StatusBadRequest, "accept is required", "validation_error", nil)
		return
	}

	invitation, err := h.invitationService.Respond(r.Context(), callerID, invitationID, *req.Accept)
	if err != nil {
		log.Error("failed to respond to invitation", sl.Err(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, InvitationResponse{Success: true, Invitation: *invitation})
	log.Info("invitation responded successfully")
}

func (h *ManageTeamHandler) joinRequest(w http.ResponseWriter, r *http.Request, callerID uuid.UUID, req ManageTeamRequest, log *slog.Logger) {
	teamID, err := parseID(req.TeamID, "team_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "validation_error", nil)
		return
	}

	request, err := h.joinRequestService.RequestToJoin(r.Context(), callerID, teamID, req.Message)
	if err != nil {
		log.Error("failed to create join request", sl.Err(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JoinRequestResponse{Success: true, Request: *request})
	log.Info("join request created successfully")
}

func (h *ManageTeamHandler) respondRequest(w http.ResponseWriter, r *http.Request, callerID uuid.UUID, req ManageTeamRequest, log *slog.Logger) {
	requestID, err := parseID(req.RequestID, "request_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "validation_error", nil)
		return
	}
	if req.Approve == nil {
		writeError(w, http.StatusBadRequest, "approve is required", "validation_error", nil)
		return
	}

	request, err := h.joinRequestService.Respond(r.Context(), callerID, requestID, *req.Approve)
	if err != nil {
		log.Error("failed to respond to join request", sl.Err(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JoinRequestResponse{Success: true, Request: *request})
	log.Info("join request responded successfully")
}

func (h *ManageTeamHandler) leave(w http.ResponseWriter, r *http.Request, callerID uuid.UUID, req ManageTeamRequest, log *slog.Logger) {
	teamID, err := parseID(req.TeamID, "team_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "validation_error", nil)
		return
	}

	teamDeleted, err := h.teamService.LeaveTeam(r.Context(), callerID, teamID)
	if err != nil {
		log.Error("failed to leave team", sl.Err(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LeaveTeamResponse{Success: true, TeamDeleted: teamDeleted})
	log.Info("left team successfully")
}
