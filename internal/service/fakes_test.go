package service

import (
	"github.com/google/uuid"

	"studio-teams/internal/apperrors"
	"studio-teams/internal/domain/models"
)

type fakeTeamRepo struct {
	team       *models.Team
	teamErr    error
	membership map[uuid.UUID]*models.TeamMember
	leadID     uuid.UUID
	leadErr    error

	created      *models.Team
	createErr    error
	createCalled bool

	leaveDeleted bool
	leaveErr     error
	leaveCalled  bool
}

func (f *fakeTeamRepo) CreateTeamWithLead(team models.Team) (*models.Team, error) {
	f.createCalled = true
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	created := team
	created.ID = uuid.New()
	created.Members = []models.TeamMember{{
		TeamID: created.ID,
		UserID: team.CreatedBy,
		Role:   models.RoleLead,
	}}
	return &created, nil
}

func (f *fakeTeamRepo) GetTeam(teamID uuid.UUID) (*models.Team, error) {
	if f.teamErr != nil {
		return nil, f.teamErr
	}
	if f.team == nil || f.team.ID != teamID {
		return nil, apperrors.ErrTeamNotFound
	}
	return f.team, nil
}

func (f *fakeTeamRepo) GetTeamWithMembers(teamID uuid.UUID) (*models.Team, error) {
	return f.GetTeam(teamID)
}

func (f *fakeTeamRepo) GetMembership(userID uuid.UUID) (*models.TeamMember, error) {
	if member, ok := f.membership[userID]; ok {
		return member, nil
	}
	return nil, apperrors.ErrNotMember
}

func (f *fakeTeamRepo) LeaveTeam(teamID, userID uuid.UUID) (bool, error) {
	f.leaveCalled = true
	if f.leaveErr != nil {
		return false, f.leaveErr
	}
	return f.leaveDeleted, nil
}

func (f *fakeTeamRepo) GetTeamLead(teamID uuid.UUID) (uuid.UUID, error) {
	if f.leadErr != nil {
		return uuid.Nil, f.leadErr
	}
	return f.leadID, nil
}

type fakeProfileRepo struct {
	profile *models.Profile
	err     error
}

func (f *fakeProfileRepo) GetProfile(userID uuid.UUID) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type notifyCall struct {
	userID  uuid.UUID
	ntype   string
	title   string
	message string
}

type fakeNotifier struct {
	calls []notifyCall
}

func (f *fakeNotifier) Notify(userID uuid.UUID, ntype, title, message string, metadata map[string]any) {
	f.calls = append(f.calls, notifyCall{userID: userID, ntype: ntype, title: title, message: message})
}

type fakeInvitationRepo struct {
	invitation *models.TeamInvitation
	createErr  error
	respondErr error

	acceptCalled  bool
	declineCalled bool
}

func (f *fakeInvitationRepo) CreateInvitation(inv models.TeamInvitation) (*models.TeamInvitation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := inv
	created.ID = uuid.New()
	created.Status = models.InvitationPending
	return &created, nil
}

func (f *fakeInvitationRepo) AcceptInvitation(invitationID, inviteeID uuid.UUID) (*models.TeamInvitation, error) {
	f.acceptCalled = true
	if f.invitation == nil || f.invitation.InviteeID != inviteeID {
		return nil, apperrors.ErrInvitationNotFound
	}
	if f.respondErr != nil {
		return nil, f.respondErr
	}
	updated := *f.invitation
	updated.Status = models.InvitationAccepted
	return &updated, nil
}

func (f *fakeInvitationRepo) DeclineInvitation(invitationID, inviteeID uuid.UUID) (*models.TeamInvitation, error) {
	f.declineCalled = true
	if f.invitation == nil || f.invitation.InviteeID != inviteeID {
		return nil, apperrors.ErrInvitationNotFound
	}
	if f.respondErr != nil {
		return nil, f.respondErr
	}
	updated := *f.invitation
	updated.Status = models.InvitationDeclined
	return &updated, nil
}

func (f *fakeInvitationRepo) ListPendingByTeam(teamID uuid.UUID) ([]models.TeamInvitation, error) {
	if f.invitation == nil {
		return nil, nil
	}
	return []models.TeamInvitation{*f.invitation}, nil
}

type fakeJoinRequestRepo struct {
	canJoin    bool
	canJoinErr error
	request    *models.TeamJoinRequest
	createErr  error
	respondErr error

	approveCalled bool
	rejectCalled  bool
}

func (f *fakeJoinRequestRepo) CanJoinTeam(teamID, userID uuid.UUID) (bool, error) {
	if f.canJoinErr != nil {
		return false, f.canJoinErr
	}
	return f.canJoin, nil
}

func (f *fakeJoinRequestRepo) CreateRequest(req models.TeamJoinRequest) (*models.TeamJoinRequest, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := req
	created.ID = uuid.New()
	created.Status = models.RequestPending
	return &created, nil
}

func (f *fakeJoinRequestRepo) GetRequest(requestID uuid.UUID) (*models.TeamJoinRequest, error) {
	if f.request == nil {
		return nil, apperrors.ErrRequestNotFound
	}
	return f.request, nil
}

func (f *fakeJoinRequestRepo) ApproveRequest(requestID, responderID uuid.UUID) (*models.TeamJoinRequest, error) {
	f.approveCalled = true
	if f.respondErr != nil {
		return nil, f.respondErr
	}
	updated := *f.request
	updated.Status = models.RequestApproved
	return &updated, nil
}

func (f *fakeJoinRequestRepo) RejectRequest(requestID, responderID uuid.UUID) (*models.TeamJoinRequest, error) {
	f.rejectCalled = true
	if f.respondErr != nil {
		return nil, f.respondErr
	}
	updated := *f.request
	updated.Status = models.RequestRejected
	return &updated, nil
}

func (f *fakeJoinRequestRepo) ListPendingByTeam(teamID uuid.UUID) ([]models.TeamJoinRequest, error) {
	if f.request == nil {
		return nil, nil
	}
	return []models.TeamJoinRequest{*f.request}, nil
}
