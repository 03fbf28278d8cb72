package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"studio-teams/internal/apperrors"
	"studio-teams/internal/domain/models"
)

func TestRequestToJoin_Success(t *testing.T) {
	callerID := uuid.New()
	leadID := uuid.New()
	teamID := uuid.New()

	teamRepo := &fakeTeamRepo{
		team:   &models.Team{ID: teamID, Name: "Atelier Noir", IsOpen: true},
		leadID: leadID,
	}
	notifier := &fakeNotifier{}

	svc := NewJoinRequestService(testLogger(), &fakeJoinRequestRepo{canJoin: true}, teamRepo, notifier)

	request, err := svc.RequestToJoin(context.Background(), callerID, teamID, "let me in")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if request.Status != models.RequestPending {
		t.Fatalf("expected pending request, got %s", request.Status)
	}
	if len(notifier.calls) != 1 || notifier.calls[0].userID != leadID {
		t.Fatalf("expected lead notification, got %+v", notifier.calls)
	}
}

func TestRequestToJoin_NotAdmissible(t *testing.T) {
	teamID := uuid.New()
	teamRepo := &fakeTeamRepo{team: &models.Team{ID: teamID, Name: "Atelier Noir"}}

	svc := NewJoinRequestService(testLogger(), &fakeJoinRequestRepo{canJoin: false}, teamRepo, &fakeNotifier{})

	_, err := svc.RequestToJoin(context.Background(), uuid.New(), teamID, "")
	if !errors.Is(err, apperrors.ErrTeamNotOpen) {
		t.Fatalf("expected ErrTeamNotOpen, got %v", err)
	}
}

func TestRequestToJoin_TeamNotFound(t *testing.T) {
	svc := NewJoinRequestService(testLogger(), &fakeJoinRequestRepo{canJoin: true}, &fakeTeamRepo{}, &fakeNotifier{})

	_, err := svc.RequestToJoin(context.Background(), uuid.New(), uuid.New(), "")
	if !errors.Is(err, apperrors.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestRespondRequest_ApproveNotifiesRequester(t *testing.T) {
	leadID := uuid.New()
	requesterID := uuid.New()
	teamID := uuid.New()

	requestRepo := &fakeJoinRequestRepo{request: &models.TeamJoinRequest{
		ID:     uuid.New(),
		TeamID: teamID,
		UserID: requesterID,
		Status: models.RequestPending,
	}}
	teamRepo := &fakeTeamRepo{
		team:   &models.Team{ID: teamID, Name: "Atelier Noir"},
		leadID: leadID,
	}
	notifier := &fakeNotifier{}

	svc := NewJoinRequestService(testLogger(), requestRepo, teamRepo, notifier)

	request, err := svc.Respond(context.Background(), leadID, requestRepo.request.ID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if request.Status != models.RequestApproved {
		t.Fatalf("expected approved, got %s", request.Status)
	}
	if len(notifier.calls) != 1 || notifier.calls[0].userID != requesterID {
		t.Fatalf("expected requester notification, got %+v", notifier.calls)
	}
	if notifier.calls[0].title != "Join Request Approved" {
		t.Fatalf("wrong notification title: %s", notifier.calls[0].title)
	}
}

func TestRespondRequest_RejectNotifiesRequester(t *testing.T) {
	leadID := uuid.New()
	requesterID := uuid.New()
	teamID := uuid.New()

	requestRepo := &fakeJoinRequestRepo{request: &models.TeamJoinRequest{
		ID:     uuid.New(),
		TeamID: teamID,
		UserID: requesterID,
		Status: models.RequestPending,
	}}
	teamRepo := &fakeTeamRepo{
		team:   &models.Team{ID: teamID, Name: "Atelier Noir"},
		leadID: leadID,
	}
	notifier := &fakeNotifier{}

	svc := NewJoinRequestService(testLogger(), requestRepo, teamRepo, notifier)

	request, err := svc.Respond(context.Background(), leadID, requestRepo.request.ID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if request.Status != models.RequestRejected {
		t.Fatalf("expected rejected, got %s", request.Status)
	}
	if !requestRepo.rejectCalled {
		t.Fatal("expected RejectRequest to be called")
	}
	if notifier.calls[0].title != "Join Request Rejected" {
		t.Fatalf("wrong notification title: %s", notifier.calls[0].title)
	}
}

func TestRespondRequest_NotLead(t *testing.T) {
	teamID := uuid.New()
	requestRepo := &fakeJoinRequestRepo{request: &models.TeamJoinRequest{
		ID:     uuid.New(),
		TeamID: teamID,
		Status: models.RequestPending,
	}}
	teamRepo := &fakeTeamRepo{leadID: uuid.New()}

	svc := NewJoinRequestService(testLogger(), requestRepo, teamRepo, &fakeNotifier{})

	_, err := svc.Respond(context.Background(), uuid.New(), requestRepo.request.ID, true)
	if !errors.Is(err, apperrors.ErrNotTeamLead) {
		t.Fatalf("expected ErrNotTeamLead, got %v", err)
	}
	if requestRepo.approveCalled {
		t.Fatal("request must not be approved by a non-lead")
	}
}

func TestRespondRequest_AlreadyResolved(t *testing.T) {
	requestRepo := &fakeJoinRequestRepo{request: &models.TeamJoinRequest{
		ID:     uuid.New(),
		TeamID: uuid.New(),
		Status: models.RequestApproved,
	}}

	svc := NewJoinRequestService(testLogger(), requestRepo, &fakeTeamRepo{}, &fakeNotifier{})

	_, err := svc.Respond(context.Background(), uuid.New(), requestRepo.request.ID, true)
	if !errors.Is(err, apperrors.ErrRequestResolved) {
		t.Fatalf("expected ErrRequestResolved, got %v", err)
	}
}

func TestRespondRequest_CapacityError(t *testing.T) {
	leadID := uuid.New()
	teamID := uuid.New()
	requestRepo := &fakeJoinRequestRepo{
		request: &models.TeamJoinRequest{
			ID:     uuid.New(),
			TeamID: teamID,
			Status: models.RequestPending,
		},
		respondErr: apperrors.ErrTeamFull,
	}
	teamRepo := &fakeTeamRepo{
		team:   &models.Team{ID: teamID, Name: "Atelier Noir"},
		leadID: leadID,
	}
	notifier := &fakeNotifier{}

	svc := NewJoinRequestService(testLogger(), requestRepo, teamRepo, notifier)

	_, err := svc.Respond(context.Background(), leadID, requestRepo.request.ID, true)
	if !errors.Is(err, apperrors.ErrTeamFull) {
		t.Fatalf("expected ErrTeamFull, got %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Fatal("no notification must be sent on capacity failure")
	}
}
