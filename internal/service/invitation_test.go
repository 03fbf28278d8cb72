package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"studio-teams/internal/apperrors"
	"studio-teams/internal/domain/models"
)

func TestInvite_Success(t *testing.T) {
	leadID := uuid.New()
	inviteeID := uuid.New()
	teamID := uuid.New()

	teamRepo := &fakeTeamRepo{
		team: &models.Team{ID: teamID, Name: "Atelier Noir"},
		membership: map[uuid.UUID]*models.TeamMember{
			leadID: {TeamID: teamID, UserID: leadID, Role: models.RoleLead},
		},
	}
	notifier := &fakeNotifier{}

	svc := NewInvitationService(testLogger(), &fakeInvitationRepo{}, teamRepo, notifier)

	invitation, err := svc.Invite(context.Background(), leadID, teamID, inviteeID, "join us")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if invitation.Status != models.InvitationPending {
		t.Fatalf("expected pending invitation, got %s", invitation.Status)
	}
	if len(notifier.calls) != 1 || notifier.calls[0].userID != inviteeID {
		t.Fatalf("expected invitee notification, got %+v", notifier.calls)
	}
	if notifier.calls[0].title != "Team Invitation" {
		t.Fatalf("wrong notification title: %s", notifier.calls[0].title)
	}
}

func TestInvite_NotLead(t *testing.T) {
	memberID := uuid.New()
	teamID := uuid.New()

	teamRepo := &fakeTeamRepo{
		team: &models.Team{ID: teamID, Name: "Atelier Noir"},
		membership: map[uuid.UUID]*models.TeamMember{
			memberID: {TeamID: teamID, UserID: memberID, Role: models.RoleMember},
		},
	}

	svc := NewInvitationService(testLogger(), &fakeInvitationRepo{}, teamRepo, &fakeNotifier{})

	_, err := svc.Invite(context.Background(), memberID, teamID, uuid.New(), "")
	if !errors.Is(err, apperrors.ErrNotTeamLead) {
		t.Fatalf("expected ErrNotTeamLead, got %v", err)
	}
}

func TestInvite_LeadOfDifferentTeam(t *testing.T) {
	leadID := uuid.New()
	teamID := uuid.New()
	otherTeamID := uuid.New()

	teamRepo := &fakeTeamRepo{
		team: &models.Team{ID: teamID, Name: "Atelier Noir"},
		membership: map[uuid.UUID]*models.TeamMember{
			leadID: {TeamID: otherTeamID, UserID: leadID, Role: models.RoleLead},
		},
	}

	svc := NewInvitationService(testLogger(), &fakeInvitationRepo{}, teamRepo, &fakeNotifier{})

	_, err := svc.Invite(context.Background(), leadID, teamID, uuid.New(), "")
	if !errors.Is(err, apperrors.ErrNotTeamLead) {
		t.Fatalf("expected ErrNotTeamLead, got %v", err)
	}
}

func TestInvite_InviteeAlreadyInTeam(t *testing.T) {
	leadID := uuid.New()
	inviteeID := uuid.New()
	teamID := uuid.New()

	teamRepo := &fakeTeamRepo{
		team: &models.Team{ID: teamID, Name: "Atelier Noir"},
		membership: map[uuid.UUID]*models.TeamMember{
			leadID:    {TeamID: teamID, UserID: leadID, Role: models.RoleLead},
			inviteeID: {TeamID: uuid.New(), UserID: inviteeID, Role: models.RoleMember},
		},
	}

	svc := NewInvitationService(testLogger(), &fakeInvitationRepo{}, teamRepo, &fakeNotifier{})

	_, err := svc.Invite(context.Background(), leadID, teamID, inviteeID, "")
	if !errors.Is(err, apperrors.ErrInviteeHasTeam) {
		t.Fatalf("expected ErrInviteeHasTeam, got %v", err)
	}
}

func TestRespond_AcceptNotifiesInviter(t *testing.T) {
	inviterID := uuid.New()
	inviteeID := uuid.New()
	teamID := uuid.New()

	invitationRepo := &fakeInvitationRepo{invitation: &models.TeamInvitation{
		ID:        uuid.New(),
		TeamID:    teamID,
		InviterID: inviterID,
		InviteeID: inviteeID,
		Status:    models.InvitationPending,
	}}
	teamRepo := &fakeTeamRepo{team: &models.Team{ID: teamID, Name: "Atelier Noir"}}
	notifier := &fakeNotifier{}

	svc := NewInvitationService(testLogger(), invitationRepo, teamRepo, notifier)

	invitation, err := svc.Respond(context.Background(), inviteeID, invitationRepo.invitation.ID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if invitation.Status != models.InvitationAccepted {
		t.Fatalf("expected accepted, got %s", invitation.Status)
	}
	if !invitationRepo.acceptCalled {
		t.Fatal("expected AcceptInvitation to be called")
	}
	if len(notifier.calls) != 1 || notifier.calls[0].userID != inviterID {
		t.Fatalf("expected inviter notification, got %+v", notifier.calls)
	}
	if notifier.calls[0].title != "Invitation Accepted" {
		t.Fatalf("wrong notification title: %s", notifier.calls[0].title)
	}
}

func TestRespond_DeclineNotifiesInviter(t *testing.T) {
	inviterID := uuid.New()
	inviteeID := uuid.New()

	invitationRepo := &fakeInvitationRepo{invitation: &models.TeamInvitation{
		ID:        uuid.New(),
		TeamID:    uuid.New(),
		InviterID: inviterID,
		InviteeID: inviteeID,
		Status:    models.InvitationPending,
	}}
	notifier := &fakeNotifier{}

	svc := NewInvitationService(testLogger(), invitationRepo, &fakeTeamRepo{}, notifier)

	invitation, err := svc.Respond(context.Background(), inviteeID, invitationRepo.invitation.ID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if invitation.Status != models.InvitationDeclined {
		t.Fatalf("expected declined, got %s", invitation.Status)
	}
	if !invitationRepo.declineCalled {
		t.Fatal("expected DeclineInvitation to be called")
	}
	if notifier.calls[0].title != "Invitation Declined" {
		t.Fatalf("wrong notification title: %s", notifier.calls[0].title)
	}
}

func TestRespond_TeamFull(t *testing.T) {
	inviteeID := uuid.New()
	invitationRepo := &fakeInvitationRepo{
		invitation: &models.TeamInvitation{ID: uuid.New(), InviteeID: inviteeID, Status: models.InvitationPending},
		respondErr: apperrors.ErrTeamFull,
	}
	notifier := &fakeNotifier{}

	svc := NewInvitationService(testLogger(), invitationRepo, &fakeTeamRepo{}, notifier)

	_, err := svc.Respond(context.Background(), inviteeID, invitationRepo.invitation.ID, true)
	if !errors.Is(err, apperrors.ErrTeamFull) {
		t.Fatalf("expected ErrTeamFull, got %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Fatal("no notification must be sent on capacity failure")
	}
}

func TestRespond_AlreadyResolved(t *testing.T) {
	inviteeID := uuid.New()
	invitationRepo := &fakeInvitationRepo{
		invitation: &models.TeamInvitation{ID: uuid.New(), InviteeID: inviteeID, Status: models.InvitationAccepted},
		respondErr: apperrors.ErrInvitationResolved,
	}

	svc := NewInvitationService(testLogger(), invitationRepo, &fakeTeamRepo{}, &fakeNotifier{})

	_, err := svc.Respond(context.Background(), inviteeID, invitationRepo.invitation.ID, true)
	if !errors.Is(err, apperrors.ErrInvitationResolved) {
		t.Fatalf("expected ErrInvitationResolved, got %v", err)
	}
}

func TestRespond_WrongAddressee(t *testing.T) {
	invitationRepo := &fakeInvitationRepo{
		invitation: &models.TeamInvitation{ID: uuid.New(), InviteeID: uuid.New(), Status: models.InvitationPending},
	}
	notifier := &fakeNotifier{}

	svc := NewInvitationService(testLogger(), invitationRepo, &fakeTeamRepo{}, notifier)

	_, err := svc.Respond(context.Background(), uuid.New(), invitationRepo.invitation.ID, true)
	if !errors.Is(err, apperrors.ErrInvitationNotFound) {
		t.Fatalf("expected ErrInvitationNotFound, got %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Fatal("no notification must be sent when the invitation is not addressed to the caller")
	}
}
