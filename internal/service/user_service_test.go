package service

import (
	"context"
	"testing"

	"golexai-be/internal/dto"
	"golexai-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newUserFixture() (*fakeUnitOfWork, IUserService, uuid.UUID) {
	uow := newFakeUnitOfWork()
	userId := uuid.New()
	uow.users.users = append(uow.users.users, &entity.User{
		Id:       userId,
		Email:    "lawyer@example.com",
		FullName: "Test Lawyer",
		Role:     entity.UserRoleLawyer,
		Language: "en",
	})
	return uow, NewUserService(&fakeUowFactory{uow: uow}, nopLogger{}), userId
}

func TestDeleteDataWrongConfirmation(t *testing.T) {
	uow, svc, userId := newUserFixture()

	err := svc.DeleteData(context.Background(), userId, &dto.DeleteDataRequest{
		Confirmation: "delete everything",
	}, "127.0.0.1")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, uow.commits)
	assert.Empty(t, uow.auditLogs.logs)
}

func TestDeleteDataSuccess(t *testing.T) {
	uow, svc, userId := newUserFixture()

	err := svc.DeleteData(context.Background(), userId, &dto.DeleteDataRequest{
		Confirmation: "DELETE_ALL_MY_DATA",
	}, "127.0.0.1")

	assert.NoError(t, err)
	assert.Equal(t, 1, uow.commits)

	// The wipe itself leaves a fresh audit entry behind
	if assert.Len(t, uow.auditLogs.logs, 1) {
		assert.Equal(t, entity.AuditDataDelete, uow.auditLogs.logs[0].Action)
	}
}

func TestUpdateProfileAudited(t *testing.T) {
	uow, svc, userId := newUserFixture()

	res, err := svc.UpdateProfile(context.Background(), userId, &dto.UpdateProfileRequest{
		FullName: "Renamed Lawyer",
		Language: "pl",
	}, "10.0.0.1")

	assert.NoError(t, err)
	assert.Equal(t, "Renamed Lawyer", res.FullName)
	assert.Equal(t, "pl", res.Language)

	if assert.Len(t, uow.auditLogs.logs, 1) {
		assert.Equal(t, entity.AuditSettingsChange, uow.auditLogs.logs[0].Action)
	}
}

func TestExportDataAssemblesFootprint(t *testing.T) {
	uow, svc, userId := newUserFixture()

	uow.documents.documents = append(uow.documents.documents, &entity.Document{
		Id: uuid.New(), UserId: userId, Title: "Contract",
	})
	uow.cases.cases = append(uow.cases.cases, &entity.Case{
		Id: uuid.New(), LawyerId: userId, Title: "Smith v. Jones",
	})
	conv := &entity.Conversation{Id: uuid.New(), UserId: userId, Title: "Advice"}
	uow.conversations.conversations = append(uow.conversations.conversations, conv)
	uow.messages.messages = append(uow.messages.messages, &entity.Message{
		Id: uuid.New(), ConversationId: conv.Id, Role: entity.MessageRoleUser, Content: "hi",
	})

	res, err := svc.ExportData(context.Background(), userId, "127.0.0.1")

	assert.NoError(t, err)
	assert.Equal(t, "lawyer@example.com", res.Profile.Email)
	assert.Len(t, res.Documents, 1)
	assert.Len(t, res.Cases, 1)
	if assert.Len(t, res.Conversations, 1) {
		assert.Len(t, res.Conversations[0].Messages, 1)
	}

	// Export is itself audited
	var exported bool
	for _, entry := range uow.auditLogs.logs {
		if entry.Action == entity.AuditDataExport {
			exported = true
		}
	}
	assert.True(t, exported)
}

func TestMeUnknownUser(t *testing.T) {
	_, svc, _ := newUserFixture()

	res, err := svc.Me(context.Background(), uuid.New())

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}
