package service

import (
	"context"
	"testing"

	"supernote-be/internal/dto"
	"supernote-be/internal/entity"
	"supernote-be/internal/pkg/serverutils"
	"supernote-be/internal/repository/specification"
	"supernote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamCreateAddsOwnerMembership(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewTeamService(factory)
	alice := seedUser(t, factory, "alice")
	ctx := context.Background()

	team, err := svc.Create(ctx, alice.Id, &dto.CreateTeamRequest{Name: "Study Group"})
	require.NoError(t, err)
	assert.Equal(t, alice.Id, team.OwnerId)

	members, err := svc.ListMembers(ctx, alice.Id, team.Id)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, alice.Id, members[0].UserId)
	assert.Equal(t, string(entity.TeamRoleOwner), members[0].Role)
}

func TestTeamAddAndRemoveMember(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewTeamService(factory)
	alice := seedUser(t, factory, "alice")
	bob := seedUser(t, factory, "bob")
	ctx := context.Background()

	team, err := svc.Create(ctx, alice.Id, &dto.CreateTeamRequest{Name: "Study Group"})
	require.NoError(t, err)

	member, err := svc.AddMember(ctx, alice.Id, &dto.AddTeamMemberRequest{TeamId: team.Id, Username: "bob"})
	require.NoError(t, err)
	assert.Equal(t, bob.Id, member.UserId)
	assert.Equal(t, string(entity.TeamRoleMember), member.Role)

	var apiErr *serverutils.ApiError

	// Duplicate membership.
	_, err = svc.AddMember(ctx, alice.Id, &dto.AddTeamMemberRequest{TeamId: team.Id, Username: "bob"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Code)

	// Only the owner can manage members.
	_, err = svc.AddMember(ctx, bob.Id, &dto.AddTeamMemberRequest{TeamId: team.Id, Username: "alice"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)

	// Unknown user.
	_, err = svc.AddMember(ctx, alice.Id, &dto.AddTeamMemberRequest{TeamId: team.Id, Username: "nobody"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)

	// Members see the team in their list.
	teams, err := svc.List(ctx, bob.Id)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, team.Id, teams[0].Id)

	// The owner cannot be removed.
	err = svc.RemoveMember(ctx, alice.Id, team.Id, alice.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)

	require.NoError(t, svc.RemoveMember(ctx, alice.Id, team.Id, bob.Id))

	teams, err = svc.List(ctx, bob.Id)
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestTeamGetAndUpdate(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewTeamService(factory)
	alice := seedUser(t, factory, "alice")
	carol := seedUser(t, factory, "carol")
	ctx := context.Background()

	team, err := svc.Create(ctx, alice.Id, &dto.CreateTeamRequest{Name: "Study Group"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, alice.Id, team.Id)
	require.NoError(t, err)
	assert.Equal(t, team.Id, got.Id)

	var apiErr *serverutils.ApiError
	_, err = svc.Get(ctx, carol.Id, team.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)

	updated, err := svc.Update(ctx, alice.Id, &dto.UpdateTeamRequest{Id: team.Id, Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	// Renaming is owner-only.
	_, err = svc.Update(ctx, carol.Id, &dto.UpdateTeamRequest{Id: team.Id, Name: "Hijacked"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)
}

func TestTeamCreateWithMemberEmails(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewTeamService(factory)
	alice := seedUser(t, factory, "alice")
	bob := seedUser(t, factory, "bob")
	ctx := context.Background()

	team, err := svc.Create(ctx, alice.Id, &dto.CreateTeamRequest{
		Name: "Invited",
		// The owner's own address and unknown addresses are skipped.
		MemberEmails: []string{bob.Email, alice.Email, "ghost@example.com"},
	})
	require.NoError(t, err)

	members, err := svc.ListMembers(ctx, alice.Id, team.Id)
	require.NoError(t, err)
	require.Len(t, members, 2)

	byUser := map[uuid.UUID]string{}
	for _, m := range members {
		byUser[m.UserId] = m.Role
	}
	assert.Equal(t, string(entity.TeamRoleOwner), byUser[alice.Id])
	assert.Equal(t, string(entity.TeamRoleMember), byUser[bob.Id])
}

func TestTeamMemberCanLeave(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewTeamService(factory)
	alice := seedUser(t, factory, "alice")
	bob := seedUser(t, factory, "bob")
	carol := seedUser(t, factory, "carol")
	ctx := context.Background()

	team, err := svc.Create(ctx, alice.Id, &dto.CreateTeamRequest{Name: "Study Group"})
	require.NoError(t, err)
	_, err = svc.AddMember(ctx, alice.Id, &dto.AddTeamMemberRequest{TeamId: team.Id, Username: "bob"})
	require.NoError(t, err)
	_, err = svc.AddMember(ctx, alice.Id, &dto.AddTeamMemberRequest{TeamId: team.Id, Username: "carol"})
	require.NoError(t, err)

	var apiErr *serverutils.ApiError

	// A member cannot remove another member.
	err = svc.RemoveMember(ctx, bob.Id, team.Id, carol.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)

	// But they can leave.
	require.NoError(t, svc.RemoveMember(ctx, bob.Id, team.Id, bob.Id))

	teams, err := svc.List(ctx, bob.Id)
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestTeamListMembersRequiresMembership(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewTeamService(factory)
	alice := seedUser(t, factory, "alice")
	carol := seedUser(t, factory, "carol")
	ctx := context.Background()

	team, err := svc.Create(ctx, alice.Id, &dto.CreateTeamRequest{Name: "Private"})
	require.NoError(t, err)

	var apiErr *serverutils.ApiError
	_, err = svc.ListMembers(ctx, carol.Id, team.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)
}

func TestTeamDeleteCascades(t *testing.T) {
	factory := newTestFactory(t)
	teamSvc := NewTeamService(factory)
	topicSvc := NewTopicService(factory)
	noteSvc := NewNoteService(factory, newTestAiService(&stubProvider{response: "sum"}), nil, nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	ctx := context.Background()

	team, err := teamSvc.Create(ctx, alice.Id, &dto.CreateTeamRequest{Name: "Doomed"})
	require.NoError(t, err)

	topic, err := topicSvc.Create(ctx, alice.Id, &dto.CreateTopicRequest{Name: "Shared", TeamId: &team.Id})
	require.NoError(t, err)

	note := seedNote(t, factory, alice.Id, "Team note", "Shared", "text", "upload")
	attachNoteToTopic(t, factory, note.Id, topic.Id)

	var apiErr *serverutils.ApiError
	bob := seedUser(t, factory, "bob")
	err = teamSvc.Delete(ctx, bob.Id, team.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)

	require.NoError(t, teamSvc.Delete(ctx, alice.Id, team.Id))

	teams, err := teamSvc.List(ctx, alice.Id)
	require.NoError(t, err)
	assert.Empty(t, teams)

	topics, err := topicSvc.List(ctx, alice.Id, nil)
	require.NoError(t, err)
	assert.Empty(t, topics)

	_, err = noteSvc.Show(ctx, alice.Id, note.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}

func attachNoteToTopic(t *testing.T, factory unitofwork.RepositoryFactory, noteId, topicId uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	require.NoError(t, err)
	require.NotNil(t, note)

	note.TopicId = &topicId
	require.NoError(t, uow.NoteRepository().Update(ctx, note))
}
